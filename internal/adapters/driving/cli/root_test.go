package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "typepair", rootCmd.Use)
}

func TestRootCmd_Short(t *testing.T) {
	assert.Equal(t, "Find and preview heading/body font pairings", rootCmd.Short)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag, "verbose flag should exist")
	assert.Equal(t, "v", flag.Shorthand)
}

func TestEnsurePairingReady_InstallsCatalogueAndState(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	pairing := pairingService.(*mockPairingService)

	res, err := ensurePairingReady(context.Background())

	require.NoError(t, err)
	assert.Len(t, res.Catalogue, 4)
	assert.Len(t, pairing.fonts, 4)
}

func TestEnsurePairingReady_ResolveError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	catalogueService = &mockCatalogueService{resolveErr: errors.New("all tiers failed")}

	_, err := ensurePairingReady(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolve catalogue")
}

func TestEnsurePairingReady_LoadError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	pairingService = &mockPairingService{
		state:   domain.DefaultPairState(),
		loadErr: errors.New("corrupt state file"),
	}

	_, err := ensurePairingReady(context.Background())

	assert.Error(t, err)
}
