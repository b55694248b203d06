package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPorts(t *testing.T) {
	catalogue := &mockCatalogueService{}
	pairing := &mockPairingService{}
	favourites := &mockFavouriteService{}

	ports := NewPorts(catalogue, pairing, favourites)

	require.NotNil(t, ports)
	assert.Equal(t, catalogue, ports.Catalogue)
	assert.Equal(t, pairing, ports.Pairing)
	assert.Equal(t, favourites, ports.Favourites)
}

func TestPorts_Validate(t *testing.T) {
	ports := NewPorts(&mockCatalogueService{}, &mockPairingService{}, &mockFavouriteService{})

	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_MissingCatalogue(t *testing.T) {
	ports := &Ports{Pairing: &mockPairingService{}, Favourites: &mockFavouriteService{}}

	assert.ErrorIs(t, ports.Validate(), ErrMissingCatalogueService)
}

func TestPorts_Validate_MissingPairing(t *testing.T) {
	ports := &Ports{Catalogue: &mockCatalogueService{}, Favourites: &mockFavouriteService{}}

	assert.ErrorIs(t, ports.Validate(), ErrMissingPairingService)
}

func TestPorts_Validate_MissingFavourites(t *testing.T) {
	ports := &Ports{Catalogue: &mockCatalogueService{}, Pairing: &mockPairingService{}}

	assert.ErrorIs(t, ports.Validate(), ErrMissingFavouriteService)
}
