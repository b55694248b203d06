// Package cli implements the command-line interface using cobra.
// Commands talk to the core exclusively through the driving ports;
// Execute wires the production adapters in before dispatching.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typepair-labs/typepair-cli/internal/adapters/driven/sources"
	"github.com/typepair-labs/typepair-cli/internal/adapters/driven/storage/file"
	"github.com/typepair-labs/typepair-cli/internal/adapters/driven/storage/sqlite"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driving"
	"github.com/typepair-labs/typepair-cli/internal/core/services"
	"github.com/typepair-labs/typepair-cli/internal/logger"
)

// version is the build version, overridable at link time.
var version = "dev"

// Services used by the commands. Execute wires the production
// implementations; tests substitute mocks.
var (
	catalogueService driving.CatalogueService
	pairingService   driving.PairingService
	favouriteService driving.FavouriteService

	// localSource is kept for the TUI's change watching.
	metadataStore *sqlite.Store
	localSource   *sources.LocalFileSource
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "typepair",
	Short: "Find and preview heading/body font pairings",
	Long: `Typepair pairs a heading font with a body font from the Google
Fonts catalogue, with offline fallbacks, weight-aware CSS export and
saved favourites.

The catalogue is resolved through a chain of sources: the Google
metadata endpoint, CDN mirrors of the full catalogue, a local fallback
file, and an embedded list. The best available tier wins and is cached
for a week.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute wires the production services and runs the root command.
func Execute() error {
	if err := initServices(); err != nil {
		return err
	}
	defer closeServices()

	return rootCmd.Execute()
}

// initServices builds the production adapter stack. Already-populated
// services (from tests) are left alone.
func initServices() error {
	if catalogueService != nil && pairingService != nil && favouriteService != nil {
		return nil
	}

	cacheStore, err := file.NewCacheStore("")
	if err != nil {
		return fmt.Errorf("init catalogue cache: %w", err)
	}

	stateStore, err := file.NewStateStore("")
	if err != nil {
		return fmt.Errorf("init state store: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("init metadata store: %w", err)
	}
	metadataStore = store

	local, err := sources.NewLocalFileSource("")
	if err != nil {
		store.Close()
		return fmt.Errorf("init local fallback: %w", err)
	}
	localSource = local

	catalogueService = services.NewCatalogueResolver(
		cacheStore,
		sources.NewGoogleSource("", nil),
		sources.NewMirrorSource(nil, nil),
		local,
		sources.NewEmbeddedSource(),
	)
	pairingService = services.NewPairingEngine(stateStore)
	favouriteService = services.NewFavouriteManager(store.FavouriteStore())

	return nil
}

func closeServices() {
	if metadataStore != nil {
		_ = metadataStore.Close()
		metadataStore = nil
	}
}

// ensurePairingReady resolves the catalogue and restores persisted
// state so pairing operations see a consistent world. The provisional
// cache result is accepted silently; only the final resolution is
// reported on the verbose log.
func ensurePairingReady(ctx context.Context) (*driving.Resolution, error) {
	res, err := catalogueService.Resolve(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("resolve catalogue: %w", err)
	}

	pairingService.SetCatalogue(res.Catalogue)
	if err := pairingService.Load(ctx); err != nil {
		return nil, err
	}

	logger.Info("%s", res.Status)
	return res, nil
}
