// Package tui provides the interactive terminal user interface for typepair.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalogue resolves the active font catalogue.
	Catalogue driving.CatalogueService

	// Pairing owns the heading/body pairing state.
	Pairing driving.PairingService

	// Favourites manages saved pairings.
	Favourites driving.FavouriteService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	catalogue driving.CatalogueService,
	pairing driving.PairingService,
	favourites driving.FavouriteService,
) *Ports {
	return &Ports{
		Catalogue:  catalogue,
		Pairing:    pairing,
		Favourites: favourites,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Catalogue == nil {
		return ErrMissingCatalogueService
	}
	if p.Pairing == nil {
		return ErrMissingPairingService
	}
	if p.Favourites == nil {
		return ErrMissingFavouriteService
	}
	return nil
}
