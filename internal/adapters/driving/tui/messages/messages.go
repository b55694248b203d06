// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/typepair-labs/typepair-cli/internal/core/domain"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driving"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewPair is the main pairing view with both pickers and the preview.
	ViewPair ViewType = iota
	// ViewFavourites lists saved pairings.
	ViewFavourites
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewPair:
		return "pair"
	case ViewFavourites:
		return "favourites"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Slot identifies which side of the pairing a picker controls.
type Slot int

const (
	// SlotHeading is the heading font picker.
	SlotHeading Slot = iota
	// SlotBody is the body font picker.
	SlotBody
)

// String returns the string representation of the slot.
func (s Slot) String() string {
	switch s {
	case SlotHeading:
		return "heading"
	case SlotBody:
		return "body"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// CatalogueProvisional carries the cached catalogue so the UI can show
// something while the source tiers run.
type CatalogueProvisional struct {
	Resolution *driving.Resolution
}

// CatalogueResolved carries the final catalogue resolution.
type CatalogueResolved struct {
	Resolution *driving.Resolution
	Err        error
}

// LocalFallbackChanged signals that the local fallback catalogue file
// was rewritten on disk and a re-resolve is warranted.
type LocalFallbackChanged struct{}

// FontChosen is sent exactly once per committed picker selection.
type FontChosen struct {
	Slot   Slot
	Record domain.FontRecord
}

// FilterDebounced fires when a picker's filter debounce window elapses.
// Seq guards against stale ticks: only the latest scheduled tick for a
// slot recomputes the filter.
type FilterDebounced struct {
	Slot Slot
	Seq  int
}

// StateSaved signals a pairing-state persist completed.
type StateSaved struct {
	Err error
}

// FavouritesLoaded carries the list of saved pairings.
type FavouritesLoaded struct {
	Favourites []domain.Favourite
	Err        error
}

// FavouriteSaved signals the current pairing was saved.
type FavouriteSaved struct {
	Favourite *domain.Favourite
	Err       error
}

// FavouriteApplied signals a saved pairing was applied.
type FavouriteApplied struct {
	Favourite *domain.Favourite
}

// FavouriteDeleted signals a saved pairing was deleted.
type FavouriteDeleted struct {
	ID  string
	Err error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
