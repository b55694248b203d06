package driving

import (
	"context"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
)

// PairingService owns the heading/body pairing state and its
// interaction with the active catalogue. All mutating operations keep
// the state consistent: weights snap to what the selected families
// carry, and heading/body collisions are resolved when allow-same is
// off.
type PairingService interface {
	// Current returns the active pairing state.
	Current() domain.PairState

	// Fonts returns the active catalogue.
	Fonts() domain.Catalogue

	// SetCatalogue installs a new catalogue and reconciles the state
	// against it (missing families fall back to candidates, weights
	// re-snap).
	SetCatalogue(c domain.Catalogue)

	// WeightsFor returns the weights available for a family, or the
	// default pair for unknown families.
	WeightsFor(family string) []int

	// SelectHeading sets the heading family.
	SelectHeading(family string)

	// SelectBody sets the body family.
	SelectBody(family string)

	// SetHeadingWeight snaps and sets the heading weight.
	SetHeadingWeight(weight int)

	// SetBodyWeight snaps and sets the body weight.
	SetBodyWeight(weight int)

	// Apply replaces the whole state (sanitised and reconciled).
	Apply(state domain.PairState)

	// RandomPair picks a random heading and body from the catalogue.
	RandomPair()

	// GoogleCSSHref builds the CSS2 stylesheet URL covering both
	// selected families and their needed weights.
	GoogleCSSHref() string

	// ExportCSS renders the link tag and CSS-variable block for the
	// current pairing.
	ExportCSS() string

	// Load restores persisted state, if any.
	Load(ctx context.Context) error

	// Persist saves the current state.
	Persist(ctx context.Context) error
}
