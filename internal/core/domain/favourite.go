package domain

import "time"

// MaxFavourites caps the favourites list. Saving beyond the cap drops
// the oldest entries.
const MaxFavourites = 50

// Favourite is a saved pairing snapshot.
type Favourite struct {
	// ID is the unique identifier.
	ID string `json:"id"`

	// CreatedAt is when the favourite was saved.
	CreatedAt time.Time `json:"createdAt"`

	// State is the pairing at the moment of saving.
	State PairState `json:"state"`
}

// Label is the display name for the favourite, "Heading / Body".
func (f *Favourite) Label() string {
	return f.State.Heading + " / " + f.State.Body
}
