package tui

import "errors"

// ErrMissingCatalogueService is returned when the catalogue service is not provided.
var ErrMissingCatalogueService = errors.New("tui: catalogue service is required")

// ErrMissingPairingService is returned when the pairing service is not provided.
var ErrMissingPairingService = errors.New("tui: pairing service is required")

// ErrMissingFavouriteService is returned when the favourite service is not provided.
var ErrMissingFavouriteService = errors.New("tui: favourite service is required")
