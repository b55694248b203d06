package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Catalogue Source Errors. Every one of these is soft: the
	// resolver advances to the next tier rather than failing.

	// ErrRetrieval indicates a transport failure or non-success
	// response from a catalogue source.
	ErrRetrieval = errors.New("catalogue retrieval failed")

	// ErrMalformedPayload indicates a payload that could not be parsed
	// into raw entries, after tolerant re-parse attempts.
	ErrMalformedPayload = errors.New("malformed catalogue payload")

	// ErrEmptyCatalogue indicates a payload that normalised to zero
	// records.
	ErrEmptyCatalogue = errors.New("catalogue is empty")

	// ErrImplausiblySmall indicates a mirror response below the
	// plausibility threshold, likely truncated or a placeholder.
	ErrImplausiblySmall = errors.New("catalogue implausibly small")

	// ErrCacheCorrupt indicates an unreadable persisted catalogue
	// entry. Treated as a cache miss, never surfaced to the user.
	ErrCacheCorrupt = errors.New("catalogue cache corrupt")

	// ErrNoCatalogue indicates no tier produced a catalogue. The
	// embedded tier makes this unreachable in correct operation; it
	// exists for defensive reporting only.
	ErrNoCatalogue = errors.New("no catalogue available")
)
