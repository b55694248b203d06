// Package domain defines the core business entities for TypePair.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FontRecord: A normalised font family with category and weights
//   - Catalogue: An ordered, deduplicated collection of FontRecords
//   - RawEntry: An un-normalised record from a catalogue source
//   - PairState: The current heading/body pairing configuration
//   - Favourite: A saved pairing
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
