// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - CatalogueSource: Fetches and normalises one catalogue tier
//   - CatalogueCacheStore: Last-known-good catalogue persistence
//   - FavouriteStore: Saved pairing persistence
//   - StateStore: Pairing state persistence
//
// The embedded CatalogueSource cannot fail, so a resolver given the
// full tier chain always produces a catalogue even when every store
// and network tier is unavailable.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
