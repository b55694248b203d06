// Package driving defines the interfaces that outer layers call IN to core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI and TUI adapters depend on these interfaces; core services
// implement them.
//
//   - CatalogueService: Resolves the best-available font catalogue
//   - PairingService: Owns the heading/body pairing state
//   - FavouriteService: Saved pairing management
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
