// Package file provides file-based persistence for the catalogue cache
// and the pairing state.
//
// The catalogue cache is a single JSON document; the pairing state is a
// small TOML file. Both live under ~/.typepair by default and are
// written with restricted permissions. A corrupt file is treated as a
// missing one: these stores never let yesterday's bad write break
// today's session.
package file
