// Package sources implements the CatalogueSource driven port for each
// acquisition tier: the Google Fonts metadata endpoint, the large
// catalogue mirrors, the local fallback file, and the embedded list.
//
// Every source normalises its payload before returning, so the rest of
// the system only ever sees canonical catalogues. All failures are
// soft; the resolver decides what to do with them.
package sources
