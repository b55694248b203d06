package domain

// Quality ranks catalogue sources by trust. It is used only by the
// resolver's anti-downgrade rule: a freshly fetched catalogue of
// strictly lower quality never replaces a cached one.
type Quality int

// Source quality ranks, lowest to highest trust. Embedded and local
// file share a rank: both are bundled data, neither is fresher than
// the other.
const (
	// QualityUnknown is the zero value for an unranked catalogue.
	QualityUnknown Quality = 0

	// QualityEmbedded is the compiled-in fallback list.
	QualityEmbedded Quality = 1

	// QualityLocalFile is the bundled fallback document.
	QualityLocalFile Quality = 1

	// QualityMirror is a third-party mirror of the full catalogue.
	QualityMirror Quality = 2

	// QualityPrimary is the upstream metadata endpoint.
	QualityPrimary Quality = 3
)

// String returns a human-readable label for the rank.
func (q Quality) String() string {
	switch q {
	case QualityEmbedded: // also QualityLocalFile
		return "fallback"
	case QualityMirror:
		return "mirror"
	case QualityPrimary:
		return "primary"
	default:
		return "unknown"
	}
}
