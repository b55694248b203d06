package domain

import "strings"

// Category classifies a font family into a broad typographic group.
type Category string

// Available font categories.
const (
	// CategorySans covers sans-serif faces. It is also the default when
	// a source provides no recognisable classification.
	CategorySans Category = "sans"

	// CategorySerif covers serif faces.
	CategorySerif Category = "serif"

	// CategoryMono covers monospaced faces.
	CategoryMono Category = "mono"

	// CategoryDisplay covers decorative display faces.
	CategoryDisplay Category = "display"

	// CategoryHandwriting covers script and handwriting faces.
	CategoryHandwriting Category = "handwriting"
)

// IsValid returns true if the category is recognised.
func (c Category) IsValid() bool {
	switch c {
	case CategorySans, CategorySerif, CategoryMono, CategoryDisplay, CategoryHandwriting:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// Generic returns the CSS generic family used as the stack fallback.
func (c Category) Generic() string {
	switch c {
	case CategorySerif:
		return "serif"
	case CategoryMono:
		return "monospace"
	case CategoryHandwriting:
		return "cursive"
	default:
		return "sans-serif"
	}
}

// ParseCategory derives a Category from free-form classification text.
// Matching is case-insensitive and ignores whitespace, underscores and
// hyphens, so "Sans Serif", "sans_serif" and "SANS-SERIF" are equivalent.
// Unrecognised or empty input yields CategorySans.
func ParseCategory(input string) Category {
	value := strings.ToLower(input)
	value = strings.NewReplacer(" ", "", "\t", "", "_", "", "-", "").Replace(value)

	switch {
	case value == "":
		return CategorySans
	case strings.Contains(value, "serif") && !strings.Contains(value, "sans"):
		return CategorySerif
	case strings.Contains(value, "mono"):
		return CategoryMono
	case strings.Contains(value, "display"):
		return CategoryDisplay
	case strings.Contains(value, "hand") || strings.Contains(value, "script"):
		return CategoryHandwriting
	default:
		return CategorySans
	}
}

// Weight bounds and granularity for the CSS font-weight axis.
const (
	// MinWeight is the lowest representable font weight.
	MinWeight = 100

	// MaxWeight is the highest representable font weight.
	MaxWeight = 900

	// WeightStep is the granularity of the weight axis.
	WeightStep = 100
)

// FontRecord is the canonical representation of one font family after
// normalisation. Family is the unique key within a Catalogue.
type FontRecord struct {
	// Family is the display name, trimmed and non-empty.
	Family string `json:"family"`

	// FamilyLower is Family lowercased, precomputed for searching.
	FamilyLower string `json:"familyLower"`

	// Category is the typographic classification.
	Category Category `json:"category"`

	// Weights is the ascending list of available weights. Always
	// non-empty; DefaultWeights() is substituted when a source carries
	// no weight information.
	Weights []int `json:"weights"`
}

// DefaultWeights returns the weights assumed for a family whose source
// record carries no recoverable weight information.
func DefaultWeights() []int {
	return []int{400, 700}
}

// NormalizeWeight rounds a weight to the nearest multiple of 100 and
// clamps it into [MinWeight, MaxWeight].
func NormalizeWeight(value int) int {
	rounded := ((value + WeightStep/2) / WeightStep) * WeightStep
	if rounded < MinWeight {
		return MinWeight
	}
	if rounded > MaxWeight {
		return MaxWeight
	}
	return rounded
}

// SnapWeight returns the member of available closest to target.
// An empty list snaps to 400. Ties resolve to the lighter weight,
// matching ascending iteration order.
func SnapWeight(target int, available []int) int {
	if len(available) == 0 {
		return 400
	}

	best := available[0]
	bestDiff := absInt(best - target)
	for _, w := range available[1:] {
		if diff := absInt(w - target); diff < bestDiff {
			best = w
			bestDiff = diff
		}
	}
	return best
}

// CSSStack builds a CSS font-family stack for the family, quoting the
// name and appending the category's generic fallback.
func CSSStack(family string, category Category) string {
	safe := strings.ReplaceAll(family, `"`, `\"`)
	return `"` + safe + `", ` + category.Generic()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
