package domain

import "encoding/json"

// RawEntry is one un-normalised family record as served by a catalogue
// source. The field set is the union of the shapes the known sources
// produce; every field except Family is optional, and sources are free
// to populate any combination. Normalisation reduces a RawEntry to a
// FontRecord.
type RawEntry struct {
	// Family is the family name. Entries without one are skipped.
	Family string `json:"family"`

	// Category, Classification and Kind are alternative spellings of
	// the typographic class across source schemas.
	Category       string `json:"category"`
	Classification string `json:"classification"`
	Kind           string `json:"kind"`

	// Weights is an explicit numeric weight list.
	Weights []json.Number `json:"weights"`

	// Variants holds style tokens such as "300italic" or "regular";
	// any embedded 3-digit number is a weight signal.
	Variants []string `json:"variants"`

	// Fonts maps per-weight keys (e.g. "700", "400italic") to file
	// info. Only the keys are inspected.
	Fonts map[string]json.RawMessage `json:"fonts"`

	// Axes lists variable-font axes; a "wght" axis contributes its
	// whole range.
	Axes []RawAxis `json:"axes"`
}

// ClassificationText returns the first non-empty classification field.
func (e *RawEntry) ClassificationText() string {
	if e.Category != "" {
		return e.Category
	}
	if e.Classification != "" {
		return e.Classification
	}
	return e.Kind
}

// RawAxis is a variable-font axis as serialised by catalogue sources.
// Min/Start/MinValue (and the max counterparts) are schema variants of
// the same bound; the first finite one wins.
type RawAxis struct {
	Tag      string       `json:"tag"`
	Min      *json.Number `json:"min"`
	Start    *json.Number `json:"start"`
	MinValue *json.Number `json:"minValue"`
	Max      *json.Number `json:"max"`
	End      *json.Number `json:"end"`
	MaxValue *json.Number `json:"maxValue"`
}

// Bounds resolves the axis range, returning ok=false when either bound
// is missing, unparseable, or inverted.
func (a *RawAxis) Bounds() (minVal, maxVal float64, ok bool) {
	minVal, minOK := firstNumber(a.Min, a.Start, a.MinValue)
	maxVal, maxOK := firstNumber(a.Max, a.End, a.MaxValue)
	if !minOK || !maxOK || maxVal < minVal {
		return 0, 0, false
	}
	return minVal, maxVal, true
}

func firstNumber(candidates ...*json.Number) (float64, bool) {
	for _, n := range candidates {
		if n == nil {
			continue
		}
		if v, err := n.Float64(); err == nil {
			return v, true
		}
	}
	return 0, false
}
