package domain

import "math"

// Tuning ranges for PairState fields. Values outside these ranges are
// clamped during sanitisation, never rejected.
const (
	MinBaseSize = 1
	MaxBaseSize = 400

	MinLineHeight = -20.0
	MaxLineHeight = 20.0

	MinParagraphWidth = 45
	MaxParagraphWidth = 85

	MinLetterSpacing = -4.0
	MaxLetterSpacing = 4.0
)

// PairState is the complete description of a heading/body pairing:
// the two families, their weights, and the typographic tuning values.
type PairState struct {
	// Heading is the heading font family.
	Heading string `json:"heading" toml:"heading"`

	// Body is the body font family.
	Body string `json:"body" toml:"body"`

	// HeadingWeight is the selected heading weight.
	HeadingWeight int `json:"headingWeight" toml:"heading_weight"`

	// BodyWeight is the selected body weight.
	BodyWeight int `json:"bodyWeight" toml:"body_weight"`

	// BaseSize is the body font size in px.
	BaseSize int `json:"baseSize" toml:"base_size"`

	// LineHeight is the unitless body line height. Signed input is
	// accepted; RenderableLineHeight maps it to a usable CSS value.
	LineHeight float64 `json:"lineHeight" toml:"line_height"`

	// ParagraphWidth is the measure in ch units.
	ParagraphWidth int `json:"paragraphWidth" toml:"paragraph_width"`

	// HeadingSpacing is heading letter-spacing in em.
	HeadingSpacing float64 `json:"headingSpacing" toml:"heading_spacing"`

	// ParagraphSpacing is body letter-spacing in em.
	ParagraphSpacing float64 `json:"paragraphSpacing" toml:"paragraph_spacing"`

	// Dark toggles the dark preview theme.
	Dark bool `json:"dark" toml:"dark"`

	// AllowSame permits heading and body to be the same family.
	AllowSame bool `json:"allowSame" toml:"allow_same"`
}

// DefaultPairState returns the out-of-the-box pairing.
func DefaultPairState() PairState {
	return PairState{
		Heading:          "Inter",
		Body:             "Source Serif 4",
		HeadingWeight:    700,
		BodyWeight:       400,
		BaseSize:         16,
		LineHeight:       1.55,
		ParagraphWidth:   66,
		HeadingSpacing:   0,
		ParagraphSpacing: 0,
		Dark:             false,
		AllowSame:        false,
	}
}

// Sanitize clamps every field into its valid range, substituting
// defaults for empty family names. It never fails: arbitrary persisted
// or URL-sourced state always maps to a usable PairState.
func (s PairState) Sanitize() PairState {
	defaults := DefaultPairState()

	if s.Heading == "" {
		s.Heading = defaults.Heading
	}
	if s.Body == "" {
		s.Body = defaults.Body
	}

	s.HeadingWeight = clampInt(s.HeadingWeight, MinWeight, MaxWeight)
	s.BodyWeight = clampInt(s.BodyWeight, MinWeight, MaxWeight)
	s.BaseSize = clampInt(s.BaseSize, MinBaseSize, MaxBaseSize)
	s.LineHeight = clampFloat(s.LineHeight, MinLineHeight, MaxLineHeight)
	s.ParagraphWidth = clampInt(s.ParagraphWidth, MinParagraphWidth, MaxParagraphWidth)
	s.HeadingSpacing = clampFloat(s.HeadingSpacing, MinLetterSpacing, MaxLetterSpacing)
	s.ParagraphSpacing = clampFloat(s.ParagraphSpacing, MinLetterSpacing, MaxLetterSpacing)

	return s
}

// RenderableLineHeight maps the signed line-height setting to a value
// CSS will accept. Line height cannot be zero or negative.
func (s PairState) RenderableLineHeight() float64 {
	return math.Max(0.01, math.Abs(s.LineHeight))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
