// Package normalisers provides implementations that transform raw
// catalogue-source records into the canonical domain representation.
// Each normaliser knows the quirks of a payload family and reduces
// them to the same FontRecord shape.
package normalisers
