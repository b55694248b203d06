// Package fonts normalises heterogeneous font-catalogue payloads into
// the canonical Catalogue form. Sources disagree on classification
// field names and on how weights are described (explicit lists,
// variant tokens, per-weight file maps, variable axes); this package
// merges every signal present and produces one deduplicated, sorted
// record per family.
package fonts

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
)

// threeDigits matches the weight number embedded in variant tokens and
// font-file map keys, e.g. "300italic" or "700".
var threeDigits = regexp.MustCompile(`\d{3}`)

// NormaliseEntry converts one raw record into a FontRecord. It returns
// ok=false for records without a usable family name.
func NormaliseEntry(entry *domain.RawEntry) (domain.FontRecord, bool) {
	family := strings.TrimSpace(entry.Family)
	if family == "" {
		return domain.FontRecord{}, false
	}

	return domain.FontRecord{
		Family:      family,
		FamilyLower: strings.ToLower(family),
		Category:    domain.ParseCategory(entry.ClassificationText()),
		Weights:     extractWeights(entry),
	}, true
}

// Normalise converts a whole source payload into a Catalogue:
// unusable entries are skipped, duplicate families collapse to the
// last-normalised record, and the result is sorted by family name.
func Normalise(entries []domain.RawEntry) domain.Catalogue {
	byFamily := make(map[string]domain.FontRecord, len(entries))
	for i := range entries {
		record, ok := NormaliseEntry(&entries[i])
		if !ok {
			continue
		}
		byFamily[record.Family] = record
	}

	catalogue := make(domain.Catalogue, 0, len(byFamily))
	for _, record := range byFamily {
		catalogue = append(catalogue, record)
	}
	catalogue.Sort()
	return catalogue
}

// Build normalises a payload and computes its content signature in one
// step. This is the form the source adapters use.
func Build(entries []domain.RawEntry) (domain.Catalogue, string) {
	catalogue := Normalise(entries)
	return catalogue, catalogue.Signature()
}

// extractWeights merges every weight signal the entry carries. All
// discovered weights are rounded to the nearest hundred and clamped to
// the valid axis; an entry with no recoverable weights gets the
// default pair.
func extractWeights(entry *domain.RawEntry) []int {
	seen := make(map[int]struct{})

	// Explicit numeric list.
	for _, n := range entry.Weights {
		if v, err := n.Float64(); err == nil {
			seen[domain.NormalizeWeight(int(v))] = struct{}{}
		}
	}

	// Variant tokens such as "300italic".
	for _, variant := range entry.Variants {
		if m := threeDigits.FindString(variant); m != "" {
			seen[weightFromToken(m)] = struct{}{}
		}
	}

	// Keys of the per-weight font-files map.
	for key := range entry.Fonts {
		if m := threeDigits.FindString(key); m != "" {
			seen[weightFromToken(m)] = struct{}{}
		}
	}

	// A variable "wght" axis contributes every hundred in its range.
	for i := range entry.Axes {
		axis := &entry.Axes[i]
		if axis.Tag != "wght" {
			continue
		}
		minVal, maxVal, ok := axis.Bounds()
		if !ok {
			continue
		}
		start := maxInt(domain.MinWeight, roundToHundred(minVal))
		end := minInt(domain.MaxWeight, roundToHundred(maxVal))
		for w := start; w <= end; w += domain.WeightStep {
			seen[w] = struct{}{}
		}
	}

	if len(seen) == 0 {
		return domain.DefaultWeights()
	}

	weights := make([]int, 0, len(seen))
	for w := range seen {
		weights = append(weights, w)
	}
	sort.Ints(weights)
	return weights
}

func weightFromToken(token string) int {
	v, err := strconv.Atoi(token)
	if err != nil {
		return 400
	}
	return domain.NormalizeWeight(v)
}

func roundToHundred(v float64) int {
	return int(v/100+0.5) * 100
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
