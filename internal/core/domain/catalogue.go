package domain

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Catalogue is an ordered collection of FontRecords, sorted ascending
// by family name with no duplicate families. A Catalogue is built once
// by the normaliser and never mutated; consumers swap whole catalogues
// atomically.
type Catalogue []FontRecord

// ByFamily builds a family-name lookup over the catalogue.
func (c Catalogue) ByFamily() map[string]FontRecord {
	m := make(map[string]FontRecord, len(c))
	for _, f := range c {
		m[f.Family] = f
	}
	return m
}

// Families returns the family names in catalogue order.
func (c Catalogue) Families() []string {
	out := make([]string, len(c))
	for i, f := range c {
		out[i] = f.Family
	}
	return out
}

// Filter returns the ordered subsequence of records whose lowercase
// family name contains needle. An empty needle matches everything.
func (c Catalogue) Filter(needle string) Catalogue {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		out := make(Catalogue, len(c))
		copy(out, c)
		return out
	}

	out := make(Catalogue, 0, len(c))
	for _, f := range c {
		if strings.Contains(f.FamilyLower, needle) {
			out = append(out, f)
		}
	}
	return out
}

// Sort orders the catalogue by family name, case-insensitively, with a
// byte-wise tiebreak so the order is total and deterministic.
func (c Catalogue) Sort() {
	sort.SliceStable(c, func(i, j int) bool {
		li, lj := c[i].FamilyLower, c[j].FamilyLower
		if li != lj {
			return li < lj
		}
		return c[i].Family < c[j].Family
	})
}

// signatureSeed and signatureFold parameterise the rolling hash used
// for catalogue signatures. The fold constant is the shift-add form
// 1 + 2 + 16 + 128 + 256 + 16777216 applied via uint32 arithmetic.
const signatureSeed uint32 = 2166136261

// Signature computes a compact deterministic fingerprint of the
// catalogue's content. It depends only on each record's
// family|category|weights tuple and the record count, so two
// catalogues with equal signatures are interchangeable regardless of
// which source produced them.
func (c Catalogue) Signature() string {
	hash := signatureSeed
	var sb strings.Builder

	for _, f := range c {
		sb.Reset()
		sb.WriteString(f.Family)
		sb.WriteByte('|')
		sb.WriteString(string(f.Category))
		sb.WriteByte('|')
		for i, w := range f.Weights {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(w))
		}

		for _, r := range sb.String() {
			hash ^= uint32(r)
			hash += (hash << 1) + (hash << 4) + (hash << 7) + (hash << 8) + (hash << 24)
		}
	}

	return strconv.Itoa(len(c)) + "-" + strconv.FormatUint(uint64(hash), 10)
}

// CacheTTL is the freshness window for a cached catalogue. A stale
// cache is still valid; staleness only changes user-facing messaging.
const CacheTTL = 7 * 24 * time.Hour

// CachedCatalogue is the persisted last-known-good catalogue together
// with the metadata the resolver needs for its anti-downgrade and
// change-detection decisions.
type CachedCatalogue struct {
	// Fonts is the normalised catalogue.
	Fonts Catalogue `json:"fonts"`

	// Signature is the content fingerprint of Fonts.
	Signature string `json:"signature"`

	// SourceStamp is an opaque version marker from the source.
	SourceStamp string `json:"sourceStamp"`

	// SourceLabel names the tier that produced Fonts.
	SourceLabel string `json:"sourceLabel"`

	// Quality is the rank of the producing tier.
	Quality Quality `json:"quality"`

	// FetchedAt is when the catalogue was fetched.
	FetchedAt time.Time `json:"timestamp"`
}

// Fresh reports whether the entry is within the freshness window.
func (e *CachedCatalogue) Fresh(now time.Time) bool {
	return now.Sub(e.FetchedAt) < CacheTTL
}
