package sources

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
)

// xssiPrefix is the anti-JSON-hijacking guard some endpoints prepend
// to their payload, e.g. ")]}'".
var xssiPrefix = regexp.MustCompile(`^\)\]\}'\n?`)

// decodePayload parses a JSON payload that may carry an XSSI guard or
// stray framing around the document. A clean parse is tried first; on
// failure the text between the first opening bracket and the last
// closing bracket is re-parsed.
func decodePayload(raw []byte, v any) error {
	text := strings.TrimSpace(string(raw))
	text = xssiPrefix.ReplaceAllString(text, "")

	primaryErr := json.Unmarshal([]byte(text), v)
	if primaryErr == nil {
		return nil
	}

	start := strings.IndexAny(text, "[{")
	end := strings.LastIndex(text, "}")
	if e := strings.LastIndex(text, "]"); e > end {
		end = e
	}
	if start < 0 || end <= start {
		return fmt.Errorf("%w: %v", domain.ErrMalformedPayload, primaryErr)
	}

	if err := json.Unmarshal([]byte(text[start:end+1]), v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}
	return nil
}

// decodeEntryList parses a payload that is either a bare entry array
// or an object wrapping the array under envelopeKey.
func decodeEntryList(raw []byte, envelopeKey string) ([]domain.RawEntry, error) {
	var entries []domain.RawEntry
	if err := decodePayload(raw, &entries); err == nil {
		return entries, nil
	}

	var envelope map[string]json.RawMessage
	if err := decodePayload(raw, &envelope); err != nil {
		return nil, err
	}

	inner, ok := envelope[envelopeKey]
	if !ok {
		return nil, nil
	}
	if err := json.Unmarshal(inner, &entries); err != nil {
		return nil, fmt.Errorf("%w: %q is not an entry list: %v", domain.ErrMalformedPayload, envelopeKey, err)
	}
	return entries, nil
}

// stampValue renders the first present version-marker field, falling
// back to the given default. Markers appear as strings or numbers
// depending on the source.
func stampValue(fallback string, candidates ...json.RawMessage) string {
	for _, c := range candidates {
		text := strings.TrimSpace(string(c))
		if text == "" || text == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(c, &s); err == nil {
			if s != "" {
				return s
			}
			continue
		}
		return text
	}
	return fallback
}
