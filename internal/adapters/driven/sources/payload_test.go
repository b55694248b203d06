package sources

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
)

func TestDecodePayload_Clean(t *testing.T) {
	var out map[string]any
	require.NoError(t, decodePayload([]byte(`{"a": 1}`), &out))
	assert.Equal(t, float64(1), out["a"])
}

func TestDecodePayload_XSSIPrefix(t *testing.T) {
	var out map[string]any
	require.NoError(t, decodePayload([]byte(")]}'\n{\"a\": 1}"), &out))
	assert.Equal(t, float64(1), out["a"])
}

func TestDecodePayload_TolerantReparse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"leading garbage", `while(1);{"a": 1}`},
		{"trailing garbage", `{"a": 1}// served by cdn`},
		{"both", `xx{"a": 1}yy`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out map[string]any
			require.NoError(t, decodePayload([]byte(tt.raw), &out))
			assert.Equal(t, float64(1), out["a"])
		})
	}
}

func TestDecodePayload_ArrayWithFraming(t *testing.T) {
	var out []int
	require.NoError(t, decodePayload([]byte(`)]}'[1,2,3]`), &out))
	assert.Equal(t, []int{1, 2, 3}, out)
}

func TestDecodePayload_Garbage(t *testing.T) {
	var out map[string]any
	err := decodePayload([]byte("not json at all"), &out)
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestDecodeEntryList_BareArray(t *testing.T) {
	entries, err := decodeEntryList([]byte(`[{"family": "Inter"}]`), "items")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Inter", entries[0].Family)
}

func TestDecodeEntryList_Envelope(t *testing.T) {
	entries, err := decodeEntryList([]byte(`{"items": [{"family": "Lora"}]}`), "items")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Lora", entries[0].Family)
}

func TestDecodeEntryList_MissingKey(t *testing.T) {
	entries, err := decodeEntryList([]byte(`{"other": []}`), "items")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStampValue(t *testing.T) {
	tests := []struct {
		name       string
		candidates []json.RawMessage
		want       string
	}{
		{"string", []json.RawMessage{json.RawMessage(`"2026-08-01"`)}, "2026-08-01"},
		{"number", []json.RawMessage{json.RawMessage(`1722470400`)}, "1722470400"},
		{"skips null", []json.RawMessage{json.RawMessage(`null`), json.RawMessage(`"v2"`)}, "v2"},
		{"skips empty string", []json.RawMessage{json.RawMessage(`""`), json.RawMessage(`"v3"`)}, "v3"},
		{"fallback", nil, "google"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stampValue("google", tt.candidates...))
		})
	}
}
