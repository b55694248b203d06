package sources

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
)

func writeFallback(t *testing.T, content string) *LocalFileSource {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fonts_fallback.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	source, err := NewLocalFileSource(path)
	require.NoError(t, err)
	return source
}

func TestLocalFileSource_FetchArray(t *testing.T) {
	source := writeFallback(t, `[
		{"family": "Inter", "category": "sans-serif", "weights": [400, 700]},
		{"family": "Lora", "category": "serif", "weights": [400]}
	]`)

	assert.Equal(t, "local fallback", source.Label())
	assert.Equal(t, domain.QualityLocalFile, source.Quality())

	result, err := source.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Fonts, 2)
	assert.Equal(t, "local-fallback", result.SourceStamp)
}

func TestLocalFileSource_FetchFontsEnvelope(t *testing.T) {
	source := writeFallback(t, `{"fonts": [{"family": "Caveat", "category": "handwriting", "weights": [400, 700]}]}`)

	result, err := source.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Fonts, 1)
	assert.Equal(t, domain.CategoryHandwriting, result.Fonts[0].Category)
}

func TestLocalFileSource_FetchMissingFile(t *testing.T) {
	source, err := NewLocalFileSource(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	_, err = source.Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrRetrieval)
}

func TestLocalFileSource_FetchEmpty(t *testing.T) {
	source := writeFallback(t, `[]`)

	_, err := source.Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyCatalogue)
}

func TestLocalFileSource_FetchMalformed(t *testing.T) {
	source := writeFallback(t, `not json`)

	_, err := source.Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestLocalFileSource_Watch(t *testing.T) {
	source := writeFallback(t, `[{"family": "Inter"}]`)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	require.NoError(t, source.Watch(ctx, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}))

	require.NoError(t, os.WriteFile(source.Path(), []byte(`[{"family": "Lora"}]`), 0600))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification")
	}
}
