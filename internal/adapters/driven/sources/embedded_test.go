package sources

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
)

func TestEmbeddedSource_Fetch(t *testing.T) {
	source := NewEmbeddedSource()

	assert.Equal(t, "embedded list", source.Label())
	assert.Equal(t, domain.QualityEmbedded, source.Quality())

	result, err := source.Fetch(context.Background())
	require.NoError(t, err)

	assert.Len(t, result.Fonts, 30)
	assert.Equal(t, "embedded-fallback", result.SourceStamp)
	assert.Equal(t, result.Fonts.Signature(), result.Signature)

	families := result.Fonts.Families()
	assert.True(t, sort.SliceIsSorted(families, func(i, j int) bool {
		return strings.ToLower(families[i]) < strings.ToLower(families[j])
	}))

	byFamily := result.Fonts.ByFamily()

	inter, ok := byFamily["Inter"]
	require.True(t, ok)
	assert.Equal(t, domain.CategorySans, inter.Category)
	assert.Len(t, inter.Weights, 9)

	lora, ok := byFamily["Lora"]
	require.True(t, ok)
	assert.Equal(t, domain.CategorySerif, lora.Category)

	fira, ok := byFamily["Fira Code"]
	require.True(t, ok)
	assert.Equal(t, domain.CategoryMono, fira.Category)

	pacifico, ok := byFamily["Pacifico"]
	require.True(t, ok)
	assert.Equal(t, domain.CategoryHandwriting, pacifico.Category)
	assert.Equal(t, []int{400}, pacifico.Weights)

	bebas, ok := byFamily["Bebas Neue"]
	require.True(t, ok)
	assert.Equal(t, domain.CategoryDisplay, bebas.Category)
}

func TestEmbeddedSource_FetchEveryCategoryPresent(t *testing.T) {
	source := NewEmbeddedSource()

	result, err := source.Fetch(context.Background())
	require.NoError(t, err)

	seen := make(map[domain.Category]bool)
	for _, f := range result.Fonts {
		seen[f.Category] = true
	}

	for _, cat := range []domain.Category{
		domain.CategorySans,
		domain.CategorySerif,
		domain.CategoryMono,
		domain.CategoryDisplay,
		domain.CategoryHandwriting,
	} {
		assert.True(t, seen[cat], "missing category %s", cat)
	}
}
