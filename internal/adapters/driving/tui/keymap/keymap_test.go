package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_PickerBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Heading.Keys(), "h")
	assert.Contains(t, km.Body.Keys(), "b")
	assert.Contains(t, km.NextSlot.Keys(), "tab")
	assert.Contains(t, km.Select.Keys(), "enter")
	assert.Contains(t, km.Back.Keys(), "esc")
}

func TestDefaultKeyMap_WeightBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.HeadingLighter.Keys(), "[")
	assert.Contains(t, km.HeadingBolder.Keys(), "]")
	assert.Contains(t, km.BodyLighter.Keys(), "{")
	assert.Contains(t, km.BodyBolder.Keys(), "}")
}

func TestDefaultKeyMap_PairingBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Random.Keys(), "r")
	assert.Contains(t, km.Save.Keys(), "s")
	assert.Contains(t, km.Favourites.Keys(), "f")
	assert.Contains(t, km.AllowSame.Keys(), "a")
	assert.Contains(t, km.Dark.Keys(), "d")
	assert.Contains(t, km.Delete.Keys(), "x")
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()

	assert.Len(t, bindings, 6)
	assert.Equal(t, km.Heading, bindings[0])
	assert.Equal(t, km.Quit, bindings[5])
}

func TestPickerHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.PickerHelp()

	assert.Len(t, bindings, 4)
	assert.Equal(t, km.Select, bindings[1])
}

func TestFullHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.FullHelp()

	assert.Len(t, bindings, 4)    // 4 groups
	assert.Len(t, bindings[0], 5) // picker navigation
	assert.Len(t, bindings[1], 4) // weight stepping
}

func TestMatches_True(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("?", km.Help))
	assert.True(t, Matches("[", km.HeadingLighter))
}

func TestMatches_False(t *testing.T) {
	km := DefaultKeyMap()

	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("a", km.Help))
	assert.False(t, Matches("]", km.HeadingLighter))
}

func TestBindings_HaveHelp(t *testing.T) {
	km := DefaultKeyMap()

	testCases := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"Help", km.Help},
		{"Back", km.Back},
		{"Select", km.Select},
		{"NextSlot", km.NextSlot},
		{"Heading", km.Heading},
		{"Body", km.Body},
		{"Random", km.Random},
		{"Save", km.Save},
		{"Favourites", km.Favourites},
		{"Delete", km.Delete},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			help := tc.binding.Help()
			assert.NotEmpty(t, help.Key, "binding should have help key")
		})
	}
}
