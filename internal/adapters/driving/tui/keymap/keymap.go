// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI. Plain-letter bindings
// apply in browse mode only; while a picker is open, printable keys
// feed its query input.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back closes an open picker or returns to the pairing view.
	Back key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select commits the active row.
	Select key.Binding

	// NextSlot closes the open picker and opens the other one.
	NextSlot key.Binding

	// Heading opens the heading picker.
	Heading key.Binding

	// Body opens the body picker.
	Body key.Binding

	// Random picks a random pairing.
	Random key.Binding

	// Save stores the current pairing as a favourite.
	Save key.Binding

	// Favourites opens the favourites view.
	Favourites key.Binding

	// AllowSame toggles whether heading and body may match.
	AllowSame key.Binding

	// Dark toggles the dark preview theme.
	Dark key.Binding

	// HeadingLighter and HeadingBolder step the heading weight.
	HeadingLighter key.Binding
	HeadingBolder  key.Binding

	// BodyLighter and BodyBolder step the body weight.
	BodyLighter key.Binding
	BodyBolder  key.Binding

	// Delete removes the selected favourite.
	Delete key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+j"),
			key.WithHelp("↓", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		NextSlot: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "other picker"),
		),
		Heading: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "heading font"),
		),
		Body: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "body font"),
		),
		Random: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random pair"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save favourite"),
		),
		Favourites: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favourites"),
		),
		AllowSame: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "allow same family"),
		),
		Dark: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dark preview"),
		),
		HeadingLighter: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "heading lighter"),
		),
		HeadingBolder: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "heading bolder"),
		),
		BodyLighter: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "body lighter"),
		),
		BodyBolder: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "body bolder"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Heading, k.Body, k.Random, k.Favourites, k.Help, k.Quit}
}

// PickerHelp returns keybindings shown while a picker is open.
func (k *KeyMap) PickerHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.NextSlot, k.Back}
}

// FavouritesHelp returns keybindings for the favourites view.
func (k *KeyMap) FavouritesHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.Delete, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Heading, k.Body, k.NextSlot, k.Select, k.Back},
		{k.HeadingLighter, k.HeadingBolder, k.BodyLighter, k.BodyBolder},
		{k.Random, k.Save, k.Favourites, k.AllowSame, k.Dark},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
