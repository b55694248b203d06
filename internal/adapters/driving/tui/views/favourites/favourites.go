// Package favourites provides the saved-pairings view.
package favourites

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/keymap"
	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/messages"
	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/styles"
	"github.com/typepair-labs/typepair-cli/internal/core/domain"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driving"
)

// View lists saved pairings, newest first. Enter applies the selected
// one and returns to the pairing view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	favourites driving.FavouriteService
	pairing    driving.PairingService
	ctx        context.Context

	list     []domain.Favourite
	selected int

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates the favourites view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	favourites driving.FavouriteService,
	pairing driving.PairingService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		favourites: favourites,
		pairing:    pairing,
		ctx:        context.Background(),
		width:      80,
		height:     24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the favourites list.
func (v *View) Init() tea.Cmd {
	return v.loadCmd()
}

// Update handles messages for the favourites view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.FavouritesLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.list = msg.Favourites
		if v.selected >= len(v.list) {
			v.selected = len(v.list) - 1
		}
		if v.selected < 0 {
			v.selected = 0
		}
		return v, nil

	case messages.FavouriteDeleted:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		return v, v.loadCmd()
	}

	return v, nil
}

// handleKey processes keyboard input.
func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewPair} }
	case tea.KeyUp:
		v.moveSelection(-1)
		return v, nil
	case tea.KeyDown:
		v.moveSelection(1)
		return v, nil
	case tea.KeyEnter:
		return v, v.applySelected()
	}

	switch {
	case key == "k":
		v.moveSelection(-1)
	case key == "j":
		v.moveSelection(1)
	case keymap.Matches(key, v.keymap.Delete):
		return v, v.deleteSelected()
	case keymap.Matches(key, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	}
	return v, nil
}

func (v *View) moveSelection(delta int) {
	if len(v.list) == 0 {
		return
	}
	v.selected += delta
	if v.selected < 0 {
		v.selected = 0
	}
	if v.selected > len(v.list)-1 {
		v.selected = len(v.list) - 1
	}
}

// applySelected applies the selected favourite to the pairing state
// and hands control back to the pairing view.
func (v *View) applySelected() tea.Cmd {
	if v.selected < 0 || v.selected >= len(v.list) {
		return nil
	}

	fav := v.list[v.selected]
	v.pairing.Apply(fav.State)

	pairing := v.pairing
	ctx := v.ctx
	return tea.Batch(
		func() tea.Msg { return messages.StateSaved{Err: pairing.Persist(ctx)} },
		func() tea.Msg { return messages.FavouriteApplied{Favourite: &fav} },
	)
}

// deleteSelected removes the selected favourite.
func (v *View) deleteSelected() tea.Cmd {
	if v.selected < 0 || v.selected >= len(v.list) {
		return nil
	}

	id := v.list[v.selected].ID
	favourites := v.favourites
	ctx := v.ctx
	return func() tea.Msg {
		return messages.FavouriteDeleted{ID: id, Err: favourites.Delete(ctx, id)}
	}
}

// loadCmd fetches the favourites list.
func (v *View) loadCmd() tea.Cmd {
	favourites := v.favourites
	ctx := v.ctx
	return func() tea.Msg {
		list, err := favourites.List(ctx)
		return messages.FavouritesLoaded{Favourites: list, Err: err}
	}
}

// View renders the favourites view.
func (v *View) View() string {
	header := v.styles.Title.Render("Favourites")

	if v.err != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			header, "", v.styles.Error.Render("Error: "+v.err.Error()))
	}

	if len(v.list) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			header, "", v.styles.Muted.Render("No favourites saved. Press s in the pairing view to save one."))
	}

	lines := make([]string, 0, len(v.list)+3)
	lines = append(lines, header, "")

	visible := v.height - 6
	if visible < 1 {
		visible = 1
	}
	start := 0
	if v.selected >= visible {
		start = v.selected - visible + 1
	}
	end := start + visible
	if end > len(v.list) {
		end = len(v.list)
	}

	for i := start; i < end; i++ {
		lines = append(lines, v.renderRow(i))
	}

	lines = append(lines, "", v.styles.Help.Render("enter: apply | x: delete | esc: back"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderRow formats one favourite.
func (v *View) renderRow(i int) string {
	fav := &v.list[i]
	row := fmt.Sprintf("%s  (%d/%d)  %s",
		fav.Label(), fav.State.HeadingWeight, fav.State.BodyWeight,
		fav.CreatedAt.Local().Format(time.DateOnly))

	if i == v.selected {
		return v.styles.Selected.Render("> " + row)
	}
	return v.styles.Normal.Render("  " + row)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Favourites returns the loaded list (for testing).
func (v *View) Favourites() []domain.Favourite {
	return v.list
}

// Selected returns the selected index (for testing).
func (v *View) Selected() int {
	return v.selected
}

// Err returns the last error, if any.
func (v *View) Err() error {
	return v.err
}
