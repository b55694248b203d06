// Package pair provides the main pairing view: two virtualized font
// pickers, the specimen preview and the status bar.
package pair

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/components/picker"
	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/components/preview"
	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/components/status"
	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/keymap"
	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/messages"
	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/styles"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driving"
)

// View is the pairing view. Keys act in two modes: while a picker is
// open, printable keys feed its query; otherwise plain-letter commands
// apply (random pair, save, weight stepping, toggles).
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	heading   *picker.Model
	body      *picker.Model
	preview   *preview.Model
	statusbar *status.Bar

	pairing    driving.PairingService
	favourites driving.FavouriteService
	ctx        context.Context

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates the pairing view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	pairing driving.PairingService,
	favourites driving.FavouriteService,
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
		heading:    picker.New(messages.SlotHeading, s),
		body:       picker.New(messages.SlotBody, s),
		preview:    preview.New(s),
		statusbar:  status.NewBar(s, km),
		pairing:    pairing,
		favourites: favourites,
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

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetCatalogue installs a resolved catalogue: the pairing state is
// reconciled against it, both pickers get the new collection, and the
// resolution status lands in the status bar. Called for both the
// provisional cache result and the final one; the later call simply
// overwrites.
func (v *View) SetCatalogue(res *driving.Resolution) {
	v.pairing.SetCatalogue(res.Catalogue)
	v.heading.SetFonts(res.Catalogue)
	v.body.SetFonts(res.Catalogue)
	v.refreshFromState()
	v.statusbar.SetMessage(res.Status)
	if !v.pickerOpen() {
		v.statusbar.SetState(status.StateReady)
	}
}

// refreshFromState re-syncs pickers and preview after any pairing
// mutation. Both sides are refreshed because collision resolution can
// move the side that was not edited.
func (v *View) refreshFromState() {
	state := v.pairing.Current()
	v.heading.SetSelectedFamily(state.Heading)
	v.body.SetSelectedFamily(state.Body)
	v.preview.SetState(state, v.pairing.Fonts())
}

// Update handles messages for the pairing view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.FontChosen:
		switch msg.Slot {
		case messages.SlotHeading:
			v.pairing.SelectHeading(msg.Record.Family)
		case messages.SlotBody:
			v.pairing.SelectBody(msg.Record.Family)
		}
		v.refreshFromState()
		v.statusbar.SetState(status.StateReady)
		return v, v.persistCmd()

	case messages.FilterDebounced:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		v.heading, cmd = v.heading.Update(msg)
		cmds = append(cmds, cmd)
		v.body, cmd = v.body.Update(msg)
		cmds = append(cmds, cmd)
		return v, tea.Batch(cmds...)

	case messages.StateSaved:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
		}
		return v, nil

	case messages.FavouriteSaved:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
		} else {
			v.statusbar.SetMessage("Saved favourite " + msg.Favourite.Label())
		}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Forward everything else (cursor blinks and the like) to the open
	// picker.
	if open := v.openPicker(); open != nil {
		var cmd tea.Cmd
		switch open.Slot() {
		case messages.SlotHeading:
			v.heading, cmd = v.heading.Update(msg)
		case messages.SlotBody:
			v.body, cmd = v.body.Update(msg)
		}
		return v, cmd
	}
	return v, nil
}

// handleKey processes keyboard input.
func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if open := v.openPicker(); open != nil {
		return v.handlePickerKey(open, msg)
	}
	return v.handleBrowseKey(msg)
}

// handlePickerKey routes keys while a picker is open. Escape and Tab
// close it here; everything else is the picker's business.
func (v *View) handlePickerKey(open *picker.Model, msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		open.Close()
		v.statusbar.SetState(status.StateReady)
		return v, nil

	case tea.KeyTab:
		open.Close()
		other := v.heading
		if open.Slot() == messages.SlotHeading {
			other = v.body
		}
		return v, other.Open()
	}

	var cmd tea.Cmd
	switch open.Slot() {
	case messages.SlotHeading:
		v.heading, cmd = v.heading.Update(msg)
	case messages.SlotBody:
		v.body, cmd = v.body.Update(msg)
	}
	if !v.pickerOpen() {
		v.statusbar.SetState(status.StateReady)
	}
	return v, cmd
}

// handleBrowseKey routes plain-letter commands while no picker is open.
//
//nolint:gocyclo // flat command dispatch
func (v *View) handleBrowseKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	switch {
	case keymap.Matches(key, v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }

	case keymap.Matches(key, v.keymap.Help):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }

	case keymap.Matches(key, v.keymap.Favourites):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewFavourites} }

	case keymap.Matches(key, v.keymap.Heading), keymap.Matches(key, v.keymap.NextSlot):
		v.statusbar.SetState(status.StatePicking)
		return v, v.heading.Open()

	case keymap.Matches(key, v.keymap.Body):
		v.statusbar.SetState(status.StatePicking)
		return v, v.body.Open()

	case keymap.Matches(key, v.keymap.Random):
		v.pairing.RandomPair()
		v.refreshFromState()
		return v, v.persistCmd()

	case keymap.Matches(key, v.keymap.Save):
		return v, v.saveFavouriteCmd()

	case keymap.Matches(key, v.keymap.AllowSame):
		state := v.pairing.Current()
		state.AllowSame = !state.AllowSame
		v.pairing.Apply(state)
		v.refreshFromState()
		return v, v.persistCmd()

	case keymap.Matches(key, v.keymap.Dark):
		state := v.pairing.Current()
		state.Dark = !state.Dark
		v.pairing.Apply(state)
		v.refreshFromState()
		return v, v.persistCmd()

	case keymap.Matches(key, v.keymap.HeadingLighter):
		return v, v.stepWeight(messages.SlotHeading, -1)

	case keymap.Matches(key, v.keymap.HeadingBolder):
		return v, v.stepWeight(messages.SlotHeading, 1)

	case keymap.Matches(key, v.keymap.BodyLighter):
		return v, v.stepWeight(messages.SlotBody, -1)

	case keymap.Matches(key, v.keymap.BodyBolder):
		return v, v.stepWeight(messages.SlotBody, 1)
	}

	return v, nil
}

// stepWeight moves the slot's weight one step through the weights its
// family actually carries, clamped at the ends.
func (v *View) stepWeight(slot messages.Slot, dir int) tea.Cmd {
	state := v.pairing.Current()

	family, current := state.Heading, state.HeadingWeight
	if slot == messages.SlotBody {
		family, current = state.Body, state.BodyWeight
	}

	weights := v.pairing.WeightsFor(family)
	pos := 0
	for i, w := range weights {
		if w == current {
			pos = i
			break
		}
	}

	pos += dir
	if pos < 0 {
		pos = 0
	}
	if pos > len(weights)-1 {
		pos = len(weights) - 1
	}

	if slot == messages.SlotHeading {
		v.pairing.SetHeadingWeight(weights[pos])
	} else {
		v.pairing.SetBodyWeight(weights[pos])
	}
	v.refreshFromState()
	return v.persistCmd()
}

// persistCmd saves the pairing state off the update loop.
func (v *View) persistCmd() tea.Cmd {
	pairing := v.pairing
	ctx := v.ctx
	return func() tea.Msg {
		return messages.StateSaved{Err: pairing.Persist(ctx)}
	}
}

// saveFavouriteCmd stores the current pairing as a favourite.
func (v *View) saveFavouriteCmd() tea.Cmd {
	favourites := v.favourites
	state := v.pairing.Current()
	ctx := v.ctx
	return func() tea.Msg {
		fav, err := favourites.Save(ctx, state)
		return messages.FavouriteSaved{Favourite: fav, Err: err}
	}
}

// View renders the pairing view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	header := v.styles.Title.Render("typepair")

	pickers := lipgloss.JoinHorizontal(
		lipgloss.Top,
		v.heading.View(),
		"   ",
		v.body.View(),
	)

	sections := []string{header, "", pickers, ""}

	if !v.pickerOpen() {
		sections = append(sections, v.preview.View(), "")
	}

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions and allocates space to the
// components.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	half := width/2 - 2
	listHeight := height - 10
	v.heading.SetDimensions(half, listHeight)
	v.body.SetDimensions(half, listHeight)
	v.preview.SetDimensions(width - 4)
	v.statusbar.SetWidth(width)
}

// pickerOpen reports whether either picker is open.
func (v *View) pickerOpen() bool {
	return v.heading.IsOpen() || v.body.IsOpen()
}

// openPicker returns the open picker, or nil.
func (v *View) openPicker() *picker.Model {
	if v.heading.IsOpen() {
		return v.heading
	}
	if v.body.IsOpen() {
		return v.body
	}
	return nil
}

// Heading returns the heading picker (for testing).
func (v *View) Heading() *picker.Model {
	return v.heading
}

// Body returns the body picker (for testing).
func (v *View) Body() *picker.Model {
	return v.body
}

// StatusBar returns the status bar (for testing).
func (v *View) StatusBar() *status.Bar {
	return v.statusbar
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Err returns the last error, if any.
func (v *View) Err() error {
	return v.err
}
