package pair

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/components/status"
	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/messages"
	"github.com/typepair-labs/typepair-cli/internal/core/domain"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driving"
)

// fakePairing is a minimal stateful PairingService for view tests. It
// records mutations without the real reconciliation logic.
type fakePairing struct {
	state      domain.PairState
	fonts      domain.Catalogue
	persists   int
	persistErr error
}

var _ driving.PairingService = (*fakePairing)(nil)

func (f *fakePairing) Current() domain.PairState       { return f.state }
func (f *fakePairing) Fonts() domain.Catalogue         { return f.fonts }
func (f *fakePairing) SetCatalogue(c domain.Catalogue) { f.fonts = c }

func (f *fakePairing) WeightsFor(family string) []int {
	for _, r := range f.fonts {
		if r.Family == family {
			return r.Weights
		}
	}
	return domain.DefaultWeights()
}

func (f *fakePairing) SelectHeading(family string) { f.state.Heading = family }
func (f *fakePairing) SelectBody(family string)    { f.state.Body = family }
func (f *fakePairing) SetHeadingWeight(w int)      { f.state.HeadingWeight = w }
func (f *fakePairing) SetBodyWeight(w int)         { f.state.BodyWeight = w }
func (f *fakePairing) Apply(s domain.PairState)    { f.state = s }

func (f *fakePairing) RandomPair() {
	f.state.Heading = "Roboto"
	f.state.Body = "Lora"
}

func (f *fakePairing) GoogleCSSHref() string { return "" }
func (f *fakePairing) ExportCSS() string     { return "" }

func (f *fakePairing) Load(context.Context) error { return nil }

func (f *fakePairing) Persist(context.Context) error {
	f.persists++
	return f.persistErr
}

// fakeFavourites records saves for view tests.
type fakeFavourites struct {
	saved   []domain.PairState
	saveErr error
}

var _ driving.FavouriteService = (*fakeFavourites)(nil)

func (f *fakeFavourites) Save(_ context.Context, state domain.PairState) (*domain.Favourite, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.saved = append(f.saved, state)
	return &domain.Favourite{ID: "fav-1", State: state}, nil
}

func (f *fakeFavourites) List(context.Context) ([]domain.Favourite, error) { return nil, nil }
func (f *fakeFavourites) Get(context.Context, string) (*domain.Favourite, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeFavourites) Delete(context.Context, string) error { return nil }

func testCatalogue() domain.Catalogue {
	return domain.Catalogue{
		{Family: "Inter", FamilyLower: "inter", Category: domain.CategorySans, Weights: []int{400, 700}},
		{Family: "Lora", FamilyLower: "lora", Category: domain.CategorySerif, Weights: []int{400, 500, 600, 700}},
		{Family: "Roboto", FamilyLower: "roboto", Category: domain.CategorySans, Weights: []int{100, 400, 700, 900}},
		{Family: "Source Serif 4", FamilyLower: "source serif 4", Category: domain.CategorySerif, Weights: []int{400, 600, 700}},
	}
}

func newTestView() (*View, *fakePairing, *fakeFavourites) {
	pairing := &fakePairing{state: domain.DefaultPairState()}
	favourites := &fakeFavourites{}
	v := NewView(nil, nil, pairing, favourites)
	v.SetDimensions(100, 30)
	v.SetCatalogue(&driving.Resolution{
		Catalogue: testCatalogue(),
		Status:    "Loaded 4 fonts from Google metadata.",
	})
	return v, pairing, favourites
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, &fakePairing{}, &fakeFavourites{})

	require.NotNil(t, v)
	assert.False(t, v.Ready())
	assert.NotNil(t, v.styles)
	assert.NotNil(t, v.keymap)
}

func TestSetCatalogue_SyncsPickersAndStatus(t *testing.T) {
	v, _, _ := newTestView()

	assert.Equal(t, "Inter", v.Heading().SelectedFamily())
	assert.Equal(t, "Source Serif 4", v.Body().SelectedFamily())
	assert.Equal(t, "Loaded 4 fonts from Google metadata.", v.StatusBar().Message())
	assert.Equal(t, status.StateReady, v.StatusBar().State())
}

func TestBrowse_OpensHeadingPicker(t *testing.T) {
	v, _, _ := newTestView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})

	assert.NotNil(t, cmd)
	assert.True(t, v.Heading().IsOpen())
	assert.Equal(t, status.StatePicking, v.StatusBar().State())
}

func TestBrowse_OpensBodyPicker(t *testing.T) {
	v, _, _ := newTestView()

	_, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})

	assert.True(t, v.Body().IsOpen())
}

func TestPicker_EscCloses(t *testing.T) {
	v, _, _ := newTestView()
	_, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})

	_, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, v.Heading().IsOpen())
	assert.Equal(t, status.StateReady, v.StatusBar().State())
}

func TestPicker_TabSwitchesSlot(t *testing.T) {
	v, _, _ := newTestView()
	_, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyTab})

	assert.NotNil(t, cmd)
	assert.False(t, v.Heading().IsOpen())
	assert.True(t, v.Body().IsOpen())
}

func TestFontChosen_AppliesSelectionAndPersists(t *testing.T) {
	v, pairing, _ := newTestView()

	_, cmd := v.Update(messages.FontChosen{
		Slot:   messages.SlotHeading,
		Record: domain.FontRecord{Family: "Roboto"},
	})

	assert.Equal(t, "Roboto", pairing.state.Heading)
	assert.Equal(t, "Roboto", v.Heading().SelectedFamily())

	require.NotNil(t, cmd)
	saved, ok := cmd().(messages.StateSaved)
	require.True(t, ok)
	assert.NoError(t, saved.Err)
	assert.Equal(t, 1, pairing.persists)
}

func TestBrowse_RandomPair(t *testing.T) {
	v, pairing, _ := newTestView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	assert.Equal(t, "Roboto", pairing.state.Heading)
	assert.Equal(t, "Lora", pairing.state.Body)
	assert.Equal(t, "Roboto", v.Heading().SelectedFamily())
	require.NotNil(t, cmd)
	_ = cmd()
	assert.Equal(t, 1, pairing.persists)
}

func TestBrowse_WeightStepping(t *testing.T) {
	v, pairing, _ := newTestView()

	// Inter carries [400, 700]; the default heading weight is 700.
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}})
	assert.Equal(t, 400, pairing.state.HeadingWeight)
	_ = cmd()

	// Already at the lightest cut: clamped.
	_, cmd = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}})
	assert.Equal(t, 400, pairing.state.HeadingWeight)
	_ = cmd()

	_, cmd = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})
	assert.Equal(t, 700, pairing.state.HeadingWeight)
	_ = cmd()
}

func TestBrowse_BodyWeightStepping(t *testing.T) {
	v, pairing, _ := newTestView()

	// Source Serif 4 carries [400, 600, 700]; body default is 400.
	_, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'}'}})
	assert.Equal(t, 600, pairing.state.BodyWeight)

	_, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'{'}})
	assert.Equal(t, 400, pairing.state.BodyWeight)
}

func TestBrowse_TogglesAllowSameAndDark(t *testing.T) {
	v, pairing, _ := newTestView()

	_, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	assert.True(t, pairing.state.AllowSame)

	_, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	assert.True(t, pairing.state.Dark)
}

func TestBrowse_SaveFavourite(t *testing.T) {
	v, _, favourites := newTestView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.FavouriteSaved)
	require.True(t, ok)
	assert.NoError(t, msg.Err)
	assert.Equal(t, "fav-1", msg.Favourite.ID)
	assert.Len(t, favourites.saved, 1)
}

func TestFavouriteSaved_UpdatesStatus(t *testing.T) {
	v, _, _ := newTestView()

	_, _ = v.Update(messages.FavouriteSaved{
		Favourite: &domain.Favourite{State: domain.DefaultPairState()},
	})

	assert.Contains(t, v.StatusBar().Message(), "Saved favourite")
}

func TestBrowse_NavigatesToFavourites(t *testing.T) {
	v, _, _ := newTestView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewFavourites, msg.View)
}

func TestBrowse_Quit(t *testing.T) {
	v, _, _ := newTestView()

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	_, ok := cmd().(messages.Quit)
	assert.True(t, ok)
}

func TestStateSaved_ErrorSurfaces(t *testing.T) {
	v, _, _ := newTestView()

	_, _ = v.Update(messages.StateSaved{Err: errors.New("disk full")})

	assert.Equal(t, status.StateError, v.StatusBar().State())
	assert.Contains(t, v.StatusBar().Message(), "disk full")
}

func TestPickerTyping_DoesNotTriggerBrowseCommands(t *testing.T) {
	v, pairing, _ := newTestView()
	_, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})

	// 'r' must filter families, not re-roll the pairing.
	_, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	assert.Equal(t, "Inter", pairing.state.Heading)
	assert.Equal(t, "r", v.Heading().Query())
}

func TestView_RendersAfterSizing(t *testing.T) {
	v, _, _ := newTestView()

	view := v.View()
	assert.Contains(t, view, "typepair")
	assert.Contains(t, view, "Heading")
	assert.Contains(t, view, "Body")
}
