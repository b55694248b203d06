package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/keymap"
	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/messages"
	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/styles"
	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/views/favourites"
	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/views/pair"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driving"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// pairView is the main pairing view.
	pairView *pair.View

	// favouritesView lists saved pairings.
	favouritesView *favourites.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// resolved is true once the final catalogue resolution has landed;
	// a provisional cache result arriving afterwards is ignored.
	resolved bool

	// loaded is true once persisted pairing state has been restored.
	loaded bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	ctx := context.Background()

	return &App{
		ports:          ports,
		ctx:            ctx,
		styles:         s,
		keymap:         km,
		pairView:       pair.NewView(s, km, ports.Pairing, ports.Favourites),
		favouritesView: favourites.NewView(s, km, ports.Favourites, ports.Pairing),
		currentView:    messages.ViewPair,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.pairView.WithContext(ctx)
	a.favouritesView.WithContext(ctx)
	return a
}

// Init implements tea.Model. The cached catalogue is surfaced
// immediately while the source tiers run; both results arrive as
// messages on the single update loop, the later one overwriting the
// earlier.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("typepair"),
		a.provisionalCmd(),
		a.resolveCmd(),
	)
}

// provisionalCmd reads the persisted cache without fetching.
func (a *App) provisionalCmd() tea.Cmd {
	catalogue := a.ports.Catalogue
	ctx := a.ctx
	return func() tea.Msg {
		cached, err := catalogue.Cached(ctx)
		if err != nil {
			// No usable cache. The resolve cycle will provide.
			return nil
		}
		return messages.CatalogueProvisional{Resolution: &driving.Resolution{
			Catalogue:   cached.Fonts,
			SourceLabel: cached.SourceLabel,
			Quality:     cached.Quality,
			Signature:   cached.Signature,
			Status:      fmt.Sprintf("Using %d cached fonts from %s.", len(cached.Fonts), cached.SourceLabel),
			FromCache:   true,
		}}
	}
}

// resolveCmd runs the full source chain.
func (a *App) resolveCmd() tea.Cmd {
	catalogue := a.ports.Catalogue
	ctx := a.ctx
	return func() tea.Msg {
		res, err := catalogue.Resolve(ctx, nil)
		return messages.CatalogueResolved{Resolution: res, Err: err}
	}
}

// Update implements tea.Model.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.pairView, _ = a.pairView.Update(msg)
		a.favouritesView, _ = a.favouritesView.Update(msg)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewPair:
			a.pairView, cmd = a.pairView.Update(msg)
			return a, cmd

		case messages.ViewFavourites:
			a.favouritesView, cmd = a.favouritesView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Any key leaves help.
			a.currentView = messages.ViewPair
			return a, nil
		}
		return a, nil

	case messages.CatalogueProvisional:
		if a.resolved {
			// The final result already landed; the cache read lost the
			// race and is stale by definition.
			return a, nil
		}
		a.installCatalogue(msg.Resolution)
		return a, nil

	case messages.CatalogueResolved:
		if msg.Err != nil {
			a.err = msg.Err
			a.pairView, cmd = a.pairView.Update(messages.ErrorOccurred{Err: msg.Err})
			return a, cmd
		}
		a.resolved = true
		a.installCatalogue(msg.Resolution)
		return a, nil

	case messages.LocalFallbackChanged:
		return a, a.resolveCmd()

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewFavourites {
			return a, a.favouritesView.Init()
		}
		return a, nil

	case messages.FavouriteApplied:
		a.currentView = messages.ViewPair
		a.pairView.SetCatalogue(&driving.Resolution{
			Catalogue: a.ports.Pairing.Fonts(),
			Status:    "Applied " + msg.Favourite.Label(),
		})
		return a, nil

	case messages.FavouritesLoaded, messages.FavouriteDeleted:
		a.favouritesView, cmd = a.favouritesView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.pairView, cmd = a.pairView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Everything else (picker debounce ticks, persistence results,
	// cursor blinks) belongs to the pairing view.
	a.pairView, cmd = a.pairView.Update(msg)
	return a, cmd
}

// installCatalogue applies a resolution to the pairing state and view.
// Persisted pairing state is restored on the first catalogue, so
// reconciliation sees real families.
func (a *App) installCatalogue(res *driving.Resolution) {
	a.pairView.SetCatalogue(res)

	if !a.loaded {
		if err := a.ports.Pairing.Load(a.ctx); err != nil {
			a.err = err
		}
		a.loaded = true
		// Re-sync the view with the restored state.
		a.pairView.SetCatalogue(res)
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewPair:
		return a.pairView.View()
	case messages.ViewFavourites:
		return a.favouritesView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.pairView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Pairing:
  h           Pick heading font
  b           Pick body font
  tab         Switch picker
  [ / ]       Heading weight lighter/bolder
  { / }       Body weight lighter/bolder
  r           Random pair
  a           Toggle allow-same-family
  d           Toggle dark preview
  s           Save favourite
  f           Favourites

Picker:
  (type)      Filter families
  ↑/↓         Move active row
  enter       Select
  esc         Close

Favourites:
  ↑/↓, j/k    Navigate
  enter       Apply
  x           Delete
  esc         Back

  q, ctrl+c   Quit

[any key] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// PairView returns the pairing view (for testing).
func (a *App) PairView() *pair.View {
	return a.pairView
}

// FavouritesView returns the favourites view (for testing).
func (a *App) FavouritesView() *favourites.View {
	return a.favouritesView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.pairView.SetDimensions(width, height)
	a.favouritesView.SetDimensions(width, height)
}
