package cli

import (
	"context"
	"time"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driving"
)

func testCatalogue() domain.Catalogue {
	return domain.Catalogue{
		{Family: "Inter", FamilyLower: "inter", Category: domain.CategorySans, Weights: []int{400, 700}},
		{Family: "Lora", FamilyLower: "lora", Category: domain.CategorySerif, Weights: []int{400, 500, 600, 700}},
		{Family: "Roboto", FamilyLower: "roboto", Category: domain.CategorySans, Weights: []int{100, 400, 700, 900}},
		{Family: "Source Serif 4", FamilyLower: "source serif 4", Category: domain.CategorySerif, Weights: []int{400, 600, 700}},
	}
}

// mockCatalogueService resolves to a fixed catalogue.
type mockCatalogueService struct {
	cached     *domain.CachedCatalogue
	cachedErr  error
	resolveErr error
	resolves   int
}

var _ driving.CatalogueService = (*mockCatalogueService)(nil)

func (m *mockCatalogueService) Resolve(
	_ context.Context,
	onProvisional func(*driving.Resolution),
) (*driving.Resolution, error) {
	m.resolves++
	if m.resolveErr != nil {
		return nil, m.resolveErr
	}
	if onProvisional != nil && m.cached != nil {
		onProvisional(&driving.Resolution{
			Catalogue:   m.cached.Fonts,
			SourceLabel: m.cached.SourceLabel,
			Quality:     m.cached.Quality,
			Status:      "Using cached catalogue.",
			FromCache:   true,
		})
	}
	return &driving.Resolution{
		Catalogue:   testCatalogue(),
		SourceLabel: "Google metadata",
		Quality:     domain.QualityPrimary,
		Signature:   "4-12345",
		Status:      "Loaded 4 fonts from Google metadata.",
	}, nil
}

func (m *mockCatalogueService) Cached(context.Context) (*domain.CachedCatalogue, error) {
	if m.cachedErr != nil {
		return nil, m.cachedErr
	}
	return m.cached, nil
}

// mockPairingService records mutations without reconciliation.
type mockPairingService struct {
	state      domain.PairState
	fonts      domain.Catalogue
	persists   int
	persistErr error
	loadErr    error
}

var _ driving.PairingService = (*mockPairingService)(nil)

func (m *mockPairingService) Current() domain.PairState       { return m.state }
func (m *mockPairingService) Fonts() domain.Catalogue         { return m.fonts }
func (m *mockPairingService) SetCatalogue(c domain.Catalogue) { m.fonts = c }
func (m *mockPairingService) WeightsFor(string) []int         { return domain.DefaultWeights() }
func (m *mockPairingService) SelectHeading(family string)     { m.state.Heading = family }
func (m *mockPairingService) SelectBody(family string)        { m.state.Body = family }
func (m *mockPairingService) SetHeadingWeight(w int)          { m.state.HeadingWeight = w }
func (m *mockPairingService) SetBodyWeight(w int)             { m.state.BodyWeight = w }
func (m *mockPairingService) Apply(s domain.PairState)        { m.state = s }

func (m *mockPairingService) RandomPair() {
	m.state.Heading = "Roboto"
	m.state.Body = "Lora"
}

func (m *mockPairingService) GoogleCSSHref() string {
	return "https://fonts.googleapis.com/css2?family=Inter:wght@400;700&display=swap"
}

func (m *mockPairingService) ExportCSS() string {
	return ":root {\n  --font-heading: \"Inter\", sans-serif;\n}"
}

func (m *mockPairingService) Load(context.Context) error { return m.loadErr }

func (m *mockPairingService) Persist(context.Context) error {
	m.persists++
	return m.persistErr
}

// mockFavouriteService keeps favourites in memory.
type mockFavouriteService struct {
	favourites []domain.Favourite
	listErr    error
	saveErr    error
	deleted    []string
}

var _ driving.FavouriteService = (*mockFavouriteService)(nil)

func (m *mockFavouriteService) Save(_ context.Context, state domain.PairState) (*domain.Favourite, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	fav := domain.Favourite{ID: "fav-1", State: state, CreatedAt: time.Now()}
	m.favourites = append([]domain.Favourite{fav}, m.favourites...)
	return &fav, nil
}

func (m *mockFavouriteService) List(context.Context) ([]domain.Favourite, error) {
	return m.favourites, m.listErr
}

func (m *mockFavouriteService) Get(_ context.Context, id string) (*domain.Favourite, error) {
	for i := range m.favourites {
		if m.favourites[i].ID == id {
			return &m.favourites[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockFavouriteService) Delete(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

// setupTestServices installs mock services and returns a cleanup that
// restores whatever was there before.
func setupTestServices() func() {
	oldCatalogue := catalogueService
	oldPairing := pairingService
	oldFavourite := favouriteService

	catalogueService = &mockCatalogueService{cachedErr: domain.ErrNotFound}
	pairingService = &mockPairingService{state: domain.DefaultPairState()}
	favouriteService = &mockFavouriteService{}

	return func() {
		catalogueService = oldCatalogue
		pairingService = oldPairing
		favouriteService = oldFavourite
	}
}
