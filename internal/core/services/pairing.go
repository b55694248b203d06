package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driven"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driving"
	"github.com/typepair-labs/typepair-cli/internal/logger"
)

// Ensure PairingEngine implements the interface.
var _ driving.PairingService = (*PairingEngine)(nil)

// Candidate families tried, in order, when a persisted selection is
// absent from the active catalogue.
var (
	headingCandidates = []string{"Inter", "Roboto", "Open Sans"}
	bodyCandidates    = []string{"Source Serif 4", "Merriweather", "Lora"}
)

// randomPairGuard bounds the re-roll loop that avoids a same-family
// random pair when allow-same is off.
const randomPairGuard = 24

// PairingEngine owns the heading/body pairing state. Every mutation
// leaves the state consistent with the active catalogue: families the
// catalogue does not carry are reconciled away and weights snap to
// what the selected family offers.
type PairingEngine struct {
	store driven.StateStore

	mu       sync.RWMutex
	state    domain.PairState
	fonts    domain.Catalogue
	byFamily map[string]domain.FontRecord

	// randInt is swappable for tests.
	randInt func(n int) int
}

// NewPairingEngine creates a pairing engine starting from the default
// state. Call Load to restore a persisted state.
func NewPairingEngine(store driven.StateStore) *PairingEngine {
	return &PairingEngine{
		store:   store,
		state:   domain.DefaultPairState(),
		randInt: rand.Intn,
	}
}

// Current returns the active pairing state.
func (e *PairingEngine) Current() domain.PairState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Fonts returns the active catalogue.
func (e *PairingEngine) Fonts() domain.Catalogue {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.fonts
}

// SetCatalogue installs a new catalogue and reconciles the state
// against it.
func (e *PairingEngine) SetCatalogue(c domain.Catalogue) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.fonts = c
	e.byFamily = c.ByFamily()
	e.reconcileLocked()
}

// WeightsFor returns the weights available for a family. Families the
// catalogue does not carry get the default pair.
func (e *PairingEngine) WeightsFor(family string) []int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.weightsForLocked(family)
}

// SelectHeading sets the heading family. When allow-same is off and
// the body collides, the body moves to the first different family.
func (e *PairingEngine) SelectHeading(family string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Heading = family
	if !e.state.AllowSame && e.state.Heading == e.state.Body {
		e.state.Body = e.alternativeLocked(e.state.Heading)
	}
	e.snapWeightsLocked()
}

// SelectBody sets the body family. When allow-same is off and the
// heading collides, the heading moves to the first different family.
func (e *PairingEngine) SelectBody(family string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Body = family
	if !e.state.AllowSame && e.state.Heading == e.state.Body {
		e.state.Heading = e.alternativeLocked(e.state.Body)
	}
	e.snapWeightsLocked()
}

// SetHeadingWeight snaps and sets the heading weight.
func (e *PairingEngine) SetHeadingWeight(weight int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.HeadingWeight = domain.SnapWeight(weight, e.weightsForLocked(e.state.Heading))
}

// SetBodyWeight snaps and sets the body weight.
func (e *PairingEngine) SetBodyWeight(weight int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.BodyWeight = domain.SnapWeight(weight, e.weightsForLocked(e.state.Body))
}

// Apply replaces the whole state. The input is sanitised and then
// reconciled against the active catalogue, so arbitrary persisted or
// shared state always lands on something usable.
func (e *PairingEngine) Apply(state domain.PairState) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = state.Sanitize()
	e.reconcileLocked()
}

// RandomPair picks a uniformly random heading and body. When allow-same
// is off the body is re-rolled a bounded number of times to avoid a
// same-family pair.
func (e *PairingEngine) RandomPair() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.fonts) == 0 {
		return
	}

	heading := e.fonts[e.randInt(len(e.fonts))].Family
	body := e.fonts[e.randInt(len(e.fonts))].Family

	if !e.state.AllowSame && len(e.fonts) > 1 {
		for guard := 0; body == heading && guard < randomPairGuard; guard++ {
			body = e.fonts[e.randInt(len(e.fonts))].Family
		}
	}

	e.state.Heading = heading
	e.state.Body = body
	e.snapWeightsLocked()
}

// GoogleCSSHref builds a single CSS2 stylesheet URL covering both
// selected families. Each family requests its selected weight plus 400
// and 700 when available, so the regular and bold cuts are always
// loadable.
func (e *PairingEngine) GoogleCSSHref() string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	type familyEntry struct {
		family  string
		weights map[int]bool
	}

	var entries []*familyEntry
	index := make(map[string]*familyEntry, 2)

	add := func(family string, selected int) {
		available := e.weightsForLocked(family)
		entry, ok := index[family]
		if !ok {
			entry = &familyEntry{family: family, weights: make(map[int]bool)}
			index[family] = entry
			entries = append(entries, entry)
		}
		entry.weights[domain.SnapWeight(selected, available)] = true
		for _, w := range available {
			if w == 400 || w == 700 {
				entry.weights[w] = true
			}
		}
	}

	add(e.state.Heading, e.state.HeadingWeight)
	add(e.state.Body, e.state.BodyWeight)

	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		weights := make([]int, 0, len(entry.weights))
		for w := range entry.weights {
			weights = append(weights, w)
		}
		sort.Ints(weights)

		tokens := make([]string, len(weights))
		for i, w := range weights {
			tokens[i] = strconv.Itoa(w)
		}
		parts = append(parts, "family="+url.QueryEscape(entry.family)+":wght@"+strings.Join(tokens, ";"))
	}

	return "https://fonts.googleapis.com/css2?" + strings.Join(parts, "&") + "&display=swap"
}

// ExportCSS renders a ready-to-paste snippet: the stylesheet link tag,
// a :root variables block, and base rules wiring the variables up.
func (e *PairingEngine) ExportCSS() string {
	e.mu.RLock()
	state := e.state
	e.mu.RUnlock()

	lines := []string{
		`<link rel="stylesheet" href="` + e.GoogleCSSHref() + `">`,
		"",
		":root {",
		fmt.Sprintf("  --font-heading: %q;", state.Heading),
		fmt.Sprintf("  --font-body: %q;", state.Body),
		fmt.Sprintf("  --base-size: %dpx;", state.BaseSize),
		fmt.Sprintf("  --line-height: %s;", trimFixed(state.RenderableLineHeight(), 2)),
		fmt.Sprintf("  --paragraph-width: %dch;", state.ParagraphWidth),
		fmt.Sprintf("  --heading-weight: %d;", state.HeadingWeight),
		fmt.Sprintf("  --body-weight: %d;", state.BodyWeight),
		fmt.Sprintf("  --heading-spacing: %sem;", trimFixed(state.HeadingSpacing, 3)),
		fmt.Sprintf("  --paragraph-spacing: %sem;", trimFixed(state.ParagraphSpacing, 3)),
		"}",
		"",
		"body {",
		"  font-family: var(--font-body), serif;",
		"  font-size: var(--base-size);",
		"  line-height: var(--line-height);",
		"  letter-spacing: var(--paragraph-spacing);",
		"  max-width: var(--paragraph-width);",
		"  font-weight: var(--body-weight);",
		"}",
		"",
		"h1, h2, h3 {",
		"  font-family: var(--font-heading), sans-serif;",
		"  font-weight: var(--heading-weight);",
		"  letter-spacing: var(--heading-spacing);",
		"}",
	}

	return strings.Join(lines, "\n")
}

// Load restores the persisted state. A missing state is not an error;
// the defaults stay in place.
func (e *PairingEngine) Load(ctx context.Context) error {
	state, err := e.store.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug("No persisted pairing state; using defaults")
			return nil
		}
		return fmt.Errorf("load pairing state: %w", err)
	}

	e.Apply(*state)
	return nil
}

// Persist saves the current state.
func (e *PairingEngine) Persist(ctx context.Context) error {
	if err := e.store.Save(ctx, e.Current()); err != nil {
		return fmt.Errorf("save pairing state: %w", err)
	}
	return nil
}

// reconcileLocked makes the state consistent with the catalogue:
// missing families fall back through the candidate lists, a same-family
// collision is broken when allow-same is off, and both weights snap.
// A nil catalogue leaves the state untouched.
func (e *PairingEngine) reconcileLocked() {
	if len(e.fonts) == 0 {
		return
	}

	if _, ok := e.byFamily[e.state.Heading]; !ok {
		e.state.Heading = e.pickInitialLocked(headingCandidates, 0)
	}
	if _, ok := e.byFamily[e.state.Body]; !ok {
		e.state.Body = e.pickInitialLocked(bodyCandidates, 1)
	}

	if !e.state.AllowSame && e.state.Heading == e.state.Body {
		e.state.Body = e.alternativeLocked(e.state.Heading)
	}

	e.snapWeightsLocked()
}

// pickInitialLocked returns the first candidate the catalogue carries,
// falling back to a positional default.
func (e *PairingEngine) pickInitialLocked(candidates []string, fallbackIndex int) string {
	for _, family := range candidates {
		if _, ok := e.byFamily[family]; ok {
			return family
		}
	}
	if fallbackIndex >= len(e.fonts) {
		fallbackIndex = len(e.fonts) - 1
	}
	return e.fonts[fallbackIndex].Family
}

// alternativeLocked returns the first catalogue family that differs
// from excluded, or excluded itself for a single-family catalogue.
func (e *PairingEngine) alternativeLocked(excluded string) string {
	for _, f := range e.fonts {
		if f.Family != excluded {
			return f.Family
		}
	}
	return excluded
}

func (e *PairingEngine) snapWeightsLocked() {
	e.state.HeadingWeight = domain.SnapWeight(e.state.HeadingWeight, e.weightsForLocked(e.state.Heading))
	e.state.BodyWeight = domain.SnapWeight(e.state.BodyWeight, e.weightsForLocked(e.state.Body))
}

func (e *PairingEngine) weightsForLocked(family string) []int {
	if f, ok := e.byFamily[family]; ok && len(f.Weights) > 0 {
		out := make([]int, len(f.Weights))
		copy(out, f.Weights)
		return out
	}
	return domain.DefaultWeights()
}

// trimFixed formats a float to the given precision and strips the
// trailing zeros, so 1.50 renders as "1.5" and 0.000 as "0".
func trimFixed(value float64, digits int) string {
	s := strconv.FormatFloat(value, 'f', digits, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
