// Package picker provides the virtualized font selector for the TUI.
// It presents a searchable single-select control over an arbitrarily
// large catalogue without materialising one row per family: a bounded
// pool of recycled row slots is mapped over the filtered results.
package picker

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/messages"
	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/styles"
	"github.com/typepair-labs/typepair-cli/internal/core/domain"
)

const (
	// filterDebounce bounds filter recomputation while typing. Opening
	// the picker always runs an immediate pass so the first view is
	// never stale.
	filterDebounce = 100 * time.Millisecond

	// defaultOverscan is how many rows beyond each viewport edge the
	// pool keeps assigned.
	defaultOverscan = 2

	// defaultViewport is the list height in rows before the first
	// WindowSizeMsg arrives.
	defaultViewport = 10
)

// Model is the Elm-architecture model for one picker instance.
// Heading and body each own one.
type Model struct {
	slot   messages.Slot
	styles *styles.Styles
	input  textinput.Model

	fonts    domain.Catalogue
	filtered []int // indices into fonts

	selectedFamily string
	active         int // index within filtered, -1 when no results
	open           bool

	win  window
	pool []rowSlot

	// seq numbers debounce ticks; a tick only recomputes the filter
	// when it is still the latest one scheduled.
	seq int

	width int
}

// New creates a picker for the given slot.
func New(slot messages.Slot, s *styles.Styles) *Model {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Type to filter families"
	ti.CharLimit = 64
	ti.Width = 32

	return &Model{
		slot:   slot,
		styles: s,
		input:  ti,
		active: -1,
		win: window{
			rowHeight: 1,
			overscan:  defaultOverscan,
			viewport:  defaultViewport,
		},
		width: 40,
	}
}

// Slot returns which side of the pairing this picker controls.
func (m *Model) Slot() messages.Slot {
	return m.slot
}

// SetFonts replaces the working collection and re-applies the current
// filter. Open/closed state and the canonical selection are untouched.
func (m *Model) SetFonts(c domain.Catalogue) {
	m.fonts = c
	m.applyFilter()
}

// SetSelectedFamily sets the canonical selection and mirrors it into
// the visible query text. The filter is re-applied with the family
// pre-highlighted as active if present.
func (m *Model) SetSelectedFamily(family string) {
	m.selectedFamily = family
	if !m.open {
		m.input.SetValue(family)
	}
	m.applyFilter()
}

// SelectedFamily returns the canonical selection.
func (m *Model) SelectedFamily() string {
	return m.selectedFamily
}

// Open focuses the picker with an empty query, so the full collection
// is in view with the current selection highlighted. The filter pass
// runs immediately, not debounced.
func (m *Model) Open() tea.Cmd {
	m.open = true
	m.input.SetValue("")
	cmd := m.input.Focus()
	m.applyFilter()
	return tea.Batch(cmd, textinput.Blink)
}

// Close blurs the picker and restores the selection mirror in the
// query text. No selection callback fires.
func (m *Model) Close() {
	m.open = false
	m.input.Blur()
	m.input.SetValue(m.selectedFamily)
}

// IsOpen reports whether the picker is accepting input.
func (m *Model) IsOpen() bool {
	return m.open
}

// Update handles messages for the picker.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.open {
			return m, nil
		}
		return m.handleKey(msg)

	case messages.FilterDebounced:
		if msg.Slot == m.slot && msg.Seq == m.seq {
			m.applyFilter()
		}
		return m, nil
	}

	if m.open {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input while open. Escape and Tab are
// owned by the containing view; everything else lands here.
func (m *Model) handleKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEnter:
		return m, m.commit()

	case tea.KeyUp:
		m.moveActive(-1)
		return m, nil

	case tea.KeyDown:
		m.moveActive(1)
		return m, nil

	case tea.KeyPgUp:
		m.moveActive(-m.win.viewport)
		return m, nil

	case tea.KeyPgDown:
		m.moveActive(m.win.viewport)
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.scheduleFilter())
	}
	return m, cmd
}

// commit fires the selection callback for the active row, exactly
// once, and closes the picker. With no active row it only closes.
func (m *Model) commit() tea.Cmd {
	if m.active < 0 || m.active >= len(m.filtered) {
		m.Close()
		return nil
	}

	record := m.fonts[m.filtered[m.active]]
	m.selectedFamily = record.Family
	m.Close()

	slot := m.slot
	return func() tea.Msg {
		return messages.FontChosen{Slot: slot, Record: record}
	}
}

// moveActive clamps the active index to the filtered results and
// scrolls minimally to keep the active row fully visible.
func (m *Model) moveActive(delta int) {
	if len(m.filtered) == 0 {
		return
	}

	m.active += delta
	if m.active < 0 {
		m.active = 0
	}
	if m.active > len(m.filtered)-1 {
		m.active = len(m.filtered) - 1
	}

	m.win.reveal(m.active)
	m.win.assign(m.pool)
}

// scheduleFilter arms the debounce window. Only the latest scheduled
// tick recomputes; earlier ones are recognised as stale by sequence
// number.
func (m *Model) scheduleFilter() tea.Cmd {
	m.seq++
	seq := m.seq
	slot := m.slot
	return tea.Tick(filterDebounce, func(time.Time) tea.Msg {
		return messages.FilterDebounced{Slot: slot, Seq: seq}
	})
}

// applyFilter recomputes the filtered result set from the current
// query: case-insensitive substring match on the family name, empty
// query matching everything, collection order preserved. The active
// index lands on the selected family when present, else on the first
// result.
func (m *Model) applyFilter() {
	needle := strings.ToLower(strings.TrimSpace(m.input.Value()))

	m.filtered = m.filtered[:0]
	for i := range m.fonts {
		if needle == "" || strings.Contains(m.fonts[i].FamilyLower, needle) {
			m.filtered = append(m.filtered, i)
		}
	}

	m.active = -1
	if m.selectedFamily != "" {
		for pos, idx := range m.filtered {
			if m.fonts[idx].Family == m.selectedFamily {
				m.active = pos
				break
			}
		}
	}
	if m.active < 0 && len(m.filtered) > 0 {
		m.active = 0
	}

	m.win.total = len(m.filtered)
	m.win.clampScroll()
	if m.active >= 0 {
		m.win.reveal(m.active)
	}
	m.syncPool()
}

// syncPool resizes the recycled slot pool to the window's fixed size
// and reassigns every slot for the current scroll position.
func (m *Model) syncPool() {
	size := m.win.poolSize()
	if cap(m.pool) < size {
		m.pool = make([]rowSlot, size)
	}
	m.pool = m.pool[:size]
	m.win.assign(m.pool)
}

// View renders the query input and, when open, the windowed list.
func (m *Model) View() string {
	label := m.labelStyle().Render(m.labelText())
	input := m.styles.InputField.Render(m.input.View())
	head := lipgloss.JoinVertical(lipgloss.Left, label, input)

	if !m.open {
		return head
	}

	return lipgloss.JoinVertical(lipgloss.Left, head, m.viewList())
}

// viewList renders the rows covered by the pool that intersect the
// viewport, plus a position line so the user can tell how much of the
// collection is in view.
func (m *Model) viewList() string {
	if len(m.filtered) == 0 {
		return m.styles.Muted.Render("No matching families")
	}

	first := m.win.scroll / m.win.rowHeight
	last := first + m.win.viewport // exclusive

	lines := make([]string, 0, m.win.viewport+1)
	for _, slot := range m.pool {
		if slot.hidden || slot.index < first || slot.index >= last {
			continue
		}
		lines = append(lines, m.renderRow(slot.index))
	}

	position := m.styles.Muted.Render(
		fmt.Sprintf("%d of %d families", m.active+1, len(m.filtered)))
	lines = append(lines, position)

	return strings.Join(lines, "\n")
}

// renderRow formats one visible row.
func (m *Model) renderRow(index int) string {
	record := m.fonts[m.filtered[index]]

	indicator := "  "
	if record.Family == m.selectedFamily {
		indicator = "* "
	}

	name := record.Family
	maxName := m.width - 16
	if maxName < 10 {
		maxName = 10
	}
	if len(name) > maxName {
		name = name[:maxName-1] + "…"
	}

	badge := m.styles.Badge.Render(string(record.Category))

	if index == m.active {
		return m.styles.Selected.Render("> "+name) + " " + badge
	}
	return m.styles.Normal.Render(indicator+name) + " " + badge
}

func (m *Model) labelText() string {
	if m.slot == messages.SlotHeading {
		return "Heading"
	}
	return "Body"
}

func (m *Model) labelStyle() lipgloss.Style {
	if m.slot == messages.SlotHeading {
		return m.styles.Title
	}
	return m.styles.Subtitle
}

// SetDimensions sets the picker width and list viewport height (rows).
func (m *Model) SetDimensions(width, height int) {
	m.width = width
	if height < 3 {
		height = 3
	}
	m.win.viewport = height
	m.win.clampScroll()
	m.syncPool()

	inputWidth := width - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	m.input.Width = inputWidth
}

// Query returns the current filter text.
func (m *Model) Query() string {
	return m.input.Value()
}

// Filtered returns the records currently matching the filter, in
// collection order.
func (m *Model) Filtered() []domain.FontRecord {
	out := make([]domain.FontRecord, 0, len(m.filtered))
	for _, idx := range m.filtered {
		out = append(out, m.fonts[idx])
	}
	return out
}

// ActiveIndex returns the active row's position within the filtered
// results, or -1 when there are no results.
func (m *Model) ActiveIndex() int {
	return m.active
}

// PoolSize returns the number of recycled row slots.
func (m *Model) PoolSize() int {
	return len(m.pool)
}

// ScrollOffset returns the current scroll position.
func (m *Model) ScrollOffset() int {
	return m.win.scroll
}

// Extent returns the virtual height of the full result set.
func (m *Model) Extent() int {
	return m.win.extent()
}
