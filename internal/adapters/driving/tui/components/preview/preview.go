// Package preview renders the pairing specimen: a heading line and a
// body paragraph with the current typographic settings summarised. A
// terminal cannot render the actual typefaces, so the specimen shows
// the CSS stacks and tuning values the export would produce.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/typepair-labs/typepair-cli/internal/adapters/driving/tui/styles"
	"github.com/typepair-labs/typepair-cli/internal/core/domain"
)

const specimenParagraph = "Grumpy wizards make toxic brew for the evil queen and jack. " +
	"The five boxing wizards jump quickly, vexing daft zebras."

// Model holds the preview state.
type Model struct {
	styles *styles.Styles

	state    domain.PairState
	heading  domain.FontRecord
	body     domain.FontRecord
	haveRecs bool

	width int
}

// New creates a preview pane.
func New(s *styles.Styles) *Model {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Model{styles: s, width: 72}
}

// SetState updates the preview from the pairing state and the active
// catalogue, resolving the two FontRecords for category fallbacks.
func (m *Model) SetState(state domain.PairState, fonts domain.Catalogue) {
	m.state = state
	byFamily := fonts.ByFamily()
	m.heading, m.haveRecs = byFamily[state.Heading]
	if rec, ok := byFamily[state.Body]; ok {
		m.body = rec
	} else {
		m.haveRecs = false
	}
}

// State returns the previewed pairing state.
func (m *Model) State() domain.PairState {
	return m.state
}

// SetDimensions sets the preview width.
func (m *Model) SetDimensions(width int) {
	if width < 30 {
		width = 30
	}
	m.width = width
}

// View renders the specimen.
func (m *Model) View() string {
	heading := m.styles.PreviewHeading.Render(
		fmt.Sprintf("%s %d — Almost before we knew it", m.state.Heading, m.state.HeadingWeight))

	measure := m.state.ParagraphWidth
	if measure > m.width {
		measure = m.width
	}
	paragraph := m.styles.PreviewBody.Width(measure).Render(specimenParagraph)

	tuning := m.styles.Muted.Render(fmt.Sprintf(
		"%s %d · %dpx · lh %.2f · %dch",
		m.state.Body, m.state.BodyWeight,
		m.state.BaseSize, m.state.RenderableLineHeight(), m.state.ParagraphWidth))

	sections := []string{heading, "", paragraph, "", tuning}

	if m.haveRecs {
		stacks := m.styles.Muted.Render(
			"h: " + domain.CSSStack(m.heading.Family, m.heading.Category) +
				"  b: " + domain.CSSStack(m.body.Family, m.body.Category))
		sections = append(sections, stacks)
	}

	var flags []string
	if m.state.Dark {
		flags = append(flags, "dark")
	}
	if m.state.AllowSame {
		flags = append(flags, "allow-same")
	}
	if len(flags) > 0 {
		sections = append(sections, m.styles.Badge.Render(strings.Join(flags, " · ")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
