package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// View implements host.Block. A destroyed block renders nothing.
func (m *BlockModel) View() string {
	if m.destroyed {
		return ""
	}

	switch m.state {
	case stateNoEndpoint:
		return m.noEndpointView()
	case stateSelected:
		return m.selectedView()
	default:
		return m.searchView()
	}
}

func (m *BlockModel) noEndpointView() string {
	styles := ensureStyleSheet()
	message := wordwrap.String(
		"GIF search endpoint is not configured. Pass an endpoint option when inserting this block.",
		m.width-6,
	)
	return styles.InactiveBorder.
		Width(m.width - 2).
		Padding(0, 1).
		Render(styles.Error.Render(message))
}

func (m *BlockModel) searchView() string {
	styles := ensureStyleSheet()

	var sections []string
	sections = append(sections, m.searchBar.View())

	button := styles.Button
	if m.focus == focusButton {
		button = styles.FocusedButton
	}
	sections = append(sections, " "+button.Render(m.cfg.ButtonText))

	switch {
	case m.loading:
		sections = append(sections, " "+m.spin.View()+styles.Dim.Render(" Searching..."))
	case m.searchErr != "":
		sections = append(sections, " "+styles.Error.Render(wordwrap.String(m.searchErr, m.width-4)))
	case len(m.candidates) > 0:
		sections = append(sections, m.stripView())
	}

	if m.cfg.PoweredByText != "" {
		sections = append(sections, " "+styles.PoweredBy.Render(m.cfg.PoweredByText))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// stripView renders the candidate strip: one scrolling row when
// horizontal scroll is enabled, wrapped rows otherwise.
func (m *BlockModel) stripView() string {
	styles := ensureStyleSheet()

	cards := make([]string, 0, len(m.candidates))
	for i := range m.candidates {
		style := styles.CandidateCard
		if m.focus == focusStrip && i == m.stripIndex {
			style = styles.FocusedCard
		}
		cards = append(cards, style.Render(m.cardContent(i)))
	}

	if !m.cfg.EnableHorizontalScroll {
		return m.wrappedRows(cards)
	}

	visible := m.visibleCards()
	end := m.stripOffset + visible
	if end > len(cards) {
		end = len(cards)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards[m.stripOffset:end]...)

	var indicators []string
	if m.stripOffset > 0 {
		indicators = append(indicators, styles.Dim.Render("‹ more"))
	}
	if end < len(cards) {
		indicators = append(indicators, styles.Dim.Render("more ›"))
	}
	if len(indicators) == 0 {
		return row
	}
	return lipgloss.JoinVertical(lipgloss.Left, row, " "+strings.Join(indicators, "  "))
}

func (m *BlockModel) wrappedRows(cards []string) string {
	perRow := m.visibleCards()
	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// cardContent draws one candidate as a fixed-width card. Terminal
// cells are the closest thing to the configured preview height, so
// pixels are approximated at roughly fifty per text row.
func (m *BlockModel) cardContent(i int) string {
	styles := ensureStyleSheet()
	candidate := m.candidates[i]

	title := candidate.Title
	if title == "" {
		title = candidate.Alt
	}
	title = truncate(title, candidateCardWidth-4)

	dims := ""
	if candidate.Width > 0 && candidate.Height > 0 {
		dims = fmt.Sprintf("%d×%d", candidate.Width, candidate.Height)
	}

	rows := m.cfg.PreviewHeight / 50
	if rows < 3 {
		rows = 3
	}
	if rows > 8 {
		rows = 8
	}

	lines := []string{
		styles.Title.Render(title),
		styles.Dim.Render(truncate(candidate.PreviewURL, candidateCardWidth-4)),
	}
	if dims != "" {
		lines = append(lines, styles.Dim.Render(dims))
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *BlockModel) selectedView() string {
	styles := ensureStyleSheet()

	title := m.data.Title
	if title == "" {
		title = m.data.Alt
	}

	lines := []string{styles.Title.Render(truncate(title, m.width-8))}
	lines = append(lines, styles.Dim.Render(wordwrap.String(m.data.URL, m.width-8)))
	if m.data.Width > 0 && m.data.Height > 0 {
		lines = append(lines, styles.Dim.Render(fmt.Sprintf("%d×%d", m.data.Width, m.data.Height)))
	}

	card := styles.ActiveBorder.
		Width(m.width - 2).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	remove := styles.FocusedButton.Render(m.cfg.RemoveButtonText)
	footer := " " + remove + styles.Dim.Render("  enter/r remove · c copy url")

	sections := []string{card, footer}
	if m.statusLine != "" {
		sections = append(sections, " "+styles.Success.Render(m.statusLine))
	}
	if m.cfg.PoweredByText != "" {
		sections = append(sections, " "+styles.PoweredBy.Render(m.cfg.PoweredByText))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
