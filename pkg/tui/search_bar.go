package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gifblock/gifblock-cli/pkg/search"
)

// SearchBar is the gif block's query input with consistent styling.
type SearchBar struct {
	input    textinput.Model
	isActive bool
	width    int
}

// NewSearchBar creates a search bar with the given placeholder text.
func NewSearchBar(placeholder string) *SearchBar {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = search.MaxQueryLength
	ti.Width = 40 // Default width, will be adjusted

	return &SearchBar{
		input: ti,
	}
}

// SetActive sets whether the search bar has focus.
func (s *SearchBar) SetActive(active bool) {
	s.isActive = active
	if active {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}

// SetWidth sets the width for the search bar
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	// Width - 4 (borders) - 2 (outer padding) - 4 (icon with spaces)
	s.input.Width = width - 10
}

// Value returns the current query text
func (s *SearchBar) Value() string {
	return s.input.Value()
}

// SetValue sets the query text
func (s *SearchBar) SetValue(value string) {
	s.input.SetValue(value)
}

// Update handles tea messages for the search bar
func (s *SearchBar) Update(msg tea.Msg) (*SearchBar, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the search bar
func (s *SearchBar) View() string {
	styles := ensureStyleSheet()

	border := styles.InactiveBorder
	icon := styles.Dim.Render(" ⌕ ")
	if s.isActive {
		border = styles.ActiveBorder
		icon = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorActive)).
			Foreground(lipgloss.Color(ColorWhite)).
			Bold(true).
			Padding(0, 1).
			Render("⌕")
	}

	content := lipgloss.JoinHorizontal(lipgloss.Center, icon, " ", s.input.View())
	return border.Width(s.width - 2).Padding(0, 1).Render(content)
}

// Reset clears the search input
func (s *SearchBar) Reset() {
	s.input.SetValue("")
}
