package tui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorError    = "196" // Red for errors
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
)

// StyleSheetID identifies the shared gif block style sheet. All block
// instances render through the same sheet; it is installed once per
// process and never torn down.
const StyleSheetID = "gifblock-styles"

// StyleSheet is the shared set of styles every gif block renders with.
type StyleSheet struct {
	ID string

	ActiveBorder   lipgloss.Style
	InactiveBorder lipgloss.Style
	CandidateCard  lipgloss.Style
	FocusedCard    lipgloss.Style
	Title          lipgloss.Style
	Dim            lipgloss.Style
	Error          lipgloss.Style
	Success        lipgloss.Style
	Button         lipgloss.Style
	FocusedButton  lipgloss.Style
	PoweredBy      lipgloss.Style
}

var (
	sheetOnce sync.Once
	sheet     *StyleSheet
)

// ensureStyleSheet installs the shared style sheet if no sheet with
// StyleSheetID exists yet. Safe to call from every block constructor;
// only the first call builds anything.
func ensureStyleSheet() *StyleSheet {
	sheetOnce.Do(func() {
		sheet = &StyleSheet{
			ID: StyleSheetID,

			ActiveBorder: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive)),

			InactiveBorder: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive)),

			CandidateCard: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color(ColorInactive)).
				Padding(0, 1),

			FocusedCard: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color(ColorActive)).
				Padding(0, 1).
				Bold(true),

			Title: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorWhite)),

			Dim: lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim)),

			Error: lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorError)),

			Success: lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSuccess)),

			Button: lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorNormal)).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive)),

			FocusedButton: lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorWhite)).
				Background(lipgloss.Color(ColorActive)).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive)),

			PoweredBy: lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim)).
				Italic(true),
		}
	})
	return sheet
}

// StyleSheetInstalled reports whether the shared sheet exists.
func StyleSheetInstalled() bool {
	return sheet != nil
}
