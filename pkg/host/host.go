package host

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gifblock/gifblock-cli/pkg/models"
)

// Block is the contract a content block implements toward the editor
// host. The host drives the bubbletea lifecycle (Init/Update/View),
// calls Save when serializing the document, flips SetReadOnly when its
// own mode changes, and calls Destroy exactly once when the block is
// removed. Destroy is terminal: a destroyed block is never updated
// again, and a new instance must be constructed instead.
type Block interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Block, tea.Cmd)
	View() string
	Save() models.BlockData
	SetReadOnly(readOnly bool)
	Destroy()
}

// Toolbox is the static descriptor a block type exposes so the host
// can list it in an insert menu.
type Toolbox struct {
	Title string
	Icon  string
}

// API is the opaque handle the host passes to a block at construction.
// The block core stores it but never calls into it; it exists so a
// fuller host can offer callbacks without changing the construction
// signature.
type API struct {
	// Notify lets a block surface a status line in the host chrome.
	Notify func(message string)
}
