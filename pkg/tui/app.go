package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/gifblock/gifblock-cli/pkg/files"
	"github.com/gifblock/gifblock-cli/pkg/host"
	"github.com/gifblock/gifblock-cli/pkg/models"
)

// docEntry is one block of the demo document: either a plain text
// paragraph or an embedded gif block.
type docEntry struct {
	kind string
	text string
	gif  host.Block
}

// StatusMsg updates the host status line.
type StatusMsg string

// App is the demo editor host. It owns a document of text paragraphs
// and gif blocks and drives the host side of the block contract:
// construction with persisted data, save, read-only toggling, destroy.
type App struct {
	entries  []docEntry
	active   int
	readOnly bool

	settings *models.Settings
	opts     *models.Options
	ids      IDSource
	log      logrus.FieldLogger

	width     int
	height    int
	statusMsg string
}

// NewApp builds the editor from the saved document, reconstructing a
// gif block for every persisted gif record.
func NewApp(settings *models.Settings, logger logrus.FieldLogger) *App {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	app := &App{
		settings: settings,
		opts:     settings.BlockOptions(),
		ids:      NewCounterIDSource("doc"),
		log:      logger,
	}

	doc, err := files.ReadDocument()
	if err != nil {
		logger.WithError(err).Warn("could not load document, starting empty")
		doc = &files.Document{}
	}
	for _, block := range doc.Blocks {
		switch block.Kind {
		case files.BlockKindGIF:
			data := models.BlockData{}
			if block.GIF != nil {
				data = *block.GIF
			}
			app.entries = append(app.entries, docEntry{
				kind: files.BlockKindGIF,
				gif:  app.newGifBlock(data),
			})
		default:
			app.entries = append(app.entries, docEntry{
				kind: files.BlockKindText,
				text: block.Text,
			})
		}
	}
	if len(app.entries) == 0 {
		app.entries = []docEntry{{kind: files.BlockKindText}}
	}
	return app
}

func (a *App) newGifBlock(data models.BlockData) host.Block {
	return NewBlock(BlockParams{
		Data:     data,
		API:      &host.API{Notify: a.notify},
		Options:  a.opts,
		ReadOnly: a.readOnly,
		IDs:      a.ids,
		Logger:   a.log,
	})
}

func (a *App) notify(message string) {
	a.statusMsg = message
}

func (a *App) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, entry := range a.entries {
		if entry.gif != nil {
			cmds = append(cmds, entry.gif.Init())
		}
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, a.forwardToBlocks(msg)

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "ctrl+s":
			return a, a.saveDocument()
		case "ctrl+g":
			a.insertGifBlock()
			return a, a.entries[a.active].gif.Init()
		case "ctrl+n":
			a.insertTextBlock()
			return a, nil
		case "ctrl+d":
			a.deleteActiveBlock()
			return a, nil
		case "ctrl+r":
			a.toggleReadOnly()
			return a, nil
		case "ctrl+k":
			if a.active > 0 {
				a.active--
			}
			return a, nil
		case "ctrl+j":
			if a.active < len(a.entries)-1 {
				a.active++
			}
			return a, nil
		}
		return a, a.forwardKeyToActive(msg)
	}

	// Timer ticks and search results carry the owning block's id and
	// are dropped by every other instance, so fan-out is safe.
	return a, a.forwardToBlocks(msg)
}

func (a *App) forwardToBlocks(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i := range a.entries {
		if a.entries[i].gif == nil {
			continue
		}
		block, cmd := a.entries[i].gif.Update(msg)
		a.entries[i].gif = block
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// forwardKeyToActive routes keystrokes into the active block. A
// read-only host stops forwarding entirely; that is the host-side half
// of the read-only contract.
func (a *App) forwardKeyToActive(msg tea.KeyMsg) tea.Cmd {
	if a.readOnly {
		return nil
	}
	entry := &a.entries[a.active]

	if entry.gif != nil {
		block, cmd := entry.gif.Update(msg)
		entry.gif = block
		return cmd
	}

	switch msg.Type {
	case tea.KeyRunes:
		entry.text += string(msg.Runes)
	case tea.KeySpace:
		entry.text += " "
	case tea.KeyBackspace:
		if entry.text != "" {
			runes := []rune(entry.text)
			entry.text = string(runes[:len(runes)-1])
		}
	}
	return nil
}

func (a *App) insertGifBlock() {
	entry := docEntry{kind: files.BlockKindGIF, gif: a.newGifBlock(models.BlockData{})}
	a.insertAfterActive(entry)
}

func (a *App) insertTextBlock() {
	a.insertAfterActive(docEntry{kind: files.BlockKindText})
}

func (a *App) insertAfterActive(entry docEntry) {
	at := a.active + 1
	a.entries = append(a.entries, docEntry{})
	copy(a.entries[at+1:], a.entries[at:])
	a.entries[at] = entry
	a.active = at
}

// deleteActiveBlock removes the active block, destroying it first if
// it is a gif block. The last remaining block is kept so the document
// never becomes empty.
func (a *App) deleteActiveBlock() {
	if len(a.entries) <= 1 {
		return
	}
	entry := a.entries[a.active]
	if entry.gif != nil {
		entry.gif.Destroy()
	}
	a.entries = append(a.entries[:a.active], a.entries[a.active+1:]...)
	if a.active >= len(a.entries) {
		a.active = len(a.entries) - 1
	}
}

func (a *App) toggleReadOnly() {
	a.readOnly = !a.readOnly
	for _, entry := range a.entries {
		if entry.gif != nil {
			entry.gif.SetReadOnly(a.readOnly)
		}
	}
	if a.readOnly {
		a.statusMsg = "Read-only"
	} else {
		a.statusMsg = "Editing"
	}
}

func (a *App) saveDocument() tea.Cmd {
	doc := &files.Document{}
	for _, entry := range a.entries {
		if entry.gif != nil {
			data := entry.gif.Save()
			doc.Blocks = append(doc.Blocks, files.DocumentBlock{
				Kind: files.BlockKindGIF,
				GIF:  &data,
			})
			continue
		}
		doc.Blocks = append(doc.Blocks, files.DocumentBlock{
			Kind: files.BlockKindText,
			Text: entry.text,
		})
	}

	if err := files.WriteDocument(doc); err != nil {
		a.log.WithError(err).Error("document save failed")
		return func() tea.Msg { return StatusMsg("Save failed") }
	}
	return func() tea.Msg { return StatusMsg("Saved") }
}

func (a *App) View() string {
	styles := ensureStyleSheet()

	var sections []string
	title := styles.Title.Render("gifblock")
	if a.readOnly {
		title += styles.Dim.Render("  [read-only]")
	}
	sections = append(sections, " "+title)

	for i, entry := range a.entries {
		marker := "  "
		if i == a.active {
			marker = styles.Success.Render("▌ ")
		}
		var body string
		if entry.gif != nil {
			body = entry.gif.View()
		} else {
			body = a.textView(entry.text, i == a.active)
		}
		indented := marker + strings.ReplaceAll(body, "\n", "\n"+marker)
		sections = append(sections, indented)
	}

	help := styles.Dim.Render(" ctrl+g gif · ctrl+n text · ctrl+d delete · ctrl+j/k move · ctrl+s save · ctrl+r read-only · ctrl+c quit")
	sections = append(sections, help)
	if a.statusMsg != "" {
		sections = append(sections, " "+styles.Dim.Render(a.statusMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) textView(text string, active bool) string {
	styles := ensureStyleSheet()
	if text == "" {
		text = "(empty paragraph)"
		return styles.Dim.Render(text)
	}
	if active {
		return styles.Title.Render(text)
	}
	return text
}
