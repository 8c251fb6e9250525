package tui

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/gifblock/gifblock-cli/pkg/host"
	"github.com/gifblock/gifblock-cli/pkg/models"
	"github.com/gifblock/gifblock-cli/pkg/search"
)

// blockState is the gif block's interaction state.
type blockState int

const (
	stateNoEndpoint blockState = iota // terminal: configuration lacks an endpoint
	stateSearch                       // query box + candidate strip
	stateSelected                     // one chosen GIF + remove affordance
)

// Element names the block registers listeners on. Each is namespaced
// with the instance id before it reaches the registry.
const (
	elemSearchInput  = "search-input"
	elemSearchButton = "search-button"
	elemRemoveButton = "remove-button"
	elemSelectedURL  = "selected-url"
)

// Events dispatched through the listener registry.
const (
	eventInput    = "input"
	eventActivate = "activate"
	eventCopy     = "copy"
)

// Focus slots within the search view.
const (
	focusInput = iota
	focusButton
	focusStrip
)

type debounceMsg struct {
	blockID string
	gen     uint64
}

type searchResultMsg struct {
	blockID    string
	seq        uint64
	candidates []search.Candidate
	err        error
}

type clearStatusMsg struct {
	blockID string
}

// BlockParams carries everything a host supplies when constructing a
// gif block. Only Options matters for behavior; the rest have working
// defaults.
type BlockParams struct {
	Data       models.BlockData
	API        *host.API
	Options    *models.Options
	ReadOnly   bool
	IDs        IDSource
	Logger     logrus.FieldLogger
	HTTPClient *http.Client
}

// BlockModel is the gif search-and-insert block. It owns its state
// exclusively; all mutation happens on the bubbletea update loop, so
// no locking is needed.
type BlockModel struct {
	id       string
	cfg      models.Config
	data     models.BlockData
	api      *host.API
	readOnly bool

	state     blockState
	destroyed bool

	searchBar  *SearchBar
	spin       spinner.Model
	loading    bool
	searchErr  string
	statusLine string
	candidates []search.Candidate

	focus       int // focusInput, focusButton, or focusStrip
	stripIndex  int // focused candidate within the strip
	stripOffset int // first visible candidate when scrolling

	registry *ListenerRegistry
	client   *search.Client
	log      logrus.FieldLogger

	// debounceGen cancels pending debounce ticks: a tick whose
	// generation no longer matches is ignored. searchSeq does the same
	// for in-flight responses, so a slow early request can never
	// overwrite fresher results.
	debounceGen uint64
	searchSeq   uint64

	width int
}

// NewBlock constructs a gif block from persisted data and host-supplied
// options. A missing endpoint yields the terminal error view with zero
// listeners registered. Persisted data with a url starts in the
// selected view; anything else starts in the empty search view.
func NewBlock(p BlockParams) *BlockModel {
	cfg := models.ResolveConfig(p.Options)
	ensureStyleSheet()

	ids := p.IDs
	if ids == nil {
		ids = defaultIDs
	}
	log := p.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	m := &BlockModel{
		id:       ids.NextID(),
		cfg:      cfg,
		data:     p.Data,
		api:      p.API,
		readOnly: p.ReadOnly,
		registry: NewListenerRegistry(),
		log:      log,
		width:    defaultBlockWidth,
	}
	m.spin = spinner.New(spinner.WithSpinner(spinner.Dot))

	if cfg.Endpoint == "" {
		m.state = stateNoEndpoint
		return m
	}

	m.client = search.NewClient(search.ClientOptions{
		Endpoint:   cfg.Endpoint,
		Limit:      cfg.Limit,
		Headers:    cfg.Headers,
		Parser:     cfg.Parser,
		HTTPClient: p.HTTPClient,
		Logger:     log,
	})
	m.searchBar = NewSearchBar(cfg.Placeholder)
	m.searchBar.SetWidth(m.width)

	if p.Data.HasGIF() {
		m.state = stateSelected
		m.wireSelectedView()
	} else {
		m.state = stateSearch
		m.wireSearchView()
		m.searchBar.SetActive(true)
	}
	return m
}

// ID returns the instance id issued by the IDSource.
func (m *BlockModel) ID() string {
	return m.id
}

// Config returns the resolved instance configuration.
func (m *BlockModel) Config() models.Config {
	return m.cfg
}

// Save implements host.Block.
func (m *BlockModel) Save() models.BlockData {
	return m.data
}

// SetReadOnly implements host.Block. The baseline contract only
// records the flag; gating interaction on it is the host's call.
func (m *BlockModel) SetReadOnly(readOnly bool) {
	m.readOnly = readOnly
}

// ReadOnly reports the recorded read-only flag.
func (m *BlockModel) ReadOnly() bool {
	return m.readOnly
}

// Destroyed reports whether Destroy has been called.
func (m *BlockModel) Destroyed() bool {
	return m.destroyed
}

// Destroy implements host.Block. It cancels any pending debounce
// tick, removes every registered listener, and clears the rendered
// content. Calling it again is a no-op. An in-flight search is not
// aborted; its late response is discarded by the liveness check in
// Update.
func (m *BlockModel) Destroy() {
	if m.destroyed {
		return
	}
	m.destroyed = true
	m.debounceGen++
	m.registry.ReleaseAll()
	m.candidates = nil
	m.loading = false
	m.searchErr = ""
	m.statusLine = ""
}

// SetSize adjusts the block's rendered width.
func (m *BlockModel) SetSize(width int) {
	if width < minBlockWidth {
		width = minBlockWidth
	}
	m.width = width
	if m.searchBar != nil {
		m.searchBar.SetWidth(width)
	}
}

// Init implements host.Block.
func (m *BlockModel) Init() tea.Cmd {
	if m.state == stateSearch {
		return textinput.Blink
	}
	return nil
}

// Update implements host.Block. Every message for a destroyed
// instance, and every search result that is not the newest, is a safe
// no-op.
func (m *BlockModel) Update(msg tea.Msg) (host.Block, tea.Cmd) {
	if m.destroyed {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case debounceMsg:
		if msg.blockID != m.id || msg.gen != m.debounceGen {
			return m, nil
		}
		return m, m.runSearch()

	case searchResultMsg:
		if msg.blockID != m.id || msg.seq != m.searchSeq || m.state != stateSearch {
			return m, nil
		}
		return m, m.applySearchResult(msg)

	case clearStatusMsg:
		if msg.blockID == m.id {
			m.statusLine = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *BlockModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.state {
	case stateNoEndpoint:
		return nil
	case stateSelected:
		return m.handleSelectedKey(msg)
	default:
		return m.handleSearchKey(msg)
	}
}

func (m *BlockModel) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		m.cycleFocus(1)
		return nil
	case "shift+tab":
		m.cycleFocus(-1)
		return nil
	}

	switch m.focus {
	case focusInput:
		if msg.Type == tea.KeyEnter {
			return m.dispatch(elemSearchInput, eventActivate, msg)
		}
		return m.dispatch(elemSearchInput, eventInput, msg)

	case focusButton:
		switch msg.String() {
		case "enter", " ", "space":
			return m.dispatch(elemSearchButton, eventActivate, msg)
		}
		return nil

	default: // focusStrip
		switch msg.String() {
		case "left", "h":
			m.moveStrip(-1)
			return nil
		case "right", "l":
			m.moveStrip(1)
			return nil
		case "enter":
			return m.dispatch(m.candidateElem(m.stripIndex), eventActivate, msg)
		}
		return nil
	}
}

func (m *BlockModel) handleSelectedKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "r", "backspace", "delete":
		return m.dispatch(elemRemoveButton, eventActivate, msg)
	case "c", "y":
		return m.dispatch(elemSelectedURL, eventCopy, msg)
	}
	return nil
}

func (m *BlockModel) cycleFocus(dir int) {
	slots := 2
	if len(m.candidates) > 0 {
		slots = 3
	}
	m.focus = (m.focus + dir + slots) % slots
	m.searchBar.SetActive(m.focus == focusInput)
}

func (m *BlockModel) moveStrip(dir int) {
	if len(m.candidates) == 0 {
		return
	}
	m.stripIndex += dir
	if m.stripIndex < 0 {
		m.stripIndex = 0
	}
	if m.stripIndex > len(m.candidates)-1 {
		m.stripIndex = len(m.candidates) - 1
	}
	if !m.cfg.EnableHorizontalScroll {
		return
	}
	visible := m.visibleCards()
	if m.stripIndex < m.stripOffset {
		m.stripOffset = m.stripIndex
	}
	if m.stripIndex >= m.stripOffset+visible {
		m.stripOffset = m.stripIndex - visible + 1
	}
}

// dispatch resolves a listener through the registry and invokes it.
// Elements without a registered listener swallow the event.
func (m *BlockModel) dispatch(element, event string, msg tea.Msg) tea.Cmd {
	return m.registry.Dispatch(m.elementID(element), event, msg)
}

func (m *BlockModel) elementID(element string) string {
	return m.id + "/" + element
}

func (m *BlockModel) candidateElem(i int) string {
	return fmt.Sprintf("candidate-%d", i)
}

// wireSearchView registers the search view's listeners. The candidate
// strip is wired separately as results come and go.
func (m *BlockModel) wireSearchView() {
	m.registry.Register(m.elementID(elemSearchInput), eventInput, m.handleQueryInput)
	m.registry.Register(m.elementID(elemSearchInput), eventActivate, m.handleSubmit)
	m.registry.Register(m.elementID(elemSearchButton), eventActivate, m.handleSubmit)
}

func (m *BlockModel) wireSelectedView() {
	m.registry.Register(m.elementID(elemRemoveButton), eventActivate, m.handleRemove)
	m.registry.Register(m.elementID(elemSelectedURL), eventCopy, m.handleCopyURL)
}

// wireCandidates replaces the candidate strip listeners without
// touching the rest of the search view.
func (m *BlockModel) wireCandidates(count int) {
	for i := 0; i < count; i++ {
		idx := i
		m.registry.Register(m.elementID(m.candidateElem(i)), eventActivate, func(tea.Msg) tea.Cmd {
			return m.selectCandidate(idx)
		})
	}
}

func (m *BlockModel) releaseCandidates() {
	for i := 0; i < len(m.candidates); i++ {
		m.registry.ReleaseFor(m.elementID(m.candidateElem(i)))
	}
}

// handleQueryInput feeds a keystroke to the input and restarts the
// debounce window. Every keystroke bumps the generation, so at most
// one tick per instance is ever live.
func (m *BlockModel) handleQueryInput(msg tea.Msg) tea.Cmd {
	var inputCmd tea.Cmd
	m.searchBar, inputCmd = m.searchBar.Update(msg)

	m.debounceGen++
	if _, ok := search.NormalizeQuery(m.searchBar.Value()); !ok {
		return inputCmd
	}
	if m.cfg.DebounceDelay <= 0 {
		return tea.Batch(inputCmd, m.runSearch())
	}

	gen := m.debounceGen
	blockID := m.id
	return tea.Batch(inputCmd, tea.Tick(m.cfg.DebounceDelay, func(time.Time) tea.Msg {
		return debounceMsg{blockID: blockID, gen: gen}
	}))
}

// handleSubmit cancels any pending debounce tick and runs the search
// with the current input value right away.
func (m *BlockModel) handleSubmit(tea.Msg) tea.Cmd {
	m.debounceGen++
	return m.runSearch()
}

// runSearch starts one pipeline pass. The sequence number taken here
// marks the response as the newest; older responses are dropped in
// Update before they can touch any state.
func (m *BlockModel) runSearch() tea.Cmd {
	query := m.searchBar.Value()
	if _, ok := search.NormalizeQuery(query); !ok {
		return nil
	}

	m.searchSeq++
	seq := m.searchSeq
	m.loading = true
	m.searchErr = ""

	client := m.client
	blockID := m.id
	fetch := func() tea.Msg {
		candidates, err := client.Search(context.Background(), query)
		return searchResultMsg{blockID: blockID, seq: seq, candidates: candidates, err: err}
	}
	return tea.Batch(m.spin.Tick, fetch)
}

func (m *BlockModel) applySearchResult(msg searchResultMsg) tea.Cmd {
	m.loading = false
	m.releaseCandidates()

	if msg.err != nil {
		m.candidates = nil
		m.stripIndex = 0
		m.stripOffset = 0
		m.searchErr = "Couldn't load GIFs - try again"
		if m.focus == focusStrip {
			m.focus = focusInput
			m.searchBar.SetActive(true)
		}
		m.log.WithError(msg.err).WithField("block", m.id).Error("gif search failed")
		return nil
	}

	m.searchErr = ""
	m.candidates = msg.candidates
	m.stripIndex = 0
	m.stripOffset = 0
	m.wireCandidates(len(m.candidates))
	return nil
}

// selectCandidate transitions to the selected view, persisting the
// candidate's full-resolution fields.
func (m *BlockModel) selectCandidate(i int) tea.Cmd {
	if i < 0 || i >= len(m.candidates) {
		return nil
	}
	chosen := m.candidates[i]

	m.registry.ReleaseAll()
	m.data = models.BlockData{
		URL:    chosen.FullURL,
		Width:  chosen.Width,
		Height: chosen.Height,
		Title:  chosen.Title,
		Alt:    chosen.Alt,
	}
	m.candidates = nil
	m.loading = false
	m.searchErr = ""
	m.debounceGen++
	m.state = stateSelected
	m.searchBar.SetActive(false)
	m.wireSelectedView()
	return nil
}

// handleRemove tears the selected view down completely and returns to
// a fresh, empty search view.
func (m *BlockModel) handleRemove(tea.Msg) tea.Cmd {
	m.registry.ReleaseAll()
	m.data = models.BlockData{}
	m.candidates = nil
	m.loading = false
	m.searchErr = ""
	m.statusLine = ""
	m.stripIndex = 0
	m.stripOffset = 0
	m.debounceGen++

	m.state = stateSearch
	m.searchBar.Reset()
	m.wireSearchView()
	m.focus = focusInput
	m.searchBar.SetActive(true)
	return textinput.Blink
}

func (m *BlockModel) handleCopyURL(tea.Msg) tea.Cmd {
	if err := clipboard.WriteAll(m.data.URL); err != nil {
		m.statusLine = "Copy failed"
		m.log.WithError(err).Warn("clipboard write failed")
	} else {
		m.statusLine = "URL copied"
	}
	blockID := m.id
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{blockID: blockID}
	})
}

func (m *BlockModel) visibleCards() int {
	visible := (m.width - 2) / candidateCardWidth
	if visible < 1 {
		visible = 1
	}
	return visible
}

// Toolbox is the static descriptor the host lists in its insert menu.
func Toolbox() host.Toolbox {
	return host.Toolbox{
		Title: "GIF",
		Icon:  "▶",
	}
}

// SupportsReadOnly reports that the block honors the host's read-only
// toggle.
func SupportsReadOnly() bool {
	return true
}

var _ host.Block = (*BlockModel)(nil)

// Rendered layout constants shared with the views.
const (
	defaultBlockWidth  = 64
	minBlockWidth      = 30
	candidateCardWidth = 22
)
