package ui

import (
	"context"
	"errors"
	"maps"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/aidfinder/internal/catalog"
	"github.com/five82/aidfinder/internal/favorites"
	"github.com/five82/aidfinder/internal/locale"
	"github.com/five82/aidfinder/internal/prefs"
	"github.com/five82/aidfinder/internal/search"
	"github.com/five82/aidfinder/internal/share"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Index     *search.Index
	Table     *locale.Table
	Favorites *favorites.Store
	Prefs     *prefs.Store
	Language  string
	Logger    *zap.Logger
	Open      share.Opener
	Copy      share.Copier
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Dependencies
	ctx    context.Context
	index  *search.Index
	table  *locale.Table
	favs   *favorites.Store
	prefs  *prefs.Store
	logger *zap.Logger
	opener share.Opener
	copier share.Copier

	// UI state
	theme  Theme
	keys   keyMap
	lang   string
	width  int
	height int
	ready  bool

	// Filter state. choice and regionIdx are language independent; filter
	// carries the labels as displayed.
	filter    search.Filter
	choice    locale.Choice
	regionIdx int // 0 = all regions, otherwise catalog.StateCodes[regionIdx-1]

	// List state
	visible  []catalog.Program
	selected int
	offset   int

	// Search input
	input     textinput.Model
	searching bool

	// Help overlay
	showHelp bool

	// Status line
	status    string
	statusErr bool

	// Favorite flash: id -> sequence of the timer that clears it
	flashing map[string]int
	flashSeq int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	table := opts.Table
	if table == nil {
		table = locale.Default()
	}
	index := opts.Index
	if index == nil {
		index = search.NewIndex(catalog.Default(), table)
	}
	favs := opts.Favorites
	if favs == nil {
		favs = favorites.New(nil, logger)
	}
	userPrefs := opts.Prefs
	if userPrefs == nil {
		userPrefs = prefs.New(nil, table, logger)
	}
	lang := opts.Language
	if !table.Has(lang) {
		lang = userPrefs.Current().Language
	}
	openFn := opts.Open
	if openFn == nil {
		openFn = share.OpenURL
	}
	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = share.CopyToClipboard
	}

	input := textinput.New()
	input.Prompt = "/ "
	input.CharLimit = 120

	m := Model{
		ctx:    ctx,
		index:  index,
		table:  table,
		favs:   favs,
		prefs:  userPrefs,
		logger: logger,
		opener: openFn,
		copier: copyFn,
		theme:  GetTheme(userPrefs.Current().Theme),
		keys:   DefaultKeyMap(),
		lang:   lang,
		choice: locale.ChoiceAll,
		input:  input,
	}
	m.relabel()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(10, msg.Width/3)
		m.ready = true
		m.scrollToSelection()
		return m, nil

	case flashDoneMsg:
		if seq, ok := m.flashing[msg.id]; ok && seq == msg.seq {
			m.flashing = maps.Clone(m.flashing)
			delete(m.flashing, msg.id)
		}
		return m, nil

	case actionMsg:
		m.handleAction(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return m.t("app.title")
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
		m.scrollToSelection()
	case key.Matches(msg, m.keys.Bottom):
		m.selected = len(m.visible) - 1
		m.scrollToSelection()

	case key.Matches(msg, m.keys.NextCategory):
		m.cycleCategory(1)
	case key.Matches(msg, m.keys.PrevCategory):
		m.cycleCategory(-1)
	case key.Matches(msg, m.keys.NextState):
		m.cycleRegion(1)
	case key.Matches(msg, m.keys.PrevState):
		m.cycleRegion(-1)
	case key.Matches(msg, m.keys.Reset):
		m.resetFilters()

	case key.Matches(msg, m.keys.Favorite):
		return m.toggleFavorite()
	case key.Matches(msg, m.keys.Open):
		cmd := m.openSelected()
		return m, cmd
	case key.Matches(msg, m.keys.ShareMail):
		cmd := m.shareMail()
		return m, cmd
	case key.Matches(msg, m.keys.ShareWhatsApp):
		cmd := m.shareWhatsApp()
		return m, cmd
	case key.Matches(msg, m.keys.CopyLink):
		cmd := m.copySelected()
		return m, cmd

	case key.Matches(msg, m.keys.CycleLang):
		m.cycleLanguage()
	case key.Matches(msg, m.keys.ToggleTheme):
		m.toggleTheme()
	}

	return m, nil
}

// handleSearchKey feeds keys to the search field and filters live.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Confirm) || key.Matches(msg, m.keys.Cancel) {
		m.searching = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != m.filter.Query {
		m.filter.Query = q
		m.refresh()
	}
	return m, cmd
}

func (m *Model) moveSelection(delta int) {
	m.selected = clamp(m.selected+delta, 0, len(m.visible)-1)
	m.scrollToSelection()
}

// refresh recomputes the visible list, keeping the selected program when it
// is still visible.
func (m *Model) refresh() {
	var current string
	if p, ok := m.selectedProgram(); ok {
		current = p.ID()
	}

	m.visible = m.index.Visible(m.filter, m.favs)

	m.selected = 0
	for i, p := range m.visible {
		if p.ID() == current {
			m.selected = i
			break
		}
	}
	m.scrollToSelection()
}

// scrollToSelection adjusts the first rendered card so the selection is on
// screen.
func (m *Model) scrollToSelection() {
	m.selected = clamp(m.selected, 0, len(m.visible)-1)
	rows := m.visibleCards()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+rows {
		m.offset = m.selected - rows + 1
	}
	m.offset = clamp(m.offset, 0, max(0, len(m.visible)-rows))
}

// visibleCards returns how many cards fit on screen.
func (m Model) visibleCards() int {
	if m.height <= 0 {
		return len(m.visible)
	}
	return max(1, (m.height-ChromeHeight)/CardHeight)
}

func (m Model) selectedProgram() (catalog.Program, bool) {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return catalog.Program{}, false
	}
	return m.visible[m.selected], true
}

// cycleCategory moves the category selector through All, Saved and the six
// categories.
func (m *Model) cycleCategory(delta int) {
	choices := m.table.Choices()
	idx := 0
	for i, c := range choices {
		if c == m.choice {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(choices)) % len(choices)
	m.choice = choices[idx]
	m.relabel()
	m.refresh()
}

// cycleRegion moves the state selector through all regions and every state
// code.
func (m *Model) cycleRegion(delta int) {
	n := len(catalog.StateCodes) + 1
	m.regionIdx = (m.regionIdx + delta + n) % n
	m.relabel()
	m.refresh()
}

func (m *Model) resetFilters() {
	m.choice = locale.ChoiceAll
	m.regionIdx = 0
	m.filter.Query = ""
	m.input.SetValue("")
	m.relabel()
	m.refresh()
	m.setStatus(m.t("status.filters_reset"), false)
}

// relabel rewrites the displayed filter labels for the active language.
func (m *Model) relabel() {
	m.filter.Category = m.table.ChoiceLabel(m.lang, m.choice)
	if m.regionIdx == 0 {
		m.filter.Region = m.table.AllRegionsLabel(m.lang)
	} else {
		m.filter.Region = catalog.StateCodes[m.regionIdx-1]
	}
	m.input.Placeholder = m.t("search.placeholder")
}

func (m *Model) cycleLanguage() {
	next := m.table.Next(m.lang)
	if err := m.prefs.SetLanguage(m.ctx, next); err != nil {
		m.logger.Warn("change language failed", zap.String("language", next), zap.Error(err))
		return
	}
	m.lang = next
	m.relabel()
	m.refresh()
	m.setStatus(m.t("status.language")+": "+m.table.Locale(next).Name, false)
}

func (m *Model) toggleTheme() {
	next := prefs.NextTheme(m.theme.Name)
	if err := m.prefs.SetTheme(m.ctx, next); err != nil {
		m.logger.Warn("change theme failed", zap.String("theme", next), zap.Error(err))
		return
	}
	m.theme = GetTheme(next)
	m.setStatus(m.t("status.theme")+": "+next, false)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// t returns the UI string for id in the active language.
func (m Model) t(id string) string {
	return m.table.T(m.lang, id)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Messages

type flashDoneMsg struct {
	id  string
	seq int
}

func flashCmd(id string, seq int) tea.Cmd {
	return tea.Tick(FavoriteFlash, func(time.Time) tea.Msg {
		return flashDoneMsg{id: id, seq: seq}
	})
}
