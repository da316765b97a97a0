package ui

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/minimarket/internal/menu"
	"github.com/five82/minimarket/internal/orders"
	"github.com/five82/minimarket/internal/prefs"
	"github.com/five82/minimarket/internal/session"
)

// maxHistory bounds the back stack.
const maxHistory = 32

// Options configures the UI.
type Options struct {
	Context      context.Context
	Fetcher      orders.Fetcher
	Sessions     session.Provider
	Formatter    orders.Formatter
	FetchTimeout time.Duration
	Prefs        prefs.Prefs
	PrefsPath    string
	// SourceLabel names where orders come from, shown in the orders title.
	SourceLabel string
	// SessionChanges signals that the session was reloaded from disk.
	SessionChanges <-chan struct{}
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx          context.Context
	fetcher      orders.Fetcher
	sessions     session.Provider
	formatter    orders.Formatter
	fetchTimeout time.Duration
	prefs        prefs.Prefs
	prefsPath    string
	sourceLabel  string
	sessionCh    <-chan struct{}

	// UI state
	keys     keyMap
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Navigation
	route   menu.Target
	history []menu.Target
	menu    menu.Controller

	// Orders screen
	orders ordersState
}

// New creates a new Bubble Tea model on the landing screen for the current
// session.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	timeout := opts.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	p := opts.Prefs
	if p.PageSize <= 0 {
		p.PageSize = prefs.Default().PageSize
	}
	if p.Theme == "" {
		p.Theme = prefs.Default().Theme
	}

	m := Model{
		ctx:          ctx,
		fetcher:      opts.Fetcher,
		sessions:     opts.Sessions,
		formatter:    opts.Formatter,
		fetchTimeout: timeout,
		prefs:        p,
		prefsPath:    opts.PrefsPath,
		sourceLabel:  opts.SourceLabel,
		sessionCh:    opts.SessionChanges,
		keys:         DefaultKeyMap(),
		theme:        GetTheme(p.Theme),
		menu:         menu.New(opts.Sessions),
	}
	m, _ = m.enter(landing(m.menu.Role()))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.screenInit(), waitForSession(m.sessionCh))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.menu.SetSession(m.session())

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case menu.FrameMsg:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd

	case menu.NavigateMsg:
		return m.navigate(msg.Target)

	case ordersLoadedMsg:
		m.handleOrdersLoaded(msg)
		return m, nil

	case sessionChangedMsg:
		next, cmd := m.handleSessionChanged()
		return next, tea.Batch(cmd, waitForSession(m.sessionCh))
	}

	// Cursor blink and other component messages.
	if m.onOrders() {
		var cmd tea.Cmd
		m.orders.search, cmd = m.orders.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.onOrders() && m.orders.detail != nil {
		return m.orders.detail.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// handleKey routes a key press to the topmost layer: help, detail modal,
// drawer, search field, then global and screen keys.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.onOrders() && m.orders.detail != nil {
		return m.handleDetailKey(msg)
	}

	if m.menu.IsOpen() && !m.menu.Closing() {
		return m.handleDrawerKey(msg)
	}

	if m.onOrders() && m.orders.search.Focused() {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		return m, nil
	case key.Matches(msg, m.keys.Menu):
		cmd := m.menu.Toggle()
		return m, cmd
	case key.Matches(msg, m.keys.Profile):
		cmd := m.menu.Profile()
		return m, cmd
	case key.Matches(msg, m.keys.Back):
		return m.back()
	}

	if m.onOrders() {
		return m.handleOrdersKey(msg)
	}
	return m, nil
}

// handleDrawerKey drives the open drawer.
func (m Model) handleDrawerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.menu.MoveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.menu.MoveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.menu.MoveCursor(-len(m.menu.Items()))
	case key.Matches(msg, m.keys.Bottom):
		m.menu.MoveCursor(len(m.menu.Items()))
	case key.Matches(msg, m.keys.Confirm):
		cmd := m.menu.ActivateSelected()
		return m, cmd
	case key.Matches(msg, m.keys.Profile):
		cmd := m.menu.Profile()
		return m, cmd
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Menu):
		cmd := m.menu.Close()
		return m, cmd
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// navigate shows target, falling back to Login when the session's role may
// not open it. Navigating to the current screen is a no-op.
func (m Model) navigate(target menu.Target) (Model, tea.Cmd) {
	if !permitted(m.menu.Role(), target) {
		log.Printf("navigation to %s denied for %s session", target.Leaf(), m.menu.Role())
		target = menu.To(menu.ScreenLogin)
	}
	if target.Equal(m.route) {
		return m, nil
	}
	m.history = append(m.history, m.route)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	return m.enter(target)
}

// back returns to the most recent screen the current role may still open.
func (m Model) back() (Model, tea.Cmd) {
	role := m.menu.Role()
	for len(m.history) > 0 {
		prev := m.history[len(m.history)-1]
		m.history = m.history[:len(m.history)-1]
		if permitted(role, prev) && !prev.Equal(m.route) {
			return m.enter(prev)
		}
	}
	return m, nil
}

// enter mounts target. The outgoing screen's menu controller is stopped and
// the new screen gets its own, closed, controller.
func (m Model) enter(target menu.Target) (Model, tea.Cmd) {
	m.menu.Stop()
	m.menu = menu.New(m.sessions)
	m.route = target

	if target.Leaf() == menu.ScreenOrders {
		m.orders = newOrdersState(m.prefs.PageSize, m.orders.seq+1)
	} else {
		m.orders.detail = nil
	}
	return m, m.screenInit()
}

type sessionChangedMsg struct{}

// waitForSession blocks until the next session change.
func waitForSession(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return sessionChangedMsg{}
	}
}

// handleSessionChanged moves off screens the new role may not see, and off
// Login once someone has signed in.
func (m Model) handleSessionChanged() (Model, tea.Cmd) {
	role := m.menu.Role()
	signedIn := m.route.Leaf() == menu.ScreenLogin && role != menu.RoleGuest
	if permitted(role, m.route) && !signedIn {
		return m, nil
	}
	log.Printf("session changed to %s; leaving %s", role, m.route.Leaf())
	m.history = nil
	return m.enter(landing(role))
}

// screenInit is the command a freshly mounted screen starts with.
func (m Model) screenInit() tea.Cmd {
	if m.onOrders() {
		return m.fetchOrdersCmd()
	}
	return nil
}

func (m Model) onOrders() bool {
	return m.route.Leaf() == menu.ScreenOrders
}

func (m Model) session() session.Session {
	if m.sessions == nil {
		return session.Guest()
	}
	return m.sessions.Session()
}

func (m Model) savePrefs() {
	if strings.TrimSpace(m.prefsPath) == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// renderMain renders header, command bar and the current screen, with the
// drawer sliding over the content while it is shown.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	contentHeight := max(m.height-chromeHeight, 1)
	content := m.renderContent(m.width, contentHeight)
	if m.menu.IsOpen() {
		content = m.overlayDrawer(content, contentHeight)
	}
	b.WriteString(content)

	return b.String()
}

// renderContent renders the current screen.
func (m Model) renderContent(width, height int) string {
	if m.onOrders() {
		return m.renderOrders(width, height)
	}
	return m.renderPlaceholder(width, height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	return err
}
