package ui

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/five82/storefront/internal/catalog"
	"github.com/five82/storefront/internal/logging"
	"github.com/five82/storefront/internal/prefs"
	"github.com/five82/storefront/internal/storefront"
)

// View represents the current active view.
type View int

const (
	ViewCatalog View = iota
	ViewCart
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Session   *storefront.Session
	Logger    logrus.FieldLogger
	Prefs     prefs.Prefs
	PrefsPath string
	// Rand drives the decorative discount. Nil uses the global source.
	Rand *rand.Rand
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	session   *storefront.Session
	log       logrus.FieldLogger
	prefs     prefs.Prefs
	prefsPath string
	rng       *rand.Rand
	keys      keyMap

	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	snapshot  storefront.Snapshot
	visible   []catalog.Product
	reloading bool
	frame     int

	selectedRow  int
	cartRow      int
	offer        Offer
	offerFor     int64
	detailScroll viewport.Model

	searchActive bool
	searchInput  textinput.Model
	searchBefore string

	showHelp bool
	modal    Modal

	notice    string
	noticeSeq int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	var log logrus.FieldLogger = logging.Discard()
	if opts.Logger != nil {
		log = opts.Logger
	}
	p := opts.Prefs
	if strings.TrimSpace(p.Theme) == "" {
		p = prefs.Defaults()
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ti := textinput.New()
	ti.Placeholder = "Search title, description or category..."
	ti.Prompt = "/"
	ti.CharLimit = 80

	m := Model{
		ctx:          ctx,
		session:      opts.Session,
		log:          log,
		prefs:        p,
		prefsPath:    prefsPath,
		rng:          opts.Rand,
		keys:         DefaultKeyMap(),
		theme:        GetTheme(p.Theme),
		currentView:  ViewCatalog,
		searchInput:  ti,
		detailScroll: viewport.New(0, 0),
		offerFor:     -1,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.session == nil {
		return nil
	}
	return tea.Batch(startCmd(m.ctx, m.session), tickCmd(LoadingTick))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.updateDetailViewport()
		return m, nil

	case tickMsg:
		m.refresh()
		if m.busy() {
			m.frame++
			return m, tickCmd(LoadingTick)
		}
		return m, nil

	case loadedMsg:
		m.reloading = false
		m.refresh()
		if m.snapshot.APIUnavailable {
			return m, m.setNotice("Catalog service unavailable, showing offline products")
		}
		if msg.reload {
			return m, m.setNotice("Catalog reloaded")
		}
		return m, nil

	case checkoutConfirmedMsg:
		return m.placeOrder()

	case noticeExpiredMsg:
		if int(msg) == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
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
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

func (m Model) busy() bool {
	return m.reloading || !m.snapshot.Loaded || m.snapshot.Loading
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	if m.searchActive {
		return m.handleSearchInput(msg)
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

	case key.Matches(msg, m.keys.Reload):
		if m.busy() || m.session == nil {
			return m, nil
		}
		m.reloading = true
		return m, tea.Batch(reloadCmd(m.ctx, m.session), tickCmd(LoadingTick))

	case key.Matches(msg, m.keys.Tab):
		if m.currentView == ViewCatalog {
			m.currentView = ViewCart
		} else {
			m.currentView = ViewCatalog
		}
		return m, nil

	case key.Matches(msg, m.keys.ViewCatalog):
		m.currentView = ViewCatalog
		return m, nil

	case key.Matches(msg, m.keys.ViewCart):
		m.currentView = ViewCart
		return m, nil
	}

	switch m.currentView {
	case ViewCart:
		return m.handleCartKey(msg)
	default:
		return m.handleCatalogKey(msg)
	}
}

// refresh re-reads the session and re-derives everything shown on screen.
func (m *Model) refresh() {
	if m.session == nil {
		return
	}
	m.snapshot = m.session.Snapshot()
	m.visible = m.session.Visible()
	m.selectedRow = clamp(m.selectedRow, 0, len(m.visible)-1)
	m.cartRow = clamp(m.cartRow, 0, len(m.snapshot.Cart)-1)
	m.updateOffer()
	m.updateDetailViewport()
}

// updateOffer draws a new decorative discount when the selected product changes.
func (m *Model) updateOffer() {
	p, ok := m.selectedProduct()
	if !ok {
		m.offerFor = -1
		return
	}
	if p.ID == m.offerFor {
		return
	}
	m.offer = Discount(m.rng, p.Price)
	m.offerFor = p.ID
	m.detailScroll.GotoTop()
}

func (m Model) selectedProduct() (catalog.Product, bool) {
	if m.selectedRow < 0 || m.selectedRow >= len(m.visible) {
		return catalog.Product{}, false
	}
	return m.visible[m.selectedRow], true
}

func (m *Model) savePrefs() {
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.log.WithError(err).Warn("save preferences failed")
	}
}

func (m *Model) setNotice(text string) tea.Cmd {
	m.noticeSeq++
	m.notice = text
	seq := m.noticeSeq
	return tea.Tick(NoticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg(seq)
	})
}

// renderMain renders header, bars and the active view.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if m.snapshot.ShowAdvisory {
		b.WriteString(m.renderAdvisory())
		b.WriteString("\n")
	}
	b.WriteString(m.renderCategoryBar())
	b.WriteString("\n")

	switch m.currentView {
	case ViewCart:
		b.WriteString(m.renderCart())
	default:
		b.WriteString(m.renderCatalog())
	}
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	return b.String()
}

func (m Model) contentHeight() int {
	h := m.height - chromeRows
	if m.snapshot.ShowAdvisory {
		h--
	}
	return max(h, 3)
}

// Messages

type tickMsg time.Time

type loadedMsg struct{ reload bool }

type noticeExpiredMsg int

type checkoutConfirmedMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func startCmd(ctx context.Context, session *storefront.Session) tea.Cmd {
	return func() tea.Msg {
		session.Start(ctx)
		return loadedMsg{}
	}
}

func reloadCmd(ctx context.Context, session *storefront.Session) tea.Cmd {
	return func() tea.Msg {
		session.Reload(ctx)
		return loadedMsg{reload: true}
	}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is done.
func Run(opts Options) error {
	m := New(opts)
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
