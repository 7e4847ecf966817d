package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/llehouerou/capsule/internal/config"
	"github.com/llehouerou/capsule/internal/errmsg"
	"github.com/llehouerou/capsule/internal/feedback"
	"github.com/llehouerou/capsule/internal/icons"
	"github.com/llehouerou/capsule/internal/keymap"
	"github.com/llehouerou/capsule/internal/notify"
	"github.com/llehouerou/capsule/internal/stderr"
	"github.com/llehouerou/capsule/internal/ui/action"
	"github.com/llehouerou/capsule/internal/ui/layout"
	"github.com/llehouerou/capsule/internal/ui/navbar"
	"github.com/llehouerou/capsule/internal/ui/overlay"
	"github.com/llehouerou/capsule/internal/ui/render"
	"github.com/llehouerou/capsule/internal/ui/styles"
)

// configMsg carries a configuration reloaded after its file changed.
type configMsg struct {
	cfg config.NavigationConfig
	err error
}

// model is the preview program: one screen per entry with the bar floating
// over the bottom of the screen.
type model struct {
	entries  []navbar.Entry
	nav      navbar.Model
	selected int

	cfg   config.NavigationConfig
	keys  keymap.KeyMap
	help  help.Model
	zones *zone.Manager
	theme *styles.Theme

	capture *stderr.Capture
	status  string

	width, height int
}

type deps struct {
	cfg       config.NavigationConfig
	feedback  feedback.Feedback
	zones     *zone.Manager
	announcer *notify.Announcer
	capture   *stderr.Capture
}

func newModel(d deps) model {
	theme := styles.T()
	keys := keymap.Default()
	entries := demoEntries(d.announcer)

	opts := []navbar.Option{
		navbar.WithFeedback(d.feedback),
		navbar.WithTheme(theme),
		navbar.WithKeyMap(keys),
	}
	if d.zones != nil {
		opts = append(opts, navbar.WithZoneManager(d.zones))
	}

	return model{
		entries: entries,
		nav:     navbar.New(navbar.Items(entries), d.cfg, opts...),
		cfg:     d.cfg,
		keys:    keys,
		help:    help.New(),
		zones:   d.zones,
		theme:   theme,
		capture: d.capture,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.nav.Init(), stderr.Watch(m.capture))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.nav.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.keys.Resolve(msg) {
		case keymap.ActionQuit:
			return m, tea.Quit
		case keymap.ActionHelp:
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case keymap.ActionFeedback:
			m.cfg.EnableHapticFeedback = !m.cfg.EnableHapticFeedback
			m.nav.SetConfig(m.cfg)
			m.status = fmt.Sprintf("feedback %s", onOff(m.cfg.EnableHapticFeedback))
			return m, nil
		case keymap.ActionGlass:
			m.cfg.EnableGlassEffect = !m.cfg.EnableGlassEffect
			m.nav.SetConfig(m.cfg)
			m.status = fmt.Sprintf("glass %s", onOff(m.cfg.EnableGlassEffect))
			return m, nil
		}

	case action.Msg:
		return m.handleAction(msg)

	case configMsg:
		if msg.err != nil {
			m.status = errmsg.Format(errmsg.OpConfigLoad, msg.err)
			return m, nil
		}
		m.cfg = msg.cfg
		m.nav.SetConfig(msg.cfg)
		m.status = "configuration reloaded"
		return m, nil

	case stderr.LineMsg:
		m.status = msg.Line
		return m, stderr.Watch(m.capture)
	}

	var cmd tea.Cmd
	m.nav, cmd = m.nav.Update(msg)
	return m, cmd
}

func (m model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case navbar.ItemSelected:
		m.selected = a.Index
		m.status = ""
		return m, m.nav.SetSelected(a.Index)
	case navbar.FabClicked:
		m.status = a.Label
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	bar := m.nav.View()
	barHeight := lipgloss.Height(bar)
	helpView := m.helpView()

	// opaque bars take their own rows; glass bars float over the screen
	opts := layout.ScreenOpts{HelpHeight: lipgloss.Height(helpView)}
	if !m.cfg.EnableGlassEffect {
		opts.BarHeight = barHeight
	}
	screenHeight := layout.ScreenHeight(m.height, opts)

	screen := m.renderScreen(screenHeight)
	var body string
	if m.cfg.EnableGlassEffect {
		body = overlay.Compose(screen, bar, m.width, max(screenHeight-barHeight, 0))
	} else {
		body = screen + "\n" + bar
	}

	view := body + "\n" + helpView
	if m.zones != nil {
		return m.zones.Scan(view)
	}
	return view
}

func (m model) renderScreen(height int) string {
	if height == 0 {
		return ""
	}
	if m.selected < 0 || m.selected >= len(m.entries) {
		return strings.Repeat("\n", height-1)
	}

	e := m.entries[m.selected]
	inner := max(m.width-2, 0)
	innerHeight := max(height-2, 0)

	title := styles.ApplyBoldGradient(e.Title, m.theme.Primary, m.theme.ErrorContainer)
	body := []string{render.Cut(" "+title, inner)}
	if e.Screen != nil {
		for _, line := range strings.Split(e.Screen(inner, max(innerHeight-1, 0)), "\n") {
			body = append(body, render.Cut(line, inner))
		}
	}
	if len(body) > innerHeight {
		body = body[:innerHeight]
	}

	return m.theme.ScreenStyle(true).
		Width(inner).
		Height(innerHeight).
		Render(strings.Join(body, "\n"))
}

func (m model) helpView() string {
	lines := strings.Split(m.help.View(m.keys), "\n")
	if m.status != "" {
		lines[0] += m.theme.S().Muted.Render("  · " + render.Sanitize(m.status))
	}
	for i, line := range lines {
		lines[i] = render.Cut(line, m.width)
	}
	return strings.Join(lines, "\n")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func demoEntries(announcer *notify.Announcer) []navbar.Entry {
	muted := styles.T().S().Muted

	trade := &navbar.FabAction{Icon: icons.Add(), Label: "New trade"}
	if announcer != nil {
		trade.OnClick = announcer.Cmd("Capsule", "New trade started")
	}

	return []navbar.Entry{
		{
			Key:   "home",
			Title: "Home",
			Icon:  icons.Home(),
			Screen: func(width, _ int) string {
				return muted.Render(render.Truncate("Nothing new since your last visit.", width))
			},
		},
		{
			Key:   "collection",
			Title: "Collection",
			Icon:  icons.Collection(),
			Badge: "3",
			Screen: func(width, height int) string {
				var rows []string
				for i := range min(height, 12) {
					rows = append(rows, render.Truncate(fmt.Sprintf("  Card #%03d", i+1), width))
				}
				return strings.Join(rows, "\n")
			},
		},
		{
			Key:    "trade",
			Title:  "Trade",
			Icon:   icons.Trade(),
			Fab:    trade,
			Screen: func(width, _ int) string { return render.Truncate("No open trades. Press f to start one.", width) },
		},
		{
			Key:    "nearby",
			Title:  "Nearby",
			Icon:   icons.Nearby(),
			Screen: func(width, _ int) string { return render.Truncate("Searching for collectors around you…", width) },
		},
		{
			Key:    "profile",
			Title:  "Profile",
			Icon:   icons.Profile(),
			Screen: func(width, _ int) string { return render.Truncate("Signed in as guest.", width) },
		},
	}
}
