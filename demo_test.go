package main

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/capsule/internal/config"
	"github.com/llehouerou/capsule/internal/feedback"
	"github.com/llehouerou/capsule/internal/stderr"
	"github.com/llehouerou/capsule/internal/ui/action"
	"github.com/llehouerou/capsule/internal/ui/navbar"
	"github.com/llehouerou/capsule/internal/ui/testutil"
)

func newTestModel(t *testing.T, cfg config.NavigationConfig) model {
	t.Helper()
	m := newModel(deps{cfg: cfg, feedback: feedback.None{}})
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(model)
	require.True(t, ok)
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_ViewBeforeSize(t *testing.T) {
	m := newModel(deps{cfg: config.Default(), feedback: feedback.None{}})
	assert.Empty(t, m.View())
}

func TestModel_ViewShowsScreenBarAndHelp(t *testing.T) {
	m := newTestModel(t, config.Default())

	out := testutil.StripANSI(m.View())
	assert.Contains(t, out, "Nothing new since your last visit.")
	assert.Contains(t, out, "Collection")
	assert.Contains(t, out, "quit")
	assert.Len(t, testutil.SplitLines(m.View()), 30)
}

func TestModel_OpaqueBarStacksBelowScreen(t *testing.T) {
	cfg := config.Default()
	cfg.EnableGlassEffect = false
	m := newTestModel(t, cfg)

	assert.Len(t, testutil.SplitLines(m.View()), 30)
}

func TestModel_NavigationRoundTrip(t *testing.T) {
	m := newTestModel(t, config.Default())

	_, cmd := m.Update(runes("l"))
	msgs := testutil.RunCmds(cmd)
	require.Len(t, msgs, 1)
	msg, ok := msgs[0].(action.Msg)
	require.True(t, ok)
	assert.Equal(t, navbar.ItemSelected{Index: 1, Route: "collection"}, msg.Action)

	m = update(t, m, msg)
	assert.Equal(t, 1, m.selected)
	assert.Equal(t, 1, m.nav.Selected())
	assert.Contains(t, testutil.StripANSI(m.View()), "Card #001")
}

func TestModel_Toggles(t *testing.T) {
	m := newTestModel(t, config.Default())

	m = update(t, m, runes("g"))
	assert.False(t, m.cfg.EnableGlassEffect)
	assert.False(t, m.nav.Config().EnableGlassEffect)
	assert.Equal(t, "glass off", m.status)

	m = update(t, m, runes("b"))
	assert.False(t, m.nav.Config().EnableHapticFeedback)
	assert.Equal(t, "feedback off", m.status)

	m = update(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
}

func TestModel_ConfigReload(t *testing.T) {
	m := newTestModel(t, config.Default())

	cfg := config.Default()
	cfg.ItemWidth = 14
	m = update(t, m, configMsg{cfg: cfg})
	assert.Equal(t, 14, m.nav.Config().ItemWidth)
	assert.Equal(t, "configuration reloaded", m.status)

	m = update(t, m, configMsg{err: errors.New("bad toml")})
	assert.Equal(t, 14, m.nav.Config().ItemWidth)
	assert.Equal(t, "Failed to load configuration: bad toml", m.status)
}

func TestModel_CapturedLineShowsInStatus(t *testing.T) {
	m := newTestModel(t, config.Default())

	m = update(t, m, stderr.LineMsg{Line: "ALSA lib pcm.c: underrun"})
	assert.Equal(t, "ALSA lib pcm.c: underrun", m.status)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, config.Default())

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
