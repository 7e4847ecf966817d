//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/capsule.toml",
			expected: filepath.Join(home, "capsule.toml"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/etc/capsule.toml",
			expected: "/etc/capsule.toml",
		},
		{
			name:     "relative path unchanged",
			input:    "conf/capsule.toml",
			expected: "conf/capsule.toml",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	require.NotEmpty(t, paths)
	assert.Equal(t, "capsule.toml", paths[len(paths)-1])
	assert.Equal(t, "config.toml", filepath.Base(paths[0]))
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFrom_NoFilesGivesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	want := Default().Normalize()
	assert.Equal(t, want, cfg)
	assert.Equal(t, 2, cfg.CornerRadius, "capsule radius is half the height")
	assert.Equal(t, Unspecified, cfg.BackgroundColor)
}

func TestLoadFrom_OverridesAndKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "a.toml", `
selected_item_color = "#ff0000"
item_width = 10
animation_duration_ms = 150
enable_haptic_feedback = false
feedback = "none"
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, lipgloss.Color("#ff0000"), cfg.SelectedItemColor)
	assert.Equal(t, Unspecified, cfg.BackgroundColor)
	assert.Equal(t, 10, cfg.ItemWidth)
	assert.Equal(t, 150*time.Millisecond, cfg.AnimationDuration())
	assert.False(t, cfg.EnableHapticFeedback)
	assert.True(t, cfg.EnableGlassEffect, "unset key keeps default")
	assert.Equal(t, "none", cfg.Feedback)
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	first := writeConfig(t, dir, "first.toml", "item_spacing = 3\nheight = 5\n")
	second := writeConfig(t, dir, "second.toml", "item_spacing = 2\n")

	cfg, err := LoadFrom(first, second)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.ItemSpacing)
	assert.Equal(t, 5, cfg.Height)
}

func TestLoadFrom_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "bad.toml", `
animation_duration_ms = -5
glass_effect_alpha = 1.5
feedback = "vibrate"
easing = "bounce"
`)

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "animation_duration_ms")
	assert.Contains(t, err.Error(), "glass_effect_alpha")
	assert.Contains(t, err.Error(), "feedback")
	assert.Contains(t, err.Error(), "easing")
}

func TestLoadFrom_MalformedTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "broken.toml", "height = = 3")

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	cfg := NavigationConfig{
		Height:              1,
		CornerRadius:        -1,
		HorizontalPadding:   -2,
		ItemWidth:           0,
		ItemSpacing:         -1,
		AnimationDurationMs: -10,
		GlassEffectAlpha:    2,
	}.Normalize()

	assert.Equal(t, 3, cfg.Height)
	assert.Equal(t, 1, cfg.CornerRadius)
	assert.Equal(t, 0, cfg.HorizontalPadding)
	assert.Equal(t, 1, cfg.ItemWidth)
	assert.Equal(t, 0, cfg.ItemSpacing)
	assert.Equal(t, 0, cfg.AnimationDurationMs)
	assert.Equal(t, 1.0, cfg.GlassEffectAlpha)
	assert.Equal(t, "bell", cfg.Feedback)
	assert.Equal(t, EasingEaseInOut, cfg.Easing)
}

func TestNormalize_KeepsExplicitCornerRadius(t *testing.T) {
	cfg := Default()
	cfg.CornerRadius = 0
	assert.Equal(t, 0, cfg.Normalize().CornerRadius)
}
