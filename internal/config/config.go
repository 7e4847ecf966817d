// Package config holds the navigation bar configuration and loads it from TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/lipgloss"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "capsule"

// Easing curve names.
const (
	EasingEaseInOut = "ease_in_out"
	EasingLinear    = "linear"
	EasingSpring    = "spring"
)

// Unspecified marks a color the caller did not set. It resolves to the
// theme default.
const Unspecified = lipgloss.Color("")

// NavigationConfig customizes the appearance and behavior of the navigation bar.
// Lengths are terminal cells (columns for widths, rows for heights).
type NavigationConfig struct {
	BackgroundColor     lipgloss.Color `koanf:"background_color"`
	SelectedItemColor   lipgloss.Color `koanf:"selected_item_color"`
	UnselectedItemColor lipgloss.Color `koanf:"unselected_item_color"`
	FabContainerColor   lipgloss.Color `koanf:"fab_container_color"`
	FabIconColor        lipgloss.Color `koanf:"fab_icon_color"`

	Height            int `koanf:"height"`
	CornerRadius      int `koanf:"corner_radius"` // -1 means height/2
	HorizontalPadding int `koanf:"horizontal_padding"`
	VerticalPadding   int `koanf:"vertical_padding"`
	ItemWidth         int `koanf:"item_width"`
	ItemSpacing       int `koanf:"item_spacing"`

	AnimationDurationMs  int     `koanf:"animation_duration_ms"`
	Easing               string  `koanf:"easing"` // "ease_in_out", "linear", or "spring"
	EnableHapticFeedback bool    `koanf:"enable_haptic_feedback"`
	EnableGlassEffect    bool    `koanf:"enable_glass_effect"`
	GlassEffectAlpha     float64 `koanf:"glass_effect_alpha"`

	Feedback string `koanf:"feedback"` // "bell", "tone", or "none"
	Icons    string `koanf:"icons"`    // "nerd", "unicode", or "none"
}

// Default returns the configuration used when nothing is overridden.
func Default() NavigationConfig {
	return NavigationConfig{
		Height:               4,
		CornerRadius:         -1,
		HorizontalPadding:    2,
		VerticalPadding:      0,
		ItemWidth:            12,
		ItemSpacing:          1,
		AnimationDurationMs:  300,
		Easing:               EasingEaseInOut,
		EnableHapticFeedback: true,
		EnableGlassEffect:    true,
		GlassEffectAlpha:     0.92,
		Feedback:             "bell",
		Icons:                "unicode",
	}
}

// Load reads the configuration from the default locations.
// Missing files are skipped; later files override earlier ones.
func Load() (NavigationConfig, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the configuration from the given TOML files in order.
// Keys absent from every file keep their default value.
func LoadFrom(paths ...string) (NavigationConfig, error) {
	k := koanf.New(".")

	for _, path := range paths {
		path = expandPath(path)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return NavigationConfig{}, fmt.Errorf("stat %s: %w", path, err)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return NavigationConfig{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return NavigationConfig{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return NavigationConfig{}, err
	}
	return cfg.Normalize(), nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/capsule/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./capsule.toml (pwd, highest priority)
	paths = append(paths, appName+".toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Validate reports values that cannot be honored.
func (c NavigationConfig) Validate() error {
	var errs []error
	if c.AnimationDurationMs < 0 {
		errs = append(errs, fmt.Errorf("animation_duration_ms must be >= 0, got %d", c.AnimationDurationMs))
	}
	if c.GlassEffectAlpha < 0 || c.GlassEffectAlpha > 1 {
		errs = append(errs, fmt.Errorf("glass_effect_alpha must be within [0,1], got %g", c.GlassEffectAlpha))
	}
	if c.ItemWidth < 1 {
		errs = append(errs, fmt.Errorf("item_width must be >= 1, got %d", c.ItemWidth))
	}
	if c.ItemSpacing < 0 {
		errs = append(errs, fmt.Errorf("item_spacing must be >= 0, got %d", c.ItemSpacing))
	}
	switch c.Feedback {
	case "", "bell", "tone", "none":
	default:
		errs = append(errs, fmt.Errorf("feedback must be bell, tone or none, got %q", c.Feedback))
	}
	switch c.Easing {
	case "", EasingEaseInOut, EasingLinear, EasingSpring:
	default:
		errs = append(errs, fmt.Errorf("easing must be ease_in_out, linear or spring, got %q", c.Easing))
	}
	return errors.Join(errs...)
}

// Normalize returns a copy with every value clamped into its valid range.
// The corner radius sentinel is replaced by half the height.
func (c NavigationConfig) Normalize() NavigationConfig {
	c.Height = max(c.Height, 3)
	if c.CornerRadius < 0 {
		c.CornerRadius = c.Height / 2
	}
	c.HorizontalPadding = max(c.HorizontalPadding, 0)
	c.VerticalPadding = max(c.VerticalPadding, 0)
	c.ItemWidth = max(c.ItemWidth, 1)
	c.ItemSpacing = max(c.ItemSpacing, 0)
	c.AnimationDurationMs = max(c.AnimationDurationMs, 0)
	c.GlassEffectAlpha = min(max(c.GlassEffectAlpha, 0), 1)
	if c.Feedback == "" {
		c.Feedback = "bell"
	}
	if c.Easing == "" {
		c.Easing = EasingEaseInOut
	}
	return c
}

// AnimationDuration returns the highlight slide duration.
func (c NavigationConfig) AnimationDuration() time.Duration {
	return time.Duration(c.AnimationDurationMs) * time.Millisecond
}
