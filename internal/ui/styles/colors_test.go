package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/capsule/internal/config"
	"github.com/llehouerou/capsule/internal/ui/testutil"
)

func TestResolve_FallsBackToTheme(t *testing.T) {
	theme := T()
	got := Resolve(config.Default(), theme)

	assert.Equal(t, theme.Surface, got.Background)
	assert.Equal(t, theme.Primary, got.Selected)
	assert.Equal(t, Blend(theme.Surface, theme.OnSurface, UnselectedAlpha), got.Unselected)
}

func TestResolve_UsesExplicitColors(t *testing.T) {
	cfg := config.Default()
	cfg.BackgroundColor = "#000000"
	cfg.SelectedItemColor = "39"
	cfg.UnselectedItemColor = "#808080"

	got := Resolve(cfg, T())

	assert.Equal(t, lipgloss.Color("#000000"), got.Background)
	assert.Equal(t, lipgloss.Color("39"), got.Selected)
	assert.Equal(t, lipgloss.Color("#808080"), got.Unselected)
}

func TestResolve_NeverUnspecified(t *testing.T) {
	colors := []lipgloss.Color{Unspecified, "#102030", "208"}
	for _, bg := range colors {
		for _, sel := range colors {
			for _, unsel := range colors {
				cfg := config.Default()
				cfg.BackgroundColor = bg
				cfg.SelectedItemColor = sel
				cfg.UnselectedItemColor = unsel

				got := Resolve(cfg, nil)
				assert.NotEqual(t, Unspecified, got.Background)
				assert.NotEqual(t, Unspecified, got.Selected)
				assert.NotEqual(t, Unspecified, got.Unselected)
			}
		}
	}
}

func TestResolveFab(t *testing.T) {
	theme := T()

	t.Run("theme defaults", func(t *testing.T) {
		got := ResolveFab(Unspecified, Unspecified, config.Default(), theme)
		assert.Equal(t, theme.Primary, got.Container)
		assert.Equal(t, theme.OnPrimary, got.Icon)
	})

	t.Run("config overrides theme", func(t *testing.T) {
		cfg := config.Default()
		cfg.FabContainerColor = "#00ff00"
		cfg.FabIconColor = "#0000ff"
		got := ResolveFab(Unspecified, Unspecified, cfg, theme)
		assert.Equal(t, lipgloss.Color("#00ff00"), got.Container)
		assert.Equal(t, lipgloss.Color("#0000ff"), got.Icon)
	})

	t.Run("action overrides config", func(t *testing.T) {
		cfg := config.Default()
		cfg.FabContainerColor = "#00ff00"
		got := ResolveFab("#ff0000", Unspecified, cfg, theme)
		assert.Equal(t, lipgloss.Color("#ff0000"), got.Container)
		assert.Equal(t, theme.OnPrimary, got.Icon)
	})
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name  string
		under lipgloss.Color
		over  lipgloss.Color
		alpha float64
		want  lipgloss.Color
	}{
		{"transparent keeps under", "#000000", "#ffffff", 0, "#000000"},
		{"opaque takes over", "#000000", "#ffffff", 1, "#ffffff"},
		{"clamped above", "#000000", "#ffffff", 3, "#ffffff"},
		{"clamped below", "#000000", "#ffffff", -1, "#000000"},
		{"half", "#000000", "#ff0000", 0.5, "#800000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Blend(tt.under, tt.over, tt.alpha))
		})
	}
}

func TestBlend_ColorForms(t *testing.T) {
	tests := []struct {
		over lipgloss.Color
		want lipgloss.Color
	}{
		{"#112233", "#112233"},
		{"#123", "#112233"},
		{"#f80", "#ff8800"},
		{"4", "#000080"},
		{"39", "#00afff"},
		{"208", "#ff8700"},
	}

	for _, tt := range tests {
		t.Run(string(tt.over), func(t *testing.T) {
			assert.Equal(t, tt.want, Blend("#000000", tt.over, 1))
			assert.Equal(t, tt.want, Blend(tt.over, "#000000", 0))
		})
	}
}

func TestBlend_UnreadableReturnsOver(t *testing.T) {
	assert.Equal(t, lipgloss.Color("red"), Blend("#000000", "red", 0.5))
	assert.Equal(t, lipgloss.Color("#ffffff"), Blend("300", "#ffffff", 0.5))
	assert.Equal(t, lipgloss.Color(""), Blend("#000000", "", 0.5))
}

func TestApplyBoldGradient(t *testing.T) {
	assert.Empty(t, ApplyBoldGradient("", "#000000", "#ffffff"))

	out := ApplyBoldGradient("capsule", "#a78bfa", "#f1a208")
	assert.Equal(t, "capsule", testutil.StripANSI(out))
}
