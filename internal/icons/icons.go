// Package icons provides the glyphs drawn for navigation items and the FAB.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
// Every glyph occupies a single terminal cell.
type Icons struct {
	Home       string
	Collection string
	Trade      string
	Nearby     string
	Profile    string
	Search     string
	Settings   string
	Add        string
}

var (
	nerdIcons = Icons{
		Home:       "\uf015",     // nf-fa-home
		Collection: "\U000f0004", // nf-md-account_circle
		Trade:      "\U000f04e1", // nf-md-swap_horizontal
		Nearby:     "\uf041",     // nf-fa-map_marker
		Profile:    "\uf007",     // nf-fa-user
		Search:     "\uf002",     // nf-fa-search
		Settings:   "\uf013",     // nf-fa-cog
		Add:        "\uf067",     // nf-fa-plus
	}

	unicodeIcons = Icons{
		Home:       "⌂",
		Collection: "◉",
		Trade:      "⇄",
		Nearby:     "⌖",
		Profile:    "☺",
		Search:     "⌕",
		Settings:   "⚙",
		Add:        "+",
	}

	noneIcons = Icons{
		Home:       "H",
		Collection: "C",
		Trade:      "T",
		Nearby:     "N",
		Profile:    "P",
		Search:     "/",
		Settings:   "S",
		Add:        "+",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Current returns the active icon set.
func Current() Icons {
	return current
}

// Home returns the home icon.
func Home() string { return current.Home }

// Collection returns the collection icon.
func Collection() string { return current.Collection }

// Trade returns the trade icon.
func Trade() string { return current.Trade }

// Nearby returns the nearby/location icon.
func Nearby() string { return current.Nearby }

// Profile returns the profile icon.
func Profile() string { return current.Profile }

// Search returns the search icon.
func Search() string { return current.Search }

// Settings returns the settings icon.
func Settings() string { return current.Settings }

// Add returns the add icon, used by the FAB.
func Add() string { return current.Add }
