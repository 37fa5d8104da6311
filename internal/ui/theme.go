package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the palette for the storefront UI.
type Theme struct {
	Name string

	// Surfaces
	Background string
	Surface    string
	SurfaceAlt string
	FocusBg    string

	// Selection
	SelectionBg   string
	SelectionText string

	// Borders
	Border      string
	BorderFocus string

	// Text
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	// Storefront specific
	Price string
	Star  string
	Sale  string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	PriceText lipgloss.Style
	StarText  lipgloss.Style
	SaleText  lipgloss.Style

	Header   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style
	Banner   lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }
	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),

		PriceText: fg(t.Price).Bold(true),
		StarText:  fg(t.Star),
		SaleText:  fg(t.Sale).Strikethrough(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),
		Logo: fg(t.Accent).Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
		Banner: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Warning)).
			Foreground(lipgloss.Color(t.Background)).
			Bold(true).
			Padding(0, 1),
	}
}

// WithBackground returns a copy of Styles whose text styles all carry bgColor.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	return Styles{
		Text:        s.Text.Background(bg),
		MutedText:   s.MutedText.Background(bg),
		FaintText:   s.FaintText.Background(bg),
		AccentText:  s.AccentText.Background(bg),
		SuccessText: s.SuccessText.Background(bg),
		WarningText: s.WarningText.Background(bg),
		DangerText:  s.DangerText.Background(bg),
		PriceText:   s.PriceText.Background(bg),
		StarText:    s.StarText.Background(bg),
		SaleText:    s.SaleText.Background(bg),
		Header:      s.Header.Background(bg),
		Logo:        s.Logo.Background(bg),
		Selected:    s.Selected,
		Banner:      s.Banner,
	}
}

var themes = map[string]Theme{
	"Boutique": boutiqueTheme(),
	"Nightfox": nightfoxTheme(),
	"Mono":     monoTheme(),
}

var themeOrder = []string{"Boutique", "Nightfox", "Mono"}

// DefaultThemeName is used when the preferred theme is unknown.
const DefaultThemeName = "Boutique"

// GetTheme returns a theme by name, or the default theme.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return boutiqueTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names in cycle order.
func ThemeNames() []string {
	out := make([]string, len(themeOrder))
	copy(out, themeOrder)
	return out
}

func boutiqueTheme() Theme {
	// Warm neutrals with a rose accent.
	return Theme{
		Name: "Boutique",

		Background: "#1c1917", // stone-900
		Surface:    "#292524", // stone-800
		SurfaceAlt: "#221f1e",
		FocusBg:    "#312c2a",

		SelectionBg:   "#be185d", // pink-700
		SelectionText: "#fdf2f8", // pink-50

		Border:      "#57534e", // stone-600
		BorderFocus: "#f472b6", // pink-400

		Text:    "#f5f5f4", // stone-100
		Muted:   "#a8a29e", // stone-400
		Faint:   "#78716c", // stone-500
		Accent:  "#f472b6", // pink-400
		Success: "#4ade80", // green-400
		Warning: "#fbbf24", // amber-400
		Danger:  "#f87171", // red-400

		Price: "#fde68a", // amber-200
		Star:  "#facc15", // yellow-400
		Sale:  "#78716c",
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2
		FocusBg:    "#29394f", // bg3

		SelectionBg:   "#2b3b51", // sel0
		SelectionText: "#cdcecf", // fg1

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red

		Price: "#63cdcf", // cyan
		Star:  "#dbc074", // yellow
		Sale:  "#71839b", // fg3
	}
}

func monoTheme() Theme {
	return Theme{
		Name: "Mono",

		Background: "#000000",
		Surface:    "#111111",
		SurfaceAlt: "#0a0a0a",
		FocusBg:    "#1a1a1a",

		SelectionBg:   "#e5e5e5",
		SelectionText: "#000000",

		Border:      "#404040",
		BorderFocus: "#e5e5e5",

		Text:    "#e5e5e5",
		Muted:   "#a3a3a3",
		Faint:   "#737373",
		Accent:  "#ffffff",
		Success: "#d4d4d4",
		Warning: "#fafafa",
		Danger:  "#ffffff",

		Price: "#ffffff",
		Star:  "#d4d4d4",
		Sale:  "#737373",
	}
}
