package ui

import (
	"fmt"
	"strings"

	"github.com/five82/storefront/internal/catalog"
)

// renderHeader renders the status bar: logo, data source, cart summary.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("storefront", styles.Logo)}

	switch {
	case m.busy():
		spin := spinnerFrames[m.frame%len(spinnerFrames)]
		label := "Loading catalog..."
		if m.reloading {
			label = "Reloading..."
		}
		parts = append(parts, bg.Render(spin+" "+label, styles.WarningText.Bold(true)))
	case m.snapshot.APIUnavailable:
		parts = append(parts, bg.Render("● Offline data", styles.WarningText))
	default:
		parts = append(parts, bg.Render("● Live", styles.SuccessText))
	}

	if m.snapshot.Loaded {
		parts = append(parts,
			bg.Render("Products:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", len(m.snapshot.Products)), styles.Text))
	}

	cartLabel := fmt.Sprintf("%d items", m.snapshot.CartCount)
	if m.snapshot.CartCount == 1 {
		cartLabel = "1 item"
	}
	parts = append(parts,
		bg.Render("Cart:", styles.MutedText)+bg.Space()+
			bg.Render(cartLabel, styles.AccentText)+bg.Space()+
			bg.Render(catalog.FormatPrice(m.snapshot.CartTotal, m.currency()), styles.PriceText))

	if !compact && !m.snapshot.LastLoaded.IsZero() {
		parts = append(parts, bg.Render("Updated "+m.snapshot.LastLoaded.Format("15:04:05"), styles.FaintText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderAdvisory renders the dismissible fallback-data banner.
func (m Model) renderAdvisory() string {
	text := "Product service unavailable. Showing a built-in sample catalog. Press x to dismiss, r to retry."
	if m.width < LayoutCompactWidth {
		text = "Offline sample catalog (x dismiss, r retry)"
	}
	return m.theme.Styles().Banner.Width(m.width).Render(truncate(text, max(m.width-2, 1)))
}

// renderCommandBar renders the key hints for the active view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.searchActive {
		return styles.Header.Width(m.width).Render(m.searchInput.View())
	}

	type cmd struct{ key, desc string }
	var commands []cmd
	switch m.currentView {
	case ViewCart:
		commands = []cmd{
			{"+/-", "Qty"},
			{"x", "Remove"},
			{"C", "Clear"},
			{"enter", "Checkout"},
			{"esc", "Catalog"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"/", "Search"},
			{"[/]", "Category"},
			{"a", "Add"},
			{"c", "Cart"},
			{"f", "Featured"},
			{"r", "Reload"},
			{"?", "More"},
		}
	}

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		segments = append(segments, bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	if m.notice != "" {
		segments = append(segments, bg.Render(truncate(m.notice, 60), styles.SuccessText))
	}
	segments = append(segments, bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}
