package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/storefront/internal/catalog"
)

// handleCatalogKey processes keyboard input for the catalog view.
func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searchActive = true
		m.searchBefore = m.snapshot.Query
		m.searchInput.SetValue(m.snapshot.Query)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Escape):
		if m.snapshot.Query != "" {
			m.session.SetQuery("")
			m.selectedRow = 0
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.NextCategory):
		m.shiftCategory(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevCategory):
		m.shiftCategory(-1)
		return m, nil

	case key.Matches(msg, m.keys.AddToCart):
		p, ok := m.selectedProduct()
		if !ok || !m.session.AddToCart(p.ID) {
			return m, nil
		}
		m.refresh()
		return m, m.setNotice(fmt.Sprintf("Added %s to cart", truncate(p.Title, 40)))

	case key.Matches(msg, m.keys.ToggleDetail):
		m.prefs.DetailPane = !m.prefs.DetailPane
		m.savePrefs()
		m.updateDetailViewport()
		return m, nil

	case key.Matches(msg, m.keys.DismissNotice):
		m.session.DismissAdvisory()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.JumpToFeatured):
		m.jumpToFeatured()
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.detailScroll.HalfPageDown()
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.detailScroll.HalfPageUp()
		return m, nil
	}

	count := len(m.visible)
	if count == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Down):
		m.selectedRow = min(m.selectedRow+1, count-1)
	case key.Matches(msg, m.keys.Up):
		m.selectedRow = max(m.selectedRow-1, 0)
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = count - 1
	default:
		return m, nil
	}
	m.updateOffer()
	m.updateDetailViewport()
	return m, nil
}

// handleSearchInput feeds keys to the search box. The filter is applied on
// every keystroke; enter keeps the query and esc restores the previous one.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searchActive = false
		m.searchInput.Blur()
		return m, nil
	case tea.KeyEsc:
		m.searchActive = false
		m.searchInput.Blur()
		m.session.SetQuery(m.searchBefore)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != m.snapshot.Query {
		m.session.SetQuery(m.searchInput.Value())
		m.selectedRow = 0
		m.refresh()
	}
	return m, cmd
}

// categoryOptions returns the filter choices: the all sentinel then the
// loaded categories.
func (m Model) categoryOptions() []string {
	return append([]string{catalog.AllCategories}, m.snapshot.Categories...)
}

func (m *Model) shiftCategory(delta int) {
	options := m.categoryOptions()
	idx := 0
	for i, c := range options {
		if c == m.snapshot.Category {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(options)) % len(options)
	m.session.SetCategory(options[idx])
	m.selectedRow = 0
	m.refresh()
}

func (m *Model) jumpToFeatured() {
	if !m.snapshot.HasFeatured {
		return
	}
	m.session.SetCategory(catalog.AllCategories)
	m.session.SetQuery("")
	m.refresh()
	for i, p := range m.visible {
		if p.ID == m.snapshot.Featured.ID {
			m.selectedRow = i
			break
		}
	}
	m.updateOffer()
	m.updateDetailViewport()
}

// renderCategoryBar renders the category chips with the active one highlighted.
func (m Model) renderCategoryBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	chips := make([]string, 0, len(m.snapshot.Categories)+1)
	for _, c := range m.categoryOptions() {
		label := titleCase(c)
		if c == m.snapshot.Category {
			chips = append(chips, styles.Selected.Padding(0, 1).Render(label))
			continue
		}
		chips = append(chips, bg.Render(" "+label+" ", styles.MutedText))
	}
	line := bg.Join(chips, " ")
	if q := m.snapshot.Query; q != "" && !m.searchActive {
		line += bg.Spaces(2) + bg.Render("/"+truncate(q, 24), styles.AccentText)
	}
	return styles.Header.Width(m.width).Render(line)
}

func (m Model) paneWidths() (list, detail int) {
	if !m.prefs.DetailPane || m.width < LayoutCompactWidth {
		return m.width, 0
	}
	if m.width >= LayoutWideWidth {
		list = m.width * 40 / 100
	} else {
		list = m.width * 50 / 100
	}
	return list, m.width - list
}

// renderCatalog renders the product list with an optional detail pane.
func (m Model) renderCatalog() string {
	height := m.contentHeight()
	listWidth, detailWidth := m.paneWidths()

	title := fmt.Sprintf("Products (%d)", len(m.visible))
	list := m.renderTitledBox(title, m.renderProductList(listWidth-2, height-2), listWidth, height, true)
	if detailWidth == 0 {
		return list
	}
	detail := m.renderTitledBox("Details", m.detailScroll.View(), detailWidth, height, false)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, detail)
}

// renderProductList renders the featured line and the visible products,
// windowed so the selection stays on screen.
func (m Model) renderProductList(width, rows int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	currency := m.currency()

	var lines []string
	if m.snapshot.HasFeatured {
		f := m.snapshot.Featured
		lines = append(lines,
			bg.Render("Featured", styles.WarningText.Bold(true))+bg.Space()+
				bg.Render(truncate(f.Title, max(width-22, 8)), styles.Text)+bg.Space()+
				bg.Render(catalog.FormatPrice(f.Price, currency), styles.PriceText),
			bg.Render(strings.Repeat("─", max(width, 0)), styles.FaintText),
		)
	}

	if !m.snapshot.Loaded && len(m.visible) == 0 {
		lines = append(lines, bg.Render(spinnerFrames[m.frame%len(spinnerFrames)]+" Loading products...", styles.WarningText))
		return strings.Join(lines, "\n")
	}
	if len(m.visible) == 0 {
		lines = append(lines, bg.Render("No products match the current filter", styles.MutedText))
		return strings.Join(lines, "\n")
	}

	available := max(rows-len(lines), 1)
	start := 0
	if m.selectedRow >= available {
		start = m.selectedRow - available + 1
	}
	end := min(start+available, len(m.visible))

	for i := start; i < end; i++ {
		lines = append(lines, m.formatProductRow(m.visible[i], width, i == m.selectedRow))
	}
	return strings.Join(lines, "\n")
}

// formatProductRow formats "Title ... $Price" padded to width.
func (m Model) formatProductRow(p catalog.Product, width int, selected bool) string {
	price := catalog.FormatPrice(p.Price, m.currency())
	marker := "  "
	if m.snapshot.HasFeatured && p.ID == m.snapshot.Featured.ID {
		marker = StarFull + " "
	}
	if qty := m.cartQuantity(p.ID); qty > 0 {
		price = fmt.Sprintf("[%d] %s", qty, price)
	}
	titleWidth := max(width-len([]rune(price))-len([]rune(marker))-1, 6)
	text := marker + padRight(truncate(p.Title, titleWidth), titleWidth) + " " + price

	if selected {
		return m.theme.Styles().Selected.Width(width).Render(text)
	}
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles()
	return bg.FillLine(
		bg.Render(marker, styles.StarText)+
			bg.Render(padRight(truncate(p.Title, titleWidth), titleWidth), styles.Text)+bg.Space()+
			bg.Render(price, styles.PriceText),
		width)
}

func (m Model) cartQuantity(id int64) int {
	for _, it := range m.snapshot.Cart {
		if it.ID == id {
			return it.Quantity
		}
	}
	return 0
}

// updateDetailViewport sizes the detail viewport and renders the selected
// product into it.
func (m *Model) updateDetailViewport() {
	_, detailWidth := m.paneWidths()
	if detailWidth == 0 {
		return
	}
	m.detailScroll.Width = max(detailWidth-2, 0)
	m.detailScroll.Height = max(m.contentHeight()-2, 0)
	m.detailScroll.SetContent(m.renderDetailContent(max(detailWidth-4, 10)))
}

func (m Model) renderDetailContent(width int) string {
	styles := m.theme.Styles()
	p, ok := m.selectedProduct()
	if !ok {
		return styles.MutedText.Render("Select a product")
	}
	currency := m.currency()

	var b strings.Builder
	for _, line := range wrap(p.Title, width) {
		b.WriteString(styles.Text.Bold(true).Render(line))
		b.WriteString("\n")
	}
	b.WriteString(styles.MutedText.Render(titleCase(p.Category)))
	b.WriteString("\n\n")

	b.WriteString(styles.PriceText.Render(catalog.FormatPrice(p.Price, currency)))
	if m.offerFor == p.ID {
		b.WriteString("  ")
		b.WriteString(styles.SaleText.Render(catalog.FormatPrice(m.offer.Original, currency)))
		b.WriteString(" ")
		b.WriteString(styles.SuccessText.Render(fmt.Sprintf("-%d%%", m.offer.Percent)))
	}
	b.WriteString("\n")

	b.WriteString(styles.StarText.Render(Stars(p.Rating.Rate)))
	b.WriteString(styles.MutedText.Render(fmt.Sprintf(" %.1f (%d reviews)", p.Rating.Rate, p.Rating.Count)))
	b.WriteString("\n")

	if qty := m.cartQuantity(p.ID); qty > 0 {
		b.WriteString(styles.AccentText.Render(fmt.Sprintf("In cart: %d", qty)))
		b.WriteString("\n")
	}

	if desc := strings.TrimSpace(p.Description); desc != "" {
		b.WriteString("\n")
		for _, line := range wrap(desc, width) {
			b.WriteString(styles.Text.Render(line))
			b.WriteString("\n")
		}
	}
	if img := strings.TrimSpace(p.Image); img != "" {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(truncate(img, width)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) currency() string {
	if m.session == nil {
		return "$"
	}
	return m.session.Currency()
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColor, bgColor := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColor, bgColor = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColor))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 1))
	titleLen := len([]rune(title))
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	top := bg.Render("┌"+strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad)+"┐", borderStyle)
	bottom := bg.Render("└"+strings.Repeat("─", innerWidth)+"┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColor))
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight+2)
	lines = append(lines, top)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines, bg.Render("│", borderStyle)+contentStyle.Render(line)+bg.Render("│", borderStyle))
	}
	lines = append(lines, bottom)
	return strings.Join(lines, "\n")
}
