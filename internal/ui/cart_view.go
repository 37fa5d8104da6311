package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/storefront/internal/cart"
	"github.com/five82/storefront/internal/catalog"
)

// handleCartKey processes keyboard input for the cart view.
func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) {
		m.currentView = ViewCatalog
		return m, nil
	}
	if key.Matches(msg, m.keys.Checkout) {
		if len(m.snapshot.Cart) == 0 {
			return m, m.setNotice("Your cart is empty")
		}
		m.modal = newCheckoutModal(m.snapshot.CartCount, m.snapshot.CartTotal, m.currency())
		return m, nil
	}

	items := m.snapshot.Cart
	if len(items) == 0 {
		return m, nil
	}
	line := items[clamp(m.cartRow, 0, len(items)-1)]

	switch {
	case key.Matches(msg, m.keys.Down):
		m.cartRow = min(m.cartRow+1, len(items)-1)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.cartRow = max(m.cartRow-1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.cartRow = 0
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.cartRow = len(items) - 1
		return m, nil

	case key.Matches(msg, m.keys.Increment):
		m.session.UpdateQuantity(line.ID, line.Quantity+1)
	case key.Matches(msg, m.keys.Decrement):
		m.session.UpdateQuantity(line.ID, line.Quantity-1)
	case key.Matches(msg, m.keys.Remove):
		m.session.RemoveFromCart(line.ID)
		m.refresh()
		return m, m.setNotice(fmt.Sprintf("Removed %s", truncate(line.Title, 40)))
	case key.Matches(msg, m.keys.ClearCart):
		m.session.ClearCart()
		m.refresh()
		return m, m.setNotice("Cart cleared")
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

// placeOrder runs the simulated checkout and shows the receipt.
func (m Model) placeOrder() (tea.Model, tea.Cmd) {
	receipt, ok := m.session.Checkout()
	if !ok {
		return m, m.setNotice("Your cart is empty")
	}
	m.refresh()
	m.modal = receiptModal{message: receipt.Message(), orderID: receipt.OrderID.String()}
	return m, nil
}

// renderCart renders the cart lines with subtotals and the order total.
func (m Model) renderCart() string {
	height := m.contentHeight()
	title := fmt.Sprintf("Cart (%d items)", m.snapshot.CartCount)
	return m.renderTitledBox(title, m.renderCartLines(m.width-2, height-2), m.width, height, true)
}

func (m Model) renderCartLines(width, rows int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	items := m.snapshot.Cart

	if len(items) == 0 {
		return bg.Render("Your cart is empty. Press a on a product to add it.", styles.MutedText)
	}

	currency := m.currency()
	available := max(rows-2, 1)
	start := 0
	if m.cartRow >= available {
		start = m.cartRow - available + 1
	}
	end := min(start+available, len(items))

	lines := make([]string, 0, end-start+2)
	for i := start; i < end; i++ {
		lines = append(lines, m.formatCartLine(items[i], width, currency, i == m.cartRow))
	}
	lines = append(lines, bg.Render(strings.Repeat("─", max(width, 0)), styles.FaintText))

	total := catalog.FormatPrice(m.snapshot.CartTotal, currency)
	label := fmt.Sprintf("Total (%d items)", m.snapshot.CartCount)
	gap := max(width-len([]rune(label))-len([]rune(total)), 1)
	lines = append(lines, bg.Render(label, styles.Text.Bold(true))+bg.Spaces(gap)+bg.Render(total, styles.PriceText))
	return strings.Join(lines, "\n")
}

// formatCartLine formats "qty x Title  unit  subtotal".
func (m Model) formatCartLine(item cart.Item, width int, currency string, selected bool) string {
	qty := fmt.Sprintf("%2d x ", item.Quantity)
	unit := catalog.FormatPrice(item.Price, currency)
	subtotal := catalog.FormatPrice(item.Subtotal(), currency)
	right := fmt.Sprintf("%10s  %10s", unit, subtotal)
	titleWidth := max(width-len(qty)-len([]rune(right))-1, 6)
	title := padRight(truncate(item.Title, titleWidth), titleWidth)

	if selected {
		return m.theme.Styles().Selected.Width(width).Render(qty + title + " " + right)
	}
	styles := m.theme.Styles()
	return lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg)).Width(width).Render(
		styles.AccentText.Render(qty) + styles.Text.Render(title) + " " + styles.PriceText.Render(right))
}
