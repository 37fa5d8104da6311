package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/five82/storefront/internal/catalog"
)

// Modal is the interface for modal dialogs.
// Update returns the updated modal, a command, and whether the modal should close.
type Modal interface {
	Update(msg tea.KeyMsg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// checkoutModal asks for confirmation before the order is placed.
type checkoutModal struct {
	count    int
	total    decimal.Decimal
	currency string
}

func newCheckoutModal(count int, total decimal.Decimal, currency string) checkoutModal {
	return checkoutModal{count: count, total: total, currency: currency}
}

func (c checkoutModal) Update(msg tea.KeyMsg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Confirm):
		return c, func() tea.Msg { return checkoutConfirmedMsg{} }, true
	case key.Matches(msg, keys.Cancel):
		return c, nil, true
	}
	return c, nil, false
}

func (c checkoutModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Place order?"))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d items, total ", c.count)))
	b.WriteString(styles.PriceText.Render(catalog.FormatPrice(c.total, c.currency)))
	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Render("enter/y"))
	b.WriteString(styles.MutedText.Render(" confirm   "))
	b.WriteString(styles.AccentText.Render("esc/n"))
	b.WriteString(styles.MutedText.Render(" cancel"))
	return placeDialog(theme, width, height, b.String())
}

// receiptModal shows the order confirmation until any key is pressed.
type receiptModal struct {
	message string
	orderID string
}

func (r receiptModal) Update(tea.KeyMsg, keyMap) (Modal, tea.Cmd, bool) {
	return r, nil, true
}

func (r receiptModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder
	b.WriteString(styles.SuccessText.Render(r.message))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("Order " + r.orderID))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Press any key to continue"))
	return placeDialog(theme, width, height, b.String())
}

// placeDialog centers content in a rounded border on the screen.
func placeDialog(theme Theme, width, height int, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 3).
		Render(content)
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
