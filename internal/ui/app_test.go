package ui

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/storefront/internal/catalog"
	"github.com/five82/storefront/internal/prefs"
	"github.com/five82/storefront/internal/storefront"
)

// newTestModel builds a model over an offline session (no fetcher, so the
// fallback dataset is loaded) and runs the startup command synchronously.
func newTestModel(t *testing.T) Model {
	t.Helper()
	session := storefront.New(nil, storefront.Options{Rand: rand.New(rand.NewPCG(3, 4))})
	m := New(Options{
		Context:   context.Background(),
		Session:   session,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
		Rand:      rand.New(rand.NewPCG(5, 6)),
	})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m = next.(Model)
	next, _ = m.Update(startCmd(context.Background(), session)())
	return next.(Model)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, confirming := m.modal.(checkoutModal)
		next, cmd := m.Update(msg)
		m = next.(Model)
		// Only the checkout dialog's command is run; others are timers.
		if confirming && m.modal == nil && cmd != nil {
			next, _ = m.Update(cmd())
			m = next.(Model)
		}
	}
	return m
}

func TestModel_StartupLoadsFallbackAndShowsAdvisory(t *testing.T) {
	m := newTestModel(t)

	if !m.snapshot.Loaded || !m.snapshot.APIUnavailable {
		t.Fatalf("snapshot = loaded %v unavailable %v, want both true", m.snapshot.Loaded, m.snapshot.APIUnavailable)
	}
	if len(m.visible) != len(catalog.FallbackProducts()) {
		t.Fatalf("visible = %d, want %d", len(m.visible), len(catalog.FallbackProducts()))
	}
	if !strings.Contains(m.notice, "unavailable") {
		t.Fatalf("notice = %q, want unavailable notice", m.notice)
	}
	view := m.View()
	if !strings.Contains(view, "Press x to dismiss") {
		t.Fatalf("view does not show the advisory banner")
	}

	m = press(t, m, "x")
	if m.snapshot.ShowAdvisory {
		t.Fatalf("advisory still shown after dismiss")
	}
	if strings.Contains(m.View(), "Press x to dismiss") {
		t.Fatalf("view still shows the advisory after dismiss")
	}
}

func TestModel_CategoryCycleAndSearch(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "]")
	want := m.snapshot.Categories[0]
	if m.snapshot.Category != want {
		t.Fatalf("category = %q, want %q", m.snapshot.Category, want)
	}
	for _, p := range m.visible {
		if p.Category != want {
			t.Fatalf("visible product %d has category %q, want %q", p.ID, p.Category, want)
		}
	}

	m = press(t, m, "[")
	if m.snapshot.Category != catalog.AllCategories {
		t.Fatalf("category = %q, want all", m.snapshot.Category)
	}

	m = press(t, m, "/", "W", "O", "M", "E", "N")
	if !m.searchActive {
		t.Fatalf("search input not active")
	}
	if m.snapshot.Query != "WOMEN" {
		t.Fatalf("query = %q, want WOMEN", m.snapshot.Query)
	}
	if len(m.visible) == 0 || len(m.visible) == len(m.snapshot.Products) {
		t.Fatalf("visible = %d, want a proper subset", len(m.visible))
	}
	for _, p := range m.visible {
		haystack := strings.ToLower(p.Title + " " + p.Description + " " + p.Category)
		if !strings.Contains(haystack, "women") {
			t.Fatalf("visible product %q does not match women", p.Title)
		}
	}

	m = press(t, m, "enter")
	if m.searchActive || m.snapshot.Query != "WOMEN" {
		t.Fatalf("after enter: active %v query %q", m.searchActive, m.snapshot.Query)
	}

	m = press(t, m, "esc")
	if m.snapshot.Query != "" || len(m.visible) != len(m.snapshot.Products) {
		t.Fatalf("esc did not clear search: query %q visible %d", m.snapshot.Query, len(m.visible))
	}
}

func TestModel_SearchEscRestoresPreviousQuery(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "/", "r", "i", "n", "g", "enter")
	m = press(t, m, "/", "x", "esc")
	if m.snapshot.Query != "ring" {
		t.Fatalf("query = %q, want ring", m.snapshot.Query)
	}
}

func TestModel_CartFlowAndCheckout(t *testing.T) {
	m := newTestModel(t)

	first := m.visible[0]
	m = press(t, m, "a", "a", "j", "a")
	if m.snapshot.CartCount != 3 || len(m.snapshot.Cart) != 2 {
		t.Fatalf("cart = %d units in %d lines, want 3 in 2", m.snapshot.CartCount, len(m.snapshot.Cart))
	}
	if m.snapshot.Cart[0].ID != first.ID || m.snapshot.Cart[0].Quantity != 2 {
		t.Fatalf("first line = %+v, want product %d qty 2", m.snapshot.Cart[0], first.ID)
	}

	m = press(t, m, "c")
	if m.currentView != ViewCart {
		t.Fatalf("view = %v, want cart", m.currentView)
	}
	m = press(t, m, "+")
	if m.snapshot.Cart[0].Quantity != 3 {
		t.Fatalf("quantity = %d, want 3", m.snapshot.Cart[0].Quantity)
	}
	m = press(t, m, "-", "-", "-")
	if len(m.snapshot.Cart) != 1 {
		t.Fatalf("lines = %d, want decrement to zero to remove the line", len(m.snapshot.Cart))
	}

	total := catalog.FormatPrice(m.snapshot.CartTotal, "$")
	m = press(t, m, "enter")
	if _, ok := m.modal.(checkoutModal); !ok {
		t.Fatalf("modal = %T, want checkoutModal", m.modal)
	}
	if !strings.Contains(m.View(), total) {
		t.Fatalf("confirmation does not show total %s", total)
	}

	m = press(t, m, "y")
	receipt, ok := m.modal.(receiptModal)
	if !ok {
		t.Fatalf("modal = %T, want receiptModal", m.modal)
	}
	if !strings.Contains(receipt.message, "1 item") || !strings.Contains(receipt.message, total) {
		t.Fatalf("receipt = %q, want count and %s", receipt.message, total)
	}
	if m.snapshot.CartCount != 0 {
		t.Fatalf("cart count = %d after checkout, want 0", m.snapshot.CartCount)
	}

	m = press(t, m, "k")
	if m.modal != nil {
		t.Fatalf("receipt did not close on key press")
	}
}

func TestModel_CheckoutEmptyCartShowsNoDialog(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "c", "enter")
	if m.modal != nil {
		t.Fatalf("modal = %T, want none for an empty cart", m.modal)
	}
	if m.notice != "Your cart is empty" {
		t.Fatalf("notice = %q", m.notice)
	}
}

func TestModel_CheckoutCancel(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "a", "c", "enter", "n")
	if m.modal != nil || m.snapshot.CartCount != 1 {
		t.Fatalf("cancel changed state: modal %T count %d", m.modal, m.snapshot.CartCount)
	}
}

func TestModel_RemoveAndClear(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "a", "j", "a", "j", "a", "c", "x")
	if len(m.snapshot.Cart) != 2 {
		t.Fatalf("lines = %d, want 2 after remove", len(m.snapshot.Cart))
	}
	m = press(t, m, "C")
	if len(m.snapshot.Cart) != 0 {
		t.Fatalf("lines = %d, want 0 after clear", len(m.snapshot.Cart))
	}
}

func TestModel_JumpToFeatured(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "]", "f")
	p, ok := m.selectedProduct()
	if !ok || p.ID != m.snapshot.Featured.ID {
		t.Fatalf("selected = %d, want featured %d", p.ID, m.snapshot.Featured.ID)
	}
	if m.snapshot.Category != catalog.AllCategories {
		t.Fatalf("category = %q, want all", m.snapshot.Category)
	}
}

func TestModel_ThemeCycleSavesPrefs(t *testing.T) {
	m := newTestModel(t)
	start := m.theme.Name
	m = press(t, m, "T")
	if m.theme.Name == start {
		t.Fatalf("theme did not change from %q", start)
	}
	saved, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load returned error: %v", err)
	}
	if saved.Theme != m.theme.Name {
		t.Fatalf("saved theme = %q, want %q", saved.Theme, m.theme.Name)
	}

	m = press(t, m, "d")
	saved, _ = prefs.Load(m.prefsPath)
	if saved.DetailPane {
		t.Fatalf("detail pane preference not saved")
	}
}

func TestModel_HelpOverlay(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "?")
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not rendered")
	}
	m = press(t, m, "q")
	if m.showHelp {
		t.Fatalf("help overlay did not close")
	}
}

func TestModel_OfferStableWhileSelectionUnchanged(t *testing.T) {
	m := newTestModel(t)
	offer := m.offer
	m = press(t, m, "x")
	if m.offer != offer {
		t.Fatalf("offer redrawn without selection change")
	}
	m = press(t, m, "j")
	if m.offerFor != m.visible[1].ID {
		t.Fatalf("offer not drawn for new selection")
	}
}

func TestThemeCycle(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 || names[0] != DefaultThemeName {
		t.Fatalf("ThemeNames() = %v", names)
	}
	for i, name := range names {
		if got := NextTheme(name); got != names[(i+1)%len(names)] {
			t.Fatalf("NextTheme(%q) = %q", name, got)
		}
	}
	if got := NextTheme("unknown"); got != names[0] {
		t.Fatalf("NextTheme(unknown) = %q", got)
	}
	if got := GetTheme("nope").Name; got != DefaultThemeName {
		t.Fatalf("GetTheme(nope) = %q", got)
	}
}

func TestWrapAndTruncate(t *testing.T) {
	lines := wrap("a quick brown fox jumps", 10)
	if strings.Join(lines, "|") != "a quick|brown fox|jumps" {
		t.Fatalf("wrap = %q", lines)
	}
	if got := truncate("Fjallraven Backpack", 10); got != "Fjallra..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := titleCase("men's clothing"); got != "Men's Clothing" {
		t.Fatalf("titleCase = %q", got)
	}
}
