package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the storefront.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Reload     key.Binding
	Escape     key.Binding
	Tab        key.Binding

	// View switching
	ViewCatalog key.Binding
	ViewCart    key.Binding

	// Catalog
	Search         key.Binding
	NextCategory   key.Binding
	PrevCategory   key.Binding
	AddToCart      key.Binding
	ToggleDetail   key.Binding
	DismissNotice  key.Binding
	JumpToFeatured key.Binding

	// Cart
	Increment key.Binding
	Decrement key.Binding
	Remove    key.Binding
	ClearCart key.Binding
	Checkout  key.Binding

	// Navigation
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding

	// Input and dialogs
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload catalog"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back / clear search"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Switch catalog/cart"),
		),

		ViewCatalog: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Catalog"),
		),
		ViewCart: key.NewBinding(
			key.WithKeys("2", "c"),
			key.WithHelp("2/c", "Cart"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search products"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("]", "l", "right"),
			key.WithHelp("]", "Next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("[", "h", "left"),
			key.WithHelp("[", "Previous category"),
		),
		AddToCart: key.NewBinding(
			key.WithKeys("a", "enter"),
			key.WithHelp("a/enter", "Add to cart"),
		),
		ToggleDetail: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Toggle details"),
		),
		DismissNotice: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Dismiss advisory"),
		),
		JumpToFeatured: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Jump to featured"),
		),

		Increment: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Increase quantity"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Decrease quantity"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete", "backspace"),
			key.WithHelp("x", "Remove line"),
		),
		ClearCart: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Clear cart"),
		),
		Checkout: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter/o", "Checkout"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("ctrl+u", "Scroll details up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("ctrl+d", "Scroll details down"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter", "y"),
			key.WithHelp("enter/y", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "n"),
			key.WithHelp("esc/n", "Cancel"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings grouped for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ViewCatalog, k.ViewCart, k.Up, k.Down, k.Top, k.Bottom},
		{k.Search, k.PrevCategory, k.NextCategory, k.AddToCart, k.ToggleDetail, k.ScrollDown, k.ScrollUp, k.JumpToFeatured, k.DismissNotice},
		{k.Increment, k.Decrement, k.Remove, k.ClearCart, k.Checkout},
		{k.Reload, k.CycleTheme, k.Help, k.Quit},
	}
}
