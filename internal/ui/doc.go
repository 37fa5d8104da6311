// Package ui implements the storefront terminal UI with Bubble Tea.
//
// # Architecture
//
// Model follows the Elm architecture: Update handles messages and returns
// commands, View renders a string. All shop state lives in a
// storefront.Session; the model keeps a Snapshot plus the filtered product
// list and re-reads both after every mutation, so what is drawn is always
// derived from the session and never stored twice.
//
// # Startup
//
// Init schedules two commands: one runs Session.Start (products, then
// categories, then the featured pick) in the command goroutine, the other
// ticks every LoadingTick so the header spinner and the loading indicator
// can follow the session while the fetch is in flight. The load finishing
// produces a loadedMsg.
//
// # Views
//
//   - Catalog: category bar, product list with the featured product on top,
//     optional detail pane (stars, reviews, decorative discount, description)
//   - Cart: lines with quantity, unit price and subtotal, plus the total
//
// Checkout opens a confirmation dialog; confirming calls Session.Checkout and
// shows the receipt message. Checking out an empty cart only shows a notice.
//
// # Files
//
//   - app.go: Model, Update/View dispatch, messages and commands
//   - catalog_view.go / cart_view.go: per-view key handling and rendering
//   - header.go: status bar, advisory banner, command bar
//   - modal.go: checkout and receipt dialogs
//   - help.go: help overlay built from the key map
//   - keys.go: key bindings
//   - theme.go, style_helpers.go: palettes and background-safe rendering
//   - stars.go, discount.go: rating and discount presentation helpers
//
// # Themes
//
// Boutique (default), Nightfox and Mono. T cycles themes and the choice is
// saved to the preferences file along with the detail pane toggle.
package ui
