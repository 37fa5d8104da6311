// Package app is the composition root of the storefront TUI.
//
// Run wires the pieces together in order:
//
//  1. Load an optional .env file, then config.toml with STOREFRONT_ overrides
//  2. Open the JSON log file (the terminal belongs to the UI)
//  3. Read UI preferences; unreadable preferences fall back to defaults
//  4. Build the catalog API client and the storefront.Session on top of it
//  5. Start the Bubble Tea program, which runs the startup load
//     (products, categories, featured pick) in a command goroutine
//
// Only configuration and log file problems are fatal. Catalog API failures
// are absorbed by the Session, which switches to the bundled catalog.
//
// A non-zero seed makes the featured pick and the decorative discounts
// repeatable, which is useful for screenshots and manual testing.
package app
