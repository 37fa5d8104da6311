package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the detail pane is hidden.
	LayoutCompactWidth = 90

	// LayoutWideWidth gives the listing a smaller share of the screen.
	LayoutWideWidth = 150
)

// Chrome rows outside the content area: header, category bar, command bar.
const chromeRows = 3

// Timing constants.
const (
	// LoadingTick is how often the model re-reads the session while a load
	// is in flight.
	LoadingTick = 120 * time.Millisecond

	// NoticeTTL is how long a transient notice stays in the command bar.
	NoticeTTL = 4 * time.Second
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
