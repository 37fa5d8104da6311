package ui

import (
	"math"
	"strings"
)

// Star markers used by Stars.
const (
	StarFull  = "★"
	StarHalf  = "½"
	StarEmpty = "☆"
)

// MaxStars is the fixed length of a star rating.
const MaxStars = 5

// StarCounts splits a 0-5 rating into full, half and empty markers. The
// rating is clamped to [0, 5]; a half marker appears iff the fractional part
// is at least 0.5. The three counts always sum to MaxStars.
func StarCounts(rate float64) (full, half, empty int) {
	if math.IsNaN(rate) || rate < 0 {
		rate = 0
	}
	if rate > MaxStars {
		rate = MaxStars
	}
	full = int(math.Floor(rate))
	if rate-float64(full) >= 0.5 {
		half = 1
	}
	empty = MaxStars - full - half
	return full, half, empty
}

// Stars renders a rating as five star markers.
func Stars(rate float64) string {
	full, half, empty := StarCounts(rate)
	return strings.Repeat(StarFull, full) + strings.Repeat(StarHalf, half) + strings.Repeat(StarEmpty, empty)
}
