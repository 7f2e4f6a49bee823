package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which card badges are dropped.
	LayoutCompactWidth = 70

	// LayoutWideWidth is the minimum width to show the tagline in the header.
	LayoutWideWidth = 110
)

// Card geometry.
const (
	// CardHeight is the number of lines a program card occupies, including
	// its trailing blank line.
	CardHeight = 3

	// ChromeHeight is the number of lines used by the header, filter bar
	// and status line.
	ChromeHeight = 3
)

// Timing constants.
const (
	// FavoriteFlash is how long a freshly toggled favorite stays highlighted.
	FavoriteFlash = 300 * time.Millisecond
)
