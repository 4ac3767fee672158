package components

import "time"

// Animation constants
const (
	// SlideFPS is the frame rate of the artwork slide animation
	SlideFPS = 30

	// SlideTickInterval is the delay between slide animation frames
	SlideTickInterval = time.Second / SlideFPS

	// SlideDistance is how many columns a new artwork travels when it slides in
	SlideDistance = 12
)

// Stats polling constants
const (
	StatsPollingInterval = 2 * time.Second
	StatsTimeout         = 500 * time.Millisecond
)

// Header layout constants
const (
	HeaderSeparatorMinWidth = 4
	HeaderFixedChars        = 10
)

// Footer layout constants
const (
	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5
)

// Gallery layout constants
const (
	ButtonWidth         = 14
	ButtonGap           = 4
	TooltipHeight       = 3
	DescriptionMaxWidth = 64
	MinContentWidth     = 20
	DefaultWidth        = 80
)
