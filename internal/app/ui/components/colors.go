package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI with semantic naming
const (
	// Foreground colors - text and elements
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - primary/focus color
	FgAccent  = lipgloss.Color("#F4A259") // Amber - artwork titles
	FgMuted   = lipgloss.Color("7")       // Light gray - muted elements
	FgBorder  = lipgloss.Color("8")       // Gray - borders and help text
	FgError   = lipgloss.Color("9")       // Red - error notices
	FgSuccess = lipgloss.Color("10")      // Green - success notices

	// Background colors
	BgSelection = lipgloss.Color("235") // Dark gray - pressed button background
	BgTooltip   = lipgloss.Color("237") // Slightly lighter gray - tooltip bubble
)

// FrameColor is the adaptive color for the artwork frame
var FrameColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}

// DescriptionColor is the adaptive color for artwork descriptions
var DescriptionColor = lipgloss.AdaptiveColor{Light: "#4A4A4A", Dark: "#B2B2B2"}
