package components

import "github.com/charmbracelet/lipgloss"

// Layout styles
var (
	// HeaderStyle for the top line
	HeaderStyle = lipgloss.NewStyle()

	// FooterStyle for the bottom block
	FooterStyle = lipgloss.NewStyle()

	// FooterHelpStyle for the help line inside the footer
	FooterHelpStyle = lipgloss.NewStyle().
			MarginTop(0)

	// SeparatorStyle for horizontal rules
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	// ContentStyle for the main content area
	ContentStyle = lipgloss.NewStyle()

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder).
			Padding(0, 1)
)

// Gallery styles
var (
	// FrameStyle for the border drawn around the artwork
	FrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FrameColor).
			Padding(0, 2)

	// TitleStyle for artwork titles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgAccent)

	// BylineStyle for the author and year line
	BylineStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(FgMuted)

	// DescriptionStyle for artwork descriptions
	DescriptionStyle = lipgloss.NewStyle().
				Foreground(DescriptionColor)

	// ButtonStyle for idle buttons
	ButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FgPrimary).
			Foreground(FgPrimary).
			Align(lipgloss.Center).
			Width(ButtonWidth - 2)

	// ButtonPressedStyle for buttons held down
	ButtonPressedStyle = ButtonStyle.
				BorderForeground(FgAccent).
				Foreground(FgAccent).
				Background(BgSelection)

	// TooltipStyle for the bubble shown over a long-pressed button
	TooltipStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FgBorder).
			Background(BgTooltip).
			Padding(0, 1)

	// PositionStyle for the "3/10" counter in the header
	PositionStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	// StatsStyle for process stats in the footer
	StatsStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	// NoticeStyle for transient success messages
	NoticeStyle = lipgloss.NewStyle().
			Foreground(FgSuccess)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(FgError)
)
