package cli

import (
	"github.com/charmbracelet/lipgloss"

	"artspace/internal/config"
)

// Headline - High-emphasis text for section headers
var (
	headlineLarge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E8A87C")).MarginTop(1)
)

// Title - Medium-emphasis text for titles and subtitles
var (
	titleMedium = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#85DCB0"))
)

// Body - Main content text
var (
	bodyLarge  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	bodyMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
)

// Label - Small text for labels, captions, and supplementary content
var (
	labelLarge = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E")).Italic(true).MarginTop(1)
)

var (
	sectionHeader = headlineLarge.MarginBottom(1)
	hintText      = labelLarge
	errorText     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E27D60"))

	commandName = titleMedium
	exampleCode = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C38D9E"))

	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E8A87C"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
)

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)
	description := bodyLarge.Render(config.AppDescription)

	return lipgloss.JoinVertical(lipgloss.Left, title, description)
}

// RenderError renders an error line for the terminal
func RenderError(err error) string {
	return errorText.Render("Error:") + " " + bodyLarge.Render(err.Error())
}
