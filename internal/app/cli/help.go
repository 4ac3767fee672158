package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"artspace/internal/config"
)

type usageLine struct {
	command string
	about   string
}

var (
	usageLines = []usageLine{
		{command: "artspace", about: "Open the gallery"},
		{command: "artspace list", about: "Print the collection"},
		{command: "artspace init", about: "Generate artspace.yaml template"},
		{command: "artspace version", about: "Show version"},
		{command: "artspace help", about: "Show help"},
	}

	exampleLines = []usageLine{
		{command: "artspace init --dry-run", about: "Preview the config template"},
		{command: "ARTSPACE_UI_ANIMATE=false artspace", about: "Browse without the slide animation"},
		{command: "artspace ls", about: "List every artwork with its citation"},
	}

	controlLines = []usageLine{
		{command: "← / h, → / l", about: "Previous / next artwork"},
		{command: "click a button", about: "Step once; hold it to read its tooltip"},
		{command: "drag the artwork", about: "Swipe left for next, right for previous"},
		{command: "y", about: "Copy the citation"},
		{command: "?", about: "Toggle the key help"},
	}
)

// renderHelp renders the usage screen
func renderHelp() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		renderLines(usageLines, commandName),
		sectionHeader.Render("Controls:"),
		renderLines(controlLines, commandName),
		sectionHeader.Render("Examples:"),
		renderLines(exampleLines, exampleCode),
		hintText.Render(fmt.Sprintf("Settings are read from %s and %s_* environment variables", config.FileName, config.EnvPrefix)),
	) + "\n"
}

// renderVersion renders the version block
func renderVersion() string {
	return RenderTitle() + "\n"
}

func renderLines(lines []usageLine, style lipgloss.Style) string {
	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l.command))
	}

	rendered := make([]string, 0, len(lines))
	for _, l := range lines {
		pad := width - lipgloss.Width(l.command) + 4
		rendered = append(rendered, bodyMedium.Render("  "+style.Render(l.command)+fmt.Sprintf("%*s", pad, "")+l.about))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
