package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"artspace/internal/config"
)

// RenderLine renders a horizontal line of the specified width with separator style
func RenderLine(width int) string {
	if width < 0 {
		width = 0
	}

	return SeparatorStyle.Render(strings.Repeat("─", width))
}

// RenderHeader renders the header with format: ─── <title> ─────── <info> ───
func RenderHeader(width int, title, info string) string {
	titleWidth := lipgloss.Width(title)
	infoWidth := lipgloss.Width(info)

	maxTitleWidth := width - infoWidth - HeaderSeparatorMinWidth - HeaderFixedChars
	if titleWidth > maxTitleWidth && maxTitleWidth > 0 {
		title = Truncate(title, maxTitleWidth)
		titleWidth = lipgloss.Width(title)
	}

	separatorWidth := width - titleWidth - infoWidth - HeaderFixedChars
	if separatorWidth < HeaderSeparatorMinWidth {
		separatorWidth = HeaderSeparatorMinWidth
	}

	leftPrefix := RenderLine(3)
	separator := RenderLine(separatorWidth)
	rightSuffix := RenderLine(3)

	return HeaderStyle.Render(leftPrefix + " " + title + " " + separator + " " + info + " " + rightSuffix)
}

// RenderFooter renders the footer with a version line carrying optional info and the help text
func RenderFooter(width int, info, helpText string) string {
	version := fmt.Sprintf("v%s", config.Version)

	label := version
	if info != "" {
		label = StatsStyle.Render(info) + " " + RenderLine(1) + " " + version
	}

	labelWidth := lipgloss.Width(label)

	separatorWidth := width - labelWidth - FooterFixedChars
	if separatorWidth < FooterSeparatorMinWidth {
		separatorWidth = FooterSeparatorMinWidth
	}

	leftSeparator := RenderLine(separatorWidth)
	rightSuffix := RenderLine(3)
	versionLine := leftSeparator + " " + label + " " + rightSuffix

	help := FooterHelpStyle.Render(HelpStyle.Render(helpText))

	return FooterStyle.Render(lipgloss.JoinVertical(lipgloss.Left, versionLine, help))
}

// RenderContent wraps content with spacing
func RenderContent(content string) string {
	return ContentStyle.Render(content)
}

// Center pads every line of block so it sits in the middle of width and returns the left offset used
func Center(block string, width int) (string, int) {
	blockWidth := lipgloss.Width(block)

	offset := (width - blockWidth) / 2
	if offset <= 0 {
		return block, 0
	}

	return Shift(block, offset), offset
}

// Shift moves every line of a plain text block by offset columns; negative offsets drop leading columns
func Shift(block string, offset int) string {
	if offset == 0 || block == "" {
		return block
	}

	lines := strings.Split(block, "\n")

	for i, line := range lines {
		if offset > 0 {
			lines[i] = strings.Repeat(" ", offset) + line
			continue
		}

		runes := []rune(line)
		drop := -offset

		if drop > len(runes) {
			drop = len(runes)
		}

		lines[i] = string(runes[drop:])
	}

	return strings.Join(lines, "\n")
}

// Truncate shortens s to maxWidth display columns, ending with an ellipsis when cut
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	if maxWidth == 1 {
		return "…"
	}

	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		truncated := string(runes[:i]) + "…"
		if lipgloss.Width(truncated) <= maxWidth {
			return truncated
		}
	}

	return "…"
}

// PadRight pads s with spaces up to width display columns
func PadRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}

	return s + strings.Repeat(" ", width-w)
}
