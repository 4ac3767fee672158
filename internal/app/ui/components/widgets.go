package components

import "github.com/charmbracelet/lipgloss"

// RenderButton renders a bordered button, highlighted while it is held down
func RenderButton(label string, pressed bool) string {
	if pressed {
		return ButtonPressedStyle.Render(label)
	}

	return ButtonStyle.Render(label)
}

// RenderTooltip renders a tooltip bubble; an empty text renders a blank block of the same height
func RenderTooltip(text string, width int) string {
	if text == "" {
		return lipgloss.NewStyle().Width(width).Height(TooltipHeight).Render("")
	}

	return TooltipStyle.Render(text)
}

// RenderFrame draws the artwork frame around art
func RenderFrame(art string) string {
	return FrameStyle.Render(art)
}
