package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func Test_RenderButton(t *testing.T) {
	idle := RenderButton("Next", false)
	pressed := RenderButton("Next", true)

	assert.Contains(t, idle, "Next")
	assert.Contains(t, pressed, "Next")
	assert.Equal(t, ButtonWidth, lipgloss.Width(idle))
	assert.Equal(t, lipgloss.Width(idle), lipgloss.Width(pressed))
	assert.Equal(t, 3, lipgloss.Height(idle))
}

func Test_RenderTooltip(t *testing.T) {
	shown := RenderTooltip("Show the next photo", 30)
	hidden := RenderTooltip("", 30)

	assert.Contains(t, shown, "Show the next photo")
	assert.Equal(t, TooltipHeight, lipgloss.Height(shown))
	assert.Equal(t, TooltipHeight, lipgloss.Height(hidden))
	assert.NotContains(t, hidden, "Show")
}

func Test_RenderFrame(t *testing.T) {
	framed := RenderFrame("/\\_/\\")

	assert.Contains(t, framed, "/\\_/\\")
	assert.Equal(t, 3, lipgloss.Height(framed))
}

func Test_Tip(t *testing.T) {
	assert.Equal(t, Tips[0], Tip(0))
	assert.Equal(t, Tips[1], Tip(len(Tips)+1))
	assert.Equal(t, Tips[len(Tips)-1], Tip(-1))
}
