package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"artspace/internal/app/gesture"
	"artspace/internal/app/ui/components"
)

// region identifies what a pointer position lands on
type region int

const (
	regionNone region = iota
	regionArtwork
	regionPrevious
	regionNext
)

// rect is a half-open screen rectangle
type rect struct {
	x0, y0, x1, y1 int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

// layout records where the interactive parts of the screen were drawn
type layout struct {
	artwork  rect
	previous rect
	next     rect
}

// View renders the UI
func (m Model) View() string {
	if !m.state.ready {
		return "Initializing…"
	}

	view, _ := m.render()

	return view
}

// hitTest maps a pointer position to the region drawn there
func (m Model) hitTest(x, y int) region {
	_, l := m.render()

	switch {
	case l.previous.contains(x, y):
		return regionPrevious
	case l.next.contains(x, y):
		return regionNext
	case l.artwork.contains(x, y):
		return regionArtwork
	default:
		return regionNone
	}
}

// render draws the screen top to bottom and records the interactive regions
func (m Model) render() (string, layout) {
	width := m.contentWidth()

	var (
		l        layout
		sections []string
		y        int
	)

	add := func(block string) int {
		top := y
		sections = append(sections, block)
		y += lipgloss.Height(block)

		return top
	}

	add(components.RenderHeader(width, headerTitle, m.renderPosition()))
	add("")

	art := m.renderArtwork(width)
	top := add(art)
	l.artwork = rect{x0: 0, y0: top, x1: width, y1: top + lipgloss.Height(art)}

	add("")
	add(m.renderCaption(width))
	add("")
	add(m.renderDescription(width))
	add("")

	buttons, left := m.renderButtons(width)
	add(m.renderTooltip(left))

	top = add(buttons)
	height := lipgloss.Height(buttons)
	l.previous = rect{x0: left, y0: top, x1: left + components.ButtonWidth, y1: top + height}
	l.next = rect{
		x0: left + components.ButtonWidth + components.ButtonGap,
		y0: top,
		x1: left + 2*components.ButtonWidth + components.ButtonGap,
		y1: top + height,
	}

	add("")
	add(m.renderNotice(width))

	footer := components.RenderFooter(width, m.renderStats(), m.renderHelp())
	if gap := m.ui.height - y - lipgloss.Height(footer); gap > 0 {
		add(strings.Repeat("\n", gap-1))
	}

	add(footer)

	return strings.Join(sections, "\n"), l
}

// renderPosition renders the "current/total" counter
func (m Model) renderPosition() string {
	return components.PositionStyle.Render(fmt.Sprintf("%d/%d", m.navigator.Index()+1, m.navigator.Len()))
}

// renderArtwork renders the framed art, offset by the running slide animation
func (m Model) renderArtwork(width int) string {
	artwork := m.navigator.Current()
	framed := components.RenderFrame(m.provider.Render(artwork.ImageRef))

	centered, left := components.Center(framed, width)

	right := max(width-left-lipgloss.Width(framed), 0)
	offset := min(max(m.ui.slide.Offset(), -left), right)

	return components.Shift(centered, offset)
}

// renderCaption renders the title and byline
func (m Model) renderCaption(width int) string {
	artwork := m.navigator.Current()

	title := components.TitleStyle.Render(components.Truncate(artwork.Title, width))
	byline := components.BylineStyle.Render(components.Truncate(artwork.Byline(), width))

	title, _ = components.Center(title, width)
	byline, _ = components.Center(byline, width)

	return title + "\n" + byline
}

// renderDescription renders the wrapped description
func (m Model) renderDescription(width int) string {
	descWidth := min(width-4, components.DescriptionMaxWidth)
	if descWidth < components.MinContentWidth {
		descWidth = max(width, 1)
	}

	desc := components.DescriptionStyle.
		Width(descWidth).
		Align(lipgloss.Center).
		Render(m.navigator.Current().Description)

	centered, _ := components.Center(desc, width)

	return centered
}

// renderButtons renders the Previous and Next buttons and returns the left edge of the row
func (m Model) renderButtons(width int) (string, int) {
	previous := components.RenderButton(previousLabel, m.ui.previous.State() != gesture.Released)
	next := components.RenderButton(nextLabel, m.ui.next.State() != gesture.Released)

	row := lipgloss.JoinHorizontal(lipgloss.Top, previous, strings.Repeat(" ", components.ButtonGap), next)

	return components.Center(row, width)
}

// renderTooltip renders the tooltip of a long-pressed button above it
func (m Model) renderTooltip(left int) string {
	switch {
	case m.ui.previous.TooltipVisible():
		return components.Shift(components.RenderTooltip(previousTooltip, 0), left)

	case m.ui.next.TooltipVisible():
		tip := components.RenderTooltip(nextTooltip, 0)
		right := left + 2*components.ButtonWidth + components.ButtonGap

		return components.Shift(tip, max(right-lipgloss.Width(tip), 0))
	}

	return components.RenderTooltip("", 1)
}

// renderNotice renders the last action's outcome or a rotating tip
func (m Model) renderNotice(width int) string {
	var line string

	switch {
	case m.state.notice != "" && m.state.failed:
		line = components.ErrorStyle.Render(components.Truncate(m.state.notice, width))
	case m.state.notice != "":
		line = components.NoticeStyle.Render(components.Truncate(m.state.notice, width))
	default:
		line = components.Tip(m.state.tip)
	}

	centered, _ := components.Center(line, width)

	return centered
}

// renderStats renders the viewer's own CPU and memory usage
func (m Model) renderStats() string {
	if !m.cfg.UI.Stats || (m.state.stats.CPU == 0 && m.state.stats.MEM == 0) {
		return ""
	}

	return m.state.stats.String()
}

// renderHelp renders the help text with keybindings
func (m Model) renderHelp() string {
	return m.ui.help.View(m.ui.keys)
}
