package components

import "github.com/charmbracelet/lipgloss"

// Tip styles
var (
	tipKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	tipDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
)

func tipKey(k string) string  { return tipKeyStyle.Render(k) }
func tipDesc(d string) string { return tipDescStyle.Render(d) }

// Tips contains helpful hints displayed in the footer
var Tips = []string{
	tipDesc("Hold a button to see what it does"),
	tipDesc("Drag the artwork sideways to browse"),
	tipDesc("Use ") + tipKey("h/l") + tipDesc(" or arrows to browse"),
	tipDesc("Press ") + tipKey("y") + tipDesc(" to copy the citation"),
	tipDesc("List the whole collection with ") + tipKey("artspace list"),
	tipDesc("Create a config file with ") + tipKey("artspace init"),
}

// Tip returns the tip at position i, wrapping around the list
func Tip(i int) string {
	n := len(Tips)

	return Tips[((i%n)+n)%n]
}
