package viewer

// Button names double as press tracker names
const (
	previousButton = "previous"
	nextButton     = "next"
)

// Button labels and tooltips
const (
	previousLabel   = "< Previous"
	nextLabel       = "Next >"
	previousTooltip = "Show the previous photo"
	nextTooltip     = "Show the next photo"
)

const headerTitle = "art space"
