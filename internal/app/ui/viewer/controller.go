//go:generate mockgen -source=controller.go -destination=controller_mock.go -package=viewer
package viewer

import (
	"fmt"

	"artspace/internal/app/gesture"
	"artspace/internal/app/navigation"
	"artspace/internal/config/logger"
)

// Controller turns recognized input into navigation and clipboard actions
type Controller interface {
	// Step moves the navigator in the given direction and reports whether it moved
	Step(dir gesture.Direction, source string) bool
	// Copy puts the current artwork's citation on the clipboard and returns it
	Copy() (string, error)
}

// controller implements the Controller interface
type controller struct {
	navigator navigation.Navigator
	clipboard Clipboard
	log       logger.Logger
}

// NewController creates a new controller for the given navigator
func NewController(navigator navigation.Navigator, clipboard Clipboard, log logger.Logger) Controller {
	return &controller{
		navigator: navigator,
		clipboard: clipboard,
		log:       log.WithComponent("GALLERY"),
	}
}

func (c *controller) Step(dir gesture.Direction, source string) bool {
	switch dir {
	case gesture.Forward:
		c.navigator.Next()
	case gesture.Backward:
		c.navigator.Previous()
	default:
		return false
	}

	c.log.Debug().Msgf("%s, currentIndex: %d", source, c.navigator.Index())

	return true
}

func (c *controller) Copy() (string, error) {
	citation := c.navigator.Current().Citation()

	if err := c.clipboard.WriteAll(citation); err != nil {
		return "", fmt.Errorf("copy citation: %w", err)
	}

	c.log.Info().Msgf("Copied citation: %s", citation)

	return citation, nil
}
