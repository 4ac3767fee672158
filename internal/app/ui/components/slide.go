package components

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	// Spring physics parameters
	slideAngularFrequency = 9.0 // Spring stiffness (higher = faster response)
	slideDampingRatio     = 0.8 // Slightly underdamped so the art settles with a small overshoot

	// The animation stops once the spring is this close to rest
	slideRestThreshold = 0.25
)

// Slide eases a horizontal offset back to zero using spring physics
type Slide struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	active   bool
}

// NewSlide creates a new slide animator at rest
func NewSlide() *Slide {
	return &Slide{
		spring: harmonica.NewSpring(harmonica.FPS(SlideFPS), slideAngularFrequency, slideDampingRatio),
	}
}

// Start begins the animation from the given column offset
func (s *Slide) Start(from float64) {
	s.position = from
	s.velocity = 0
	s.active = from != 0
}

// Stop ends the animation at rest
func (s *Slide) Stop() {
	s.position = 0
	s.velocity = 0
	s.active = false
}

// Update advances the animation one frame and reports whether it is still moving
func (s *Slide) Update() bool {
	if !s.active {
		return false
	}

	s.position, s.velocity = s.spring.Update(s.position, s.velocity, 0)

	if math.Abs(s.position) < slideRestThreshold && math.Abs(s.velocity) < slideRestThreshold {
		s.Stop()
		return false
	}

	return true
}

// Offset returns the current offset rounded to whole columns
func (s *Slide) Offset() int {
	return int(math.Round(s.position))
}

// IsActive returns whether the animation is currently running
func (s *Slide) IsActive() bool {
	return s.active
}
