//go:generate mockgen -source=navigator.go -destination=navigator_mock.go -package=navigation
package navigation

import "artspace/internal/app/gallery"

// Navigator provides wraparound movement through a fixed collection
type Navigator interface {
	// Next moves one artwork forward, wrapping from the last to the first
	Next()
	// Previous moves one artwork backward, wrapping from the first to the last
	Previous()
	// Current returns the artwork at the current index
	Current() gallery.Artwork
	// Index returns the current position
	Index() int
	// Len returns the number of artworks
	Len() int
}

// navigator keeps 0 <= index < collection.Len() at all times
type navigator struct {
	collection gallery.Collection
	index      int
}

// NewNavigator creates a new navigator starting at the first artwork
func NewNavigator(collection gallery.Collection) Navigator {
	return &navigator{
		collection: collection,
		index:      0,
	}
}

func (n *navigator) Next() {
	n.index = (n.index + 1) % n.collection.Len()
}

func (n *navigator) Previous() {
	size := n.collection.Len()
	n.index = (n.index - 1 + size) % size
}

func (n *navigator) Current() gallery.Artwork {
	return n.collection.At(n.index)
}

func (n *navigator) Index() int {
	return n.index
}

func (n *navigator) Len() int {
	return n.collection.Len()
}
