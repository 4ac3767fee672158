package gallery

import (
	"fmt"

	"artspace/internal/app/errors"
)

// Artwork is one displayable item: an opaque image reference plus its metadata
type Artwork struct {
	ImageRef    string
	Title       string
	Author      string
	Year        int
	Description string
}

// Byline returns the author line shown under the title
func (a Artwork) Byline() string {
	return fmt.Sprintf("by %s %d", a.Author, a.Year)
}

// Citation returns a single-line reference suitable for copying
func (a Artwork) Citation() string {
	return fmt.Sprintf("%s by %s (%d)", a.Title, a.Author, a.Year)
}

// Collection is a fixed, ordered, non-empty sequence of artworks
type Collection struct {
	items []Artwork
}

// NewCollection copies items into a collection, rejecting empty lists and incomplete entries
func NewCollection(items []Artwork) (Collection, error) {
	if len(items) == 0 {
		return Collection{}, errors.ErrEmptyCollection
	}

	copied := make([]Artwork, len(items))

	for i, item := range items {
		if item.ImageRef == "" || item.Title == "" {
			return Collection{}, fmt.Errorf("%w: entry %d", errors.ErrInvalidArtwork, i)
		}

		copied[i] = item
	}

	return Collection{items: copied}, nil
}

// Len returns the number of artworks
func (c Collection) Len() int {
	return len(c.items)
}

// At returns the artwork at position i
func (c Collection) At(i int) Artwork {
	return c.items[i]
}

// All returns a copy of every artwork in order
func (c Collection) All() []Artwork {
	all := make([]Artwork, len(c.items))
	copy(all, c.items)

	return all
}
