package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"artspace/internal/app/errors"
)

func Test_Artwork_Byline(t *testing.T) {
	art := Artwork{Title: "Joyful White Owl", Author: "Ethan Park", Year: 2024}

	assert.Equal(t, "by Ethan Park 2024", art.Byline())
	assert.Equal(t, "Joyful White Owl by Ethan Park (2024)", art.Citation())
}

func Test_NewCollection(t *testing.T) {
	tests := []struct {
		name  string
		items []Artwork
		error error
		len   int
	}{
		{name: "empty list", items: nil, error: errors.ErrEmptyCollection},
		{name: "missing image ref", items: []Artwork{{Title: "x"}}, error: errors.ErrInvalidArtwork},
		{name: "missing title", items: []Artwork{{ImageRef: "image1"}}, error: errors.ErrInvalidArtwork},
		{name: "single artwork", items: []Artwork{{ImageRef: "image1", Title: "x"}}, len: 1},
		{name: "several artworks", items: []Artwork{{ImageRef: "a", Title: "a"}, {ImageRef: "b", Title: "b"}}, len: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collection, err := NewCollection(tt.items)

			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.len, collection.Len())
		})
	}
}

func Test_NewCollection_CopiesInput(t *testing.T) {
	items := []Artwork{{ImageRef: "image1", Title: "original"}}

	collection, err := NewCollection(items)
	assert.NoError(t, err)

	items[0].Title = "mutated"
	assert.Equal(t, "original", collection.At(0).Title)

	all := collection.All()
	all[0].Title = "mutated again"
	assert.Equal(t, "original", collection.At(0).Title)
}

func Test_DefaultCatalog(t *testing.T) {
	collection := DefaultCatalog()

	assert.Equal(t, 10, collection.Len())
	assert.Equal(t, "image1", collection.At(0).ImageRef)
	assert.Equal(t, "Gray Cat's Quiet Moment", collection.At(0).Title)
	assert.Equal(t, "Sophie Lin", collection.At(0).Author)
	assert.Equal(t, 2021, collection.At(0).Year)
	assert.Equal(t, "image10", collection.At(9).ImageRef)
	assert.Equal(t, "Wolf on Rocky Terrain", collection.At(9).Title)

	seen := make(map[string]bool)
	for _, art := range collection.All() {
		assert.False(t, seen[art.ImageRef], "duplicate image ref %s", art.ImageRef)
		seen[art.ImageRef] = true
	}
}
