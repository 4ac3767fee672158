package gallery

var catalog = []Artwork{
	{
		ImageRef:    "image1",
		Title:       "Gray Cat's Quiet Moment",
		Author:      "Sophie Lin",
		Year:        2021,
		Description: "A gray cat with vivid green eyes, captured in a serene moment while grooming its paw.",
	},
	{
		ImageRef:    "image2",
		Title:       "Eagle's Piercing Stare",
		Author:      "Mark Thompson",
		Year:        2020,
		Description: "A bald eagle with a piercing gaze, its white head contrasting sharply against a dark background.",
	},
	{
		ImageRef:    "image3",
		Title:       "Leopard's Blue-Eyed Focus",
		Author:      "Clara Evans",
		Year:        2022,
		Description: "A leopard with mesmerizing blue eyes, its spotted coat highlighted in a close-up shot.",
	},
	{
		ImageRef:    "image4",
		Title:       "Tiger's Morning Stretch",
		Author:      "Henry Wu",
		Year:        2023,
		Description: "A tiger stretching gracefully in a grassy field, surrounded by trees and natural light.",
	},
	{
		ImageRef:    "image5",
		Title:       "Pug's Curious Glance",
		Author:      "Rachel Kim",
		Year:        2019,
		Description: "A black pug in a black-and-white portrait, looking up with a curious and expressive gaze.",
	},
	{
		ImageRef:    "image6",
		Title:       "Joyful White Owl",
		Author:      "Ethan Park",
		Year:        2024,
		Description: "A white owl with its beak open in what looks like a joyful laugh, set against a soft background.",
	},
	{
		ImageRef:    "image7",
		Title:       "Llamas in the Meadow",
		Author:      "Laura Bennett",
		Year:        2018,
		Description: "Two fluffy llamas standing side by side in a meadow, with trees and a wooden fence in the background.",
	},
	{
		ImageRef:    "image8",
		Title:       "Giraffe Over the Savanna",
		Author:      "Thomas Reed",
		Year:        2017,
		Description: "A giraffe standing tall in a dry savanna, with distant mountains and sparse trees in the background.",
	},
	{
		ImageRef:    "image9",
		Title:       "Stylish Bunny in Yellow",
		Author:      "Mia Johnson",
		Year:        2025,
		Description: "A white bunny wearing stylish yellow sunglasses, posing against a vibrant yellow background.",
	},
	{
		ImageRef:    "image10",
		Title:       "Wolf on Rocky Terrain",
		Author:      "Daniel Foster",
		Year:        2016,
		Description: "A gray wolf standing proudly on rocky terrain, surrounded by a rugged natural landscape.",
	},
}

// DefaultCatalog returns the built-in collection shown by the viewer
func DefaultCatalog() Collection {
	collection, err := NewCollection(catalog)
	if err != nil {
		panic(err)
	}

	return collection
}
