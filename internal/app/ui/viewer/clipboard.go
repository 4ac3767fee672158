//go:generate mockgen -source=clipboard.go -destination=clipboard_mock.go -package=viewer
package viewer

import (
	"github.com/atotto/clipboard"

	"artspace/internal/app/errors"
)

// Clipboard writes text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

// NewClipboard creates a Clipboard backed by the platform clipboard utilities
func NewClipboard() Clipboard {
	return &systemClipboard{}
}

func (c *systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.ErrClipboardUnavailable
	}

	return clipboard.WriteAll(text)
}
