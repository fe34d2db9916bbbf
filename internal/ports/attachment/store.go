package attachment

import (
	"context"
	"io"
)

// Store keeps uploaded images and hands back an opaque reference
type Store interface {
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
	URL(ref string) string
	// Delete is a no-op for a reference that is already gone
	Delete(ctx context.Context, ref string) error
}

// Upload an image received with a post form
type Upload struct {
	Filename string
	Content  io.Reader
}
