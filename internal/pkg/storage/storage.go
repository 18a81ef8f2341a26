package storage

import (
	"context"
	"io"
	"time"
)

// FileStorage abstracts where leave attachments end up. The core only ever
// holds the opaque path/URL it gets back.
type FileStorage interface {
	// Upload uploads a file and returns the file path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// GetURL generates a public URL for a stored file
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
