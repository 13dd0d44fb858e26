package blob

import (
	"context"
	"io"
)

// Store is the object-storage contract consumed by the photo flows.
// Delete accepts either a raw object path or a full public URL, since
// records hold download URLs rather than paths.
type Store interface {
	Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) error
	URL(path string) string
	Delete(ctx context.Context, urlOrPath string) error
}
