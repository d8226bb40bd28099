package storage

import "context"

// BlobStore persists opaque image blobs and returns a public URL per
// upload. Implementations must not be assumed durable or transactional;
// callers upload before persisting any row that references the URL.
type BlobStore interface {
	Upload(ctx context.Context, pathHint string, mimeType string, data []byte) (string, error)
}
