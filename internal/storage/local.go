package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalBlobStore writes blobs to a directory served statically under
// baseURL (the /uploads route).
type LocalBlobStore struct {
	basePath string
	baseURL  string
}

func NewLocalBlobStore(basePath, baseURL string) (*LocalBlobStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalBlobStore{basePath: basePath, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

func (s *LocalBlobStore) Upload(ctx context.Context, pathHint string, mimeType string, data []byte) (string, error) {
	filename := fmt.Sprintf("%s_%d%s", sanitizeHint(pathHint), time.Now().UnixNano(), mimeTypeToExt(mimeType))
	filePath := filepath.Join(s.basePath, filename)

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	return s.baseURL + "/" + filename, nil
}

// sanitizeHint keeps the hint usable as a flat filename prefix.
func sanitizeHint(hint string) string {
	hint = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, hint)
	if hint == "" {
		return "blob"
	}
	return hint
}

func mimeTypeToExt(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
