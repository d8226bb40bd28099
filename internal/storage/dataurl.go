package storage

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// IsDataURL reports whether s is an inline data: URL. The UI submits
// canvas signatures and photo previews in this form.
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, "data:")
}

// DecodeDataURL parses a base64 data URL into raw bytes and a mime type.
func DecodeDataURL(s string) ([]byte, string, error) {
	if !IsDataURL(s) {
		return nil, "", fmt.Errorf("not a data URL")
	}

	rest := strings.TrimPrefix(s, "data:")
	sep := strings.Index(rest, ",")
	if sep < 0 {
		return nil, "", fmt.Errorf("malformed data URL")
	}

	meta := rest[:sep]
	payload := rest[sep+1:]

	if !strings.HasSuffix(meta, ";base64") {
		return nil, "", fmt.Errorf("unsupported data URL encoding")
	}
	mimeType := strings.TrimSuffix(meta, ";base64")
	if mimeType == "" {
		mimeType = "text/plain"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 payload: %w", err)
	}
	return data, mimeType, nil
}
