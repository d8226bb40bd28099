package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDataURL(t *testing.T) {
	assert.True(t, IsDataURL("data:image/png;base64,dGVzdA=="))
	assert.False(t, IsDataURL("https://cdn.example.com/photo.jpg"))
	assert.False(t, IsDataURL(""))
}

func TestDecodeDataURL(t *testing.T) {
	data, mimeType, err := DecodeDataURL("data:image/png;base64,dGVzdA==")
	require.NoError(t, err)
	assert.Equal(t, []byte("test"), data)
	assert.Equal(t, "image/png", mimeType)
}

func TestDecodeDataURLErrors(t *testing.T) {
	cases := map[string]string{
		"not a data url":     "https://example.com/photo.jpg",
		"missing comma":      "data:image/png;base64",
		"not base64 encoded": "data:image/png,rawbytes",
		"invalid base64":     "data:image/png;base64,!!!",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodeDataURL(input)
			assert.Error(t, err)
		})
	}
}
