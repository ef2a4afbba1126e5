package datauri

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestEncode_PNG(t *testing.T) {
	uri, contentType := Encode(pngHeader)

	assert.Equal(t, "image/png", contentType)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	uri, _ := Encode(pngHeader)

	mediaType, payload, err := Decode(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mediaType)
	assert.Equal(t, pngHeader, payload)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{"no scheme", "image/png;base64,AAAA"},
		{"no comma", "data:image/png;base64"},
		{"not base64", "data:text/plain,hello"},
		{"bad payload", "data:image/png;base64,***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(tt.uri)
			assert.Error(t, err)
		})
	}
}

func TestIsImage(t *testing.T) {
	pngURI, _ := Encode(pngHeader)
	textURI, _ := Encode([]byte("just some text"))

	assert.True(t, IsImage(pngURI))
	assert.False(t, IsImage(textURI))
	assert.False(t, IsImage(""))
	assert.False(t, IsImage("not a data url"))
}
