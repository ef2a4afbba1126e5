// Package datauri converts picture bytes to and from base64 data URLs
// (data:image/png;base64,...).
package datauri

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const base64Marker = ";base64"

// Encode sniffs the content type of data and returns it with its data URL.
func Encode(data []byte) (string, string) {
	mime := mimetype.Detect(data)
	contentType := mime.String()
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return "data:" + contentType + base64Marker + "," + base64.StdEncoding.EncodeToString(data), contentType
}

// Decode splits a data URL into its media type and payload. Only base64
// encoded URLs are accepted.
func Decode(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, fmt.Errorf("invalid data URI format")
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, "data:"), ",", 2)
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("invalid data URI format")
	}
	if !strings.HasSuffix(parts[0], base64Marker) {
		return "", nil, fmt.Errorf("data URI is not base64 encoded")
	}

	payload, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode base64 data: %w", err)
	}

	return strings.TrimSuffix(parts[0], base64Marker), payload, nil
}

// IsImage reports whether uri is a well-formed data URL carrying an image.
func IsImage(uri string) bool {
	mediaType, _, err := Decode(uri)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "image/")
}
