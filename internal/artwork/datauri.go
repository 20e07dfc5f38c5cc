package artwork

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// EncodeDataURI wraps raw image bytes in a base64 data URI.
func EncodeDataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI decodes a base64 image data URI into raw bytes plus the
// declared MIME type.
func DecodeDataURI(uri string) ([]byte, string, error) {
	if !strings.HasPrefix(uri, "data:") {
		return nil, "", fmt.Errorf("artwork: not a data URI")
	}
	meta, payload, ok := strings.Cut(uri[len("data:"):], ",")
	if !ok {
		return nil, "", fmt.Errorf("artwork: malformed data URI")
	}
	mime, _, _ := strings.Cut(meta, ";")
	if !strings.Contains(meta, "base64") {
		return nil, "", fmt.Errorf("artwork: data URI is not base64")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("artwork: data URI payload: %w", err)
	}
	return data, mime, nil
}

// DecodeImage decodes a base64 image data URI into a decoded image.
func DecodeImage(uri string) (image.Image, error) {
	data, _, err := DecodeDataURI(uri)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("artwork: decode data URI: %w", err)
	}
	return img, nil
}
