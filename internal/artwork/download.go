// Package artwork fetches and converts poster imagery: remote cover
// download, data-URI encoding for embedding into documents, and scan-code
// generation.
package artwork

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"net/http"

	"github.com/disintegration/imaging"

	"github.com/youruser/posterapp/internal/util"
)

// Download fetches and decodes a remote image.
func Download(ctx context.Context, url string) (image.Image, error) {
	b, err := util.GetBytes(ctx, url)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("artwork: decode %s: %w", url, err)
	}
	return img, nil
}

// FetchDataURI downloads a remote image and returns it as a base64 data
// URI, so the exported document embeds the pixels rather than a URL.
func FetchDataURI(ctx context.Context, url string) (string, error) {
	b, err := util.GetBytes(ctx, url)
	if err != nil {
		return "", err
	}
	mime := http.DetectContentType(b)
	return EncodeDataURI(mime, b), nil
}
