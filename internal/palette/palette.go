// Package palette extracts dominant colors from cover art for the classic
// template's swatch strip.
package palette

import (
	"context"
	"image"
	"log/slog"
	"strings"

	prominentcolor "github.com/EdlinOrg/prominentcolor"

	"github.com/youruser/posterapp/internal/artwork"
)

// MaxSwatches caps the number of colors returned.
const MaxSwatches = 5

// FromImage returns up to MaxSwatches dominant colors as #rrggbb strings.
// A nil result means extraction failed or produced nothing; callers render
// zero swatches in that case.
func FromImage(img image.Image) []string {
	if img == nil {
		return nil
	}
	items, err := prominentcolor.KmeansWithAll(MaxSwatches, img,
		prominentcolor.ArgumentDefault, prominentcolor.DefaultSize,
		prominentcolor.GetDefaultMasks())
	if err != nil {
		slog.Debug("palette extraction failed", "error", err)
		return nil
	}
	colors := make([]string, 0, len(items))
	for _, it := range items {
		colors = append(colors, "#"+strings.ToLower(it.AsString()))
		if len(colors) == MaxSwatches {
			break
		}
	}
	if len(colors) == 0 {
		return nil
	}
	return colors
}

// FromURL downloads a remote image and extracts its palette. Failures
// degrade to nil.
func FromURL(ctx context.Context, url string) []string {
	img, err := artwork.Download(ctx, url)
	if err != nil {
		slog.Debug("palette source unavailable", "url", url, "error", err)
		return nil
	}
	return FromImage(img)
}

// FromSource extracts a palette from an image source, either a data URI or
// a remote URL. Failures degrade to nil.
func FromSource(ctx context.Context, src string) []string {
	if src == "" {
		return nil
	}
	if strings.HasPrefix(src, "data:") {
		img, err := artwork.DecodeImage(src)
		if err != nil {
			slog.Debug("palette source unavailable", "error", err)
			return nil
		}
		return FromImage(img)
	}
	return FromURL(ctx, src)
}
