// fonts.go - Embedded font faces for the raster backend. Uses the Go fonts
// shipped with golang.org/x/image so the binary needs no font files.
package poster

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	fontOnce    sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font
	fontErr     error
)

func loadFonts() (*opentype.Font, *opentype.Font, error) {
	fontOnce.Do(func() {
		regularFont, fontErr = opentype.Parse(goregular.TTF)
		if fontErr != nil {
			return
		}
		boldFont, fontErr = opentype.Parse(gobold.TTF)
	})
	return regularFont, boldFont, fontErr
}

// newFace builds a face for the given style at a pixel size.
func newFace(style string, pixelSize float64) (font.Face, error) {
	regular, bold, err := loadFonts()
	if err != nil {
		return nil, fmt.Errorf("poster: parse embedded fonts: %w", err)
	}
	f := regular
	if style == StyleBold {
		f = bold
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    pixelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("poster: font face: %w", err)
	}
	return face, nil
}
