// raster.go - Raster Doc backend. Renders the page into an RGBA canvas at
// a chosen DPI; used for live previews and PNG export.
package poster

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/youruser/posterapp/internal/artwork"
)

// mmPerPt converts font sizes in points to document units.
const mmPerPt = 25.4 / 72

// Raster implements Doc on an in-memory pixel canvas. One pixel equals one
// document unit at 72 DPI; higher DPI scales the canvas by dpi/72.
type Raster struct {
	img       *image.RGBA
	w, h      float64 // document units
	ppu       float64 // pixels per document unit
	fillCol   color.RGBA
	drawCol   color.RGBA
	textCol   color.RGBA
	face      font.Face
	fontStyle string
	fontSize  float64
}

// NewRaster creates a raster page of w×h document units at the given DPI.
func NewRaster(w, h, dpi float64) *Raster {
	if dpi <= 0 {
		dpi = 72
	}
	ppu := dpi / 72
	r := &Raster{
		img:     image.NewRGBA(image.Rect(0, 0, round(w*ppu), round(h*ppu))),
		w:       w,
		h:       h,
		ppu:     ppu,
		fillCol: color.RGBA{255, 255, 255, 255},
		drawCol: color.RGBA{0, 0, 0, 255},
		textCol: color.RGBA{0, 0, 0, 255},
	}
	return r
}

func round(v float64) int { return int(v + 0.5) }

func (r *Raster) px(v float64) int { return round(v * r.ppu) }

// PageSize returns the page dimensions in document units.
func (r *Raster) PageSize() (float64, float64) { return r.w, r.h }

func (r *Raster) SetFillColor(hex string) { r.fillCol = parseHexColor(hex) }
func (r *Raster) SetDrawColor(hex string) { r.drawCol = parseHexColor(hex) }
func (r *Raster) SetTextColor(hex string) { r.textCol = parseHexColor(hex) }

func (r *Raster) FillRect(x, y, w, h float64) {
	rect := image.Rect(r.px(x), r.px(y), r.px(x+w), r.px(y+h))
	draw.Draw(r.img, rect, &image.Uniform{r.fillCol}, image.Point{}, draw.Src)
}

// strokeWidth is the pen width in pixels, at least one.
func (r *Raster) strokeWidth() int {
	if t := round(0.5 * r.ppu); t > 1 {
		return t
	}
	return 1
}

func (r *Raster) StrokeRect(x, y, w, h float64) {
	t := r.strokeWidth()
	x0, y0, x1, y1 := r.px(x), r.px(y), r.px(x+w), r.px(y+h)
	edges := []image.Rectangle{
		image.Rect(x0, y0, x1, y0+t),
		image.Rect(x0, y1-t, x1, y1),
		image.Rect(x0, y0, x0+t, y1),
		image.Rect(x1-t, y0, x1, y1),
	}
	for _, e := range edges {
		draw.Draw(r.img, e, &image.Uniform{r.drawCol}, image.Point{}, draw.Src)
	}
}

// Line draws an axis-aligned line; the templates only use horizontal and
// vertical rules.
func (r *Raster) Line(x1, y1, x2, y2 float64) {
	t := r.strokeWidth()
	var rect image.Rectangle
	switch {
	case y1 == y2:
		rect = image.Rect(r.px(x1), r.px(y1), r.px(x2), r.px(y1)+t)
	case x1 == x2:
		rect = image.Rect(r.px(x1), r.px(y1), r.px(x1)+t, r.px(y2))
	default:
		return
	}
	draw.Draw(r.img, rect.Canon(), &image.Uniform{r.drawCol}, image.Point{}, draw.Src)
}

func (r *Raster) SetFont(style string, size float64) {
	if style == r.fontStyle && size == r.fontSize && r.face != nil {
		return
	}
	face, err := newFace(style, size*mmPerPt*r.ppu)
	if err != nil {
		slog.Warn("raster font unavailable", "error", err)
		return
	}
	r.face = face
	r.fontStyle = style
	r.fontSize = size
}

// Text draws a single line with its baseline at y.
func (r *Raster) Text(x, y float64, s string, align Align) {
	if s == "" || r.face == nil {
		return
	}
	dot := fixed.P(r.px(x), r.px(y))
	if align == AlignCenter {
		w := font.MeasureString(r.face, s)
		dot.X -= w / 2
	}
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(r.textCol),
		Face: r.face,
		Dot:  dot,
	}
	d.DrawString(s)
}

// Image places a data-URI image scaled to w×h units. Undecodable sources
// are skipped.
func (r *Raster) Image(src string, x, y, w, h float64) {
	if src == "" {
		return
	}
	img, err := artwork.DecodeImage(src)
	if err != nil {
		slog.Warn("raster image skipped", "error", err)
		return
	}
	scaled := imaging.Resize(img, r.px(w), r.px(h), imaging.Lanczos)
	rect := image.Rect(r.px(x), r.px(y), r.px(x)+scaled.Bounds().Dx(), r.px(y)+scaled.Bounds().Dy())
	draw.Draw(r.img, rect, scaled, image.Point{}, draw.Over)
}

// Bounds exposes the pixel dimensions of the canvas.
func (r *Raster) Bounds() image.Rectangle { return r.img.Bounds() }

// EncodePNG serializes the canvas as PNG bytes.
func (r *Raster) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DataURI serializes the canvas as a PNG data URI for inline display.
func (r *Raster) DataURI() (string, error) {
	b, err := r.EncodePNG()
	if err != nil {
		return "", err
	}
	return artwork.EncodeDataURI("image/png", b), nil
}
