// pdf.go - Vector Doc backend on go-pdf/fpdf, used for final PDF export.
package poster

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/youruser/posterapp/internal/artwork"
)

// PDF implements Doc on an fpdf document in millimetre units.
type PDF struct {
	pdf    *fpdf.Fpdf
	w, h   float64
	images int
}

// NewPDF creates a single-page PDF document of w×h millimetres.
func NewPDF(w, h float64) *PDF {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: w, Ht: h},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetLineWidth(0.5)
	// The embedded Go fonts cover far more than the cp1252 core fonts,
	// which matters for non-Latin catalog text.
	doc.AddUTF8FontFromBytes("gofont", "", goregular.TTF)
	doc.AddUTF8FontFromBytes("gofont", "B", gobold.TTF)
	doc.AddPage()
	return &PDF{pdf: doc, w: w, h: h}
}

// PageSize returns the page dimensions in millimetres.
func (p *PDF) PageSize() (float64, float64) { return p.w, p.h }

func (p *PDF) SetFillColor(hex string) {
	r, g, b := hexToRGB(hex)
	p.pdf.SetFillColor(r, g, b)
}

func (p *PDF) SetDrawColor(hex string) {
	r, g, b := hexToRGB(hex)
	p.pdf.SetDrawColor(r, g, b)
}

func (p *PDF) SetTextColor(hex string) {
	r, g, b := hexToRGB(hex)
	p.pdf.SetTextColor(r, g, b)
}

func (p *PDF) FillRect(x, y, w, h float64)   { p.pdf.Rect(x, y, w, h, "F") }
func (p *PDF) StrokeRect(x, y, w, h float64) { p.pdf.Rect(x, y, w, h, "D") }
func (p *PDF) Line(x1, y1, x2, y2 float64)   { p.pdf.Line(x1, y1, x2, y2) }

func (p *PDF) SetFont(style string, size float64) {
	fpdfStyle := ""
	if style == StyleBold {
		fpdfStyle = "B"
	}
	p.pdf.SetFont("gofont", fpdfStyle, size)
}

func (p *PDF) Text(x, y float64, s string, align Align) {
	if s == "" {
		return
	}
	if align == AlignCenter {
		x -= p.pdf.GetStringWidth(s) / 2
	}
	p.pdf.Text(x, y, s)
}

// Image places a data-URI image. Undecodable sources are skipped.
func (p *PDF) Image(src string, x, y, w, h float64) {
	if src == "" {
		return
	}
	data, mime, err := artwork.DecodeDataURI(src)
	if err != nil {
		slog.Warn("pdf image skipped", "error", err)
		return
	}
	imageType := "PNG"
	if strings.Contains(mime, "jpeg") || strings.Contains(mime, "jpg") {
		imageType = "JPG"
	}
	p.images++
	name := fmt.Sprintf("img%d", p.images)
	opts := fpdf.ImageOptions{ImageType: imageType}
	p.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	p.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

// Bytes serializes the document.
func (p *PDF) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("poster: pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
