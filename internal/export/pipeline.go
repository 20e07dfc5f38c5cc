// Package export turns a schema, config map and catalog metadata into
// rendered artifacts: an on-screen preview data URI and downloadable
// PDF/PNG files. It also owns the editing Session, which gates rendering
// on data readiness and serializes overlapping renders.
package export

import (
	"fmt"

	"github.com/youruser/posterapp/internal/config"
	"github.com/youruser/posterapp/internal/poster"
)

// previewDPI keeps previews at one pixel per document unit.
const previewDPI = 72

// Artifact is a finished export handed to the browser's download
// mechanism.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Pipeline resolves export options into page geometry and drives the
// template registry.
type Pipeline struct {
	Registry *poster.Registry
}

// NewPipeline returns a pipeline over the built-in template registry.
func NewPipeline() *Pipeline {
	return &Pipeline{Registry: poster.NewRegistry()}
}

// previewOrientation honors a configured posterOrientation choice; absent
// or unknown values mean portrait.
func previewOrientation(cfg config.Map) poster.Orientation {
	return poster.ParseOrientation(cfg.String("posterOrientation"))
}

// RenderPreview renders the poster at the A0 baseline into a PNG data URI
// for inline display.
func (p *Pipeline) RenderPreview(cfg config.Map, meta *poster.Metadata, template string) (string, error) {
	w, h := poster.Dimensions(poster.A0, previewOrientation(cfg))
	doc := poster.NewRaster(w, h, previewDPI)
	p.Registry.Lookup(template)(doc, cfg, meta, w, h, poster.ScaleFactor(poster.A0))
	return doc.DataURI()
}

// ExportArtifact re-renders at the requested geometry and serializes the
// result. PDF serializes the vector document directly; PNG rasterizes at
// pageDimension × DPI/72 pixels.
func (p *Pipeline) ExportArtifact(posterType string, cfg config.Map, meta *poster.Metadata, template string, opts Options) (*Artifact, error) {
	opts = opts.normalize()
	w, h := poster.Dimensions(opts.PageSize, opts.Orientation)
	scale := poster.ScaleFactor(opts.PageSize)
	render := p.Registry.Lookup(template)

	switch opts.Format {
	case FormatPNG:
		doc := poster.NewRaster(w, h, float64(opts.DPI))
		render(doc, cfg, meta, w, h, scale)
		data, err := doc.EncodePNG()
		if err != nil {
			return nil, fmt.Errorf("export: encode png: %w", err)
		}
		return &Artifact{
			Filename:    fmt.Sprintf("%s-poster-%s-%ddpi.png", posterType, opts.PageSize, opts.DPI),
			ContentType: "image/png",
			Data:        data,
		}, nil
	default:
		doc := poster.NewPDF(w, h)
		render(doc, cfg, meta, w, h, scale)
		data, err := doc.Bytes()
		if err != nil {
			return nil, fmt.Errorf("export: serialize pdf: %w", err)
		}
		return &Artifact{
			Filename:    fmt.Sprintf("%s-poster-%s.pdf", posterType, opts.PageSize),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	}
}
