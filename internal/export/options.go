package export

import "github.com/youruser/posterapp/internal/poster"

// Format of an exported artifact.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
)

// Options are the user-chosen output settings for one export action.
// DPI applies to PNG output only.
type Options struct {
	PageSize    poster.Size        `json:"pageSize"`
	Orientation poster.Orientation `json:"orientation"`
	Format      Format             `json:"format"`
	DPI         int                `json:"dpi"`
}

// DefaultOptions are the values the export dialog opens with.
func DefaultOptions() Options {
	return Options{
		PageSize:    poster.A0,
		Orientation: poster.Portrait,
		Format:      FormatPDF,
		DPI:         300,
	}
}

// maxDPI bounds the raster canvas; A0 at 1200 DPI is already a ~14000 px
// wide image.
const maxDPI = 1200

// normalize coerces unknown values to the defaults so an export never
// fails on an unrecognized name.
func (o Options) normalize() Options {
	o.PageSize = poster.ParseSize(string(o.PageSize))
	o.Orientation = poster.ParseOrientation(string(o.Orientation))
	if o.Format != FormatPNG {
		o.Format = FormatPDF
	}
	if o.DPI <= 0 {
		o.DPI = 300
	}
	if o.DPI > maxDPI {
		o.DPI = maxDPI
	}
	return o
}
