// Package poster renders poster layouts onto drawable documents.
//
// Templates issue drawing calls against the Doc interface; two backends
// implement it, a vector PDF document and a raster image used for previews
// and PNG export. All coordinates are in document units (millimetres),
// font sizes in points.
package poster

// Align controls horizontal text placement relative to the x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Font styles understood by SetFont.
const (
	StyleRegular = ""
	StyleBold    = "bold"
)

// Doc is the drawable-document handle templates paint on.
//
// Image sources must be base64 data URIs; covers and uploads are converted
// to data URIs before rendering so exported artifacts are self-contained.
// A source that cannot be decoded is skipped, never fatal.
type Doc interface {
	// PageSize returns the page dimensions in document units.
	PageSize() (w, h float64)
	SetFillColor(hex string)
	FillRect(x, y, w, h float64)
	SetDrawColor(hex string)
	StrokeRect(x, y, w, h float64)
	Line(x1, y1, x2, y2 float64)
	// SetFont selects the style (StyleRegular or StyleBold) and size in
	// points for subsequent Text calls.
	SetFont(style string, size float64)
	SetTextColor(hex string)
	Text(x, y float64, s string, align Align)
	Image(src string, x, y, w, h float64)
}

// Metadata is the optional catalog record a template may draw from.
// Present for music posters, absent (nil) otherwise; templates must
// tolerate both a nil Metadata and any empty field.
type Metadata struct {
	Title       string
	Artist      string
	Tracks      []string
	ReleaseDate string
	Label       string
	ExternalURL string
	// CoverSource is the catalog cover as a data URI, kept so the editor
	// can restore it after a high-res swap.
	CoverSource string
	// Palette holds up to five #rrggbb strings extracted from the cover;
	// nil renders zero swatches.
	Palette []string
	// ScanCode is a pre-rendered QR data URI linking to ExternalURL.
	ScanCode string
}
