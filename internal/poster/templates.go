// templates.go - Built-in poster layouts. All fixed offsets are declared
// against the A0 baseline and multiplied by the page scale factor, so the
// composition keeps its proportions on every paper size.
package poster

import "github.com/youruser/posterapp/internal/config"

// headline returns the line rendered large: the artist for music posters,
// the director for movie posters.
func headline(cfg config.Map) string {
	if s := cfg.String("artistName"); s != "" {
		return s
	}
	return cfg.String("directorName")
}

// titleText returns the album or movie title.
func titleText(cfg config.Map) string {
	if s := cfg.String("albumName"); s != "" {
		return s
	}
	return cfg.String("movieTitle")
}

// coverSrc returns the configured cover or poster image source.
func coverSrc(cfg config.Map) string {
	if s := cfg.String("albumCover"); s != "" {
		return s
	}
	return cfg.String("moviePoster")
}

func fillBackground(d Doc, cfg config.Map, pageW, pageH float64) {
	bg := cfg.String("bgColor")
	if bg == "" {
		bg = "#ffffff"
	}
	d.SetFillColor(bg)
	d.FillRect(0, 0, pageW, pageH)
}

// renderClassic is the bordered layout: headline over a full-width cover,
// a divider, the title, and a metadata panel with track list, release
// info, palette swatches and an optional scan code.
func renderClassic(d Doc, cfg config.Map, meta *Metadata, pageW, pageH, scale float64) {
	margin := cfg.Float("outerMargin") * scale
	fontSize := cfg.Float("fontSize") * scale

	fillBackground(d, cfg, pageW, pageH)

	d.SetDrawColor("#000000")
	d.StrokeRect(margin, margin, pageW-2*margin, pageH-2*margin)

	d.SetTextColor("#000000")
	d.SetFont(StyleBold, fontSize)
	d.Text(pageW/2, margin+40*scale, headline(cfg), AlignCenter)

	coverSize := pageW - 2*margin
	d.Image(coverSrc(cfg), margin, margin+60*scale, coverSize, coverSize)

	dividerY := margin + 60*scale + coverSize + 40*scale
	d.Line(margin+20*scale, dividerY, pageW-margin-20*scale, dividerY)

	d.SetFont(StyleRegular, fontSize*0.6)
	d.Text(pageW/2, dividerY+35*scale, titleText(cfg), AlignCenter)

	if meta != nil {
		d.SetFont(StyleRegular, fontSize*0.3)
		trackY := dividerY + 60*scale
		for i, track := range meta.Tracks {
			if i == 12 {
				break
			}
			d.Text(margin+20*scale, trackY+float64(i)*12*scale, track, AlignLeft)
		}
		infoX := pageW/2 + 60*scale
		if meta.ReleaseDate != "" {
			d.Text(infoX, trackY, "Released "+meta.ReleaseDate, AlignLeft)
		}
		if meta.Label != "" {
			d.Text(infoX, trackY+14*scale, meta.Label, AlignLeft)
		}
	}

	// Palette swatches along the bottom edge; zero colors means zero
	// swatches, never an error.
	if meta != nil {
		swatch := 30 * scale
		swatchY := pageH - margin - 50*scale
		for i, c := range meta.Palette {
			if i == 5 {
				break
			}
			d.SetFillColor(c)
			d.FillRect(margin+20*scale+float64(i)*swatch, swatchY, swatch, swatch)
		}
	}

	if cfg.Bool("showScanCode") && meta != nil && meta.ScanCode != "" {
		codeSize := 60 * scale
		d.Image(meta.ScanCode, pageW-margin-20*scale-codeSize, pageH-margin-20*scale-codeSize, codeSize, codeSize)
	}
}

// renderMinimal is the text-only layout: headline and title centered on
// the page.
func renderMinimal(d Doc, cfg config.Map, _ *Metadata, pageW, pageH, scale float64) {
	fontSize := cfg.Float("fontSize") * scale

	fillBackground(d, cfg, pageW, pageH)

	d.SetTextColor("#000000")
	d.SetFont(StyleBold, fontSize)
	d.Text(pageW/2, pageH/2-20*scale, headline(cfg), AlignCenter)
	d.SetFont(StyleRegular, fontSize)
	d.Text(pageW/2, pageH/2+20*scale, titleText(cfg), AlignCenter)
}

// renderModern is the image-forward layout: a large centered cover with
// captions underneath.
func renderModern(d Doc, cfg config.Map, _ *Metadata, pageW, pageH, scale float64) {
	fontSize := cfg.Float("fontSize") * scale

	fillBackground(d, cfg, pageW, pageH)

	d.Image(coverSrc(cfg), pageW/4, pageH/4, pageW/2, pageW/2)

	d.SetTextColor("#000000")
	d.SetFont(StyleBold, fontSize)
	d.Text(pageW/2, pageH-80*scale, headline(cfg), AlignCenter)
	d.SetFont(StyleRegular, fontSize*0.8)
	d.Text(pageW/2, pageH-50*scale, titleText(cfg), AlignCenter)
}
