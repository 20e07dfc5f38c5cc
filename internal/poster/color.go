package poster

import (
	"image/color"
	"strconv"
	"strings"
)

// parseHexColor converts "#rrggbb" to color.RGBA, falling back to white
// for anything malformed.
func parseHexColor(hex string) color.RGBA {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return color.RGBA{255, 255, 255, 255}
	}
	r, _ := strconv.ParseUint(hex[0:2], 16, 8)
	g, _ := strconv.ParseUint(hex[2:4], 16, 8)
	b, _ := strconv.ParseUint(hex[4:6], 16, 8)
	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}
}

// hexToRGB splits "#rrggbb" into integer channels for the PDF backend.
func hexToRGB(hex string) (int, int, int) {
	c := parseHexColor(hex)
	return int(c.R), int(c.G), int(c.B)
}
