package poster

import "math"

// Orientation of the output page.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Size is an ISO A-series page size.
type Size string

const (
	A0 Size = "a0"
	A1 Size = "a1"
	A2 Size = "a2"
	A3 Size = "a3"
	A4 Size = "a4"
)

// Sizes lists supported page sizes, largest first. The position in this
// list is the rank used by ScaleFactor.
var Sizes = []Size{A0, A1, A2, A3, A4}

// A0 baseline in millimetres, portrait.
const (
	BaseWidth  = 841.0
	BaseHeight = 1189.0
)

// rank returns the zero-based index of s in Sizes, defaulting to A0 for
// unknown sizes.
func rank(s Size) int {
	for i, known := range Sizes {
		if known == s {
			return i
		}
	}
	return 0
}

// ScaleFactor is the linear multiplier relating a page size to the A0
// baseline: 2^(-rank/2), halving linear dimensions every two steps exactly
// as the paper sizes themselves do.
func ScaleFactor(s Size) float64 {
	return math.Pow(2, -float64(rank(s))/2)
}

// Dimensions returns the page width and height in millimetres for a size
// and orientation. Landscape swaps the portrait dimensions.
func Dimensions(s Size, o Orientation) (w, h float64) {
	f := ScaleFactor(s)
	w, h = BaseWidth*f, BaseHeight*f
	if o == Landscape {
		w, h = h, w
	}
	return w, h
}

// ParseSize normalizes a user-supplied size name, defaulting to A0.
func ParseSize(name string) Size {
	switch Size(name) {
	case A0, A1, A2, A3, A4:
		return Size(name)
	}
	return A0
}

// ParseOrientation normalizes a user-supplied orientation, defaulting to
// portrait.
func ParseOrientation(name string) Orientation {
	if Orientation(name) == Landscape {
		return Landscape
	}
	return Portrait
}
