package poster

import (
	"math"
	"testing"
)

func TestScaleFactor(t *testing.T) {
	cases := []struct {
		size Size
		want float64
	}{
		{A0, 1},
		{A1, math.Sqrt2 / 2},
		{A2, 0.5},
		{A3, math.Sqrt2 / 4},
		{A4, 0.25},
	}
	for _, tc := range cases {
		if got := ScaleFactor(tc.size); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("ScaleFactor(%s) = %v, want %v", tc.size, got, tc.want)
		}
	}
}

func TestScaleFactorMonotonic(t *testing.T) {
	prev := math.Inf(1)
	for _, s := range Sizes {
		f := ScaleFactor(s)
		if f >= prev {
			t.Fatalf("ScaleFactor not strictly decreasing at %s: %v >= %v", s, f, prev)
		}
		prev = f
	}
}

func TestDimensions(t *testing.T) {
	w, h := Dimensions(A0, Portrait)
	if w != BaseWidth || h != BaseHeight {
		t.Fatalf("A0 portrait = %v×%v, want %v×%v", w, h, BaseWidth, BaseHeight)
	}

	lw, lh := Dimensions(A0, Landscape)
	if lw != h || lh != w {
		t.Fatalf("landscape should swap portrait dimensions, got %v×%v", lw, lh)
	}

	w2, h2 := Dimensions(A2, Portrait)
	if math.Abs(w2-BaseWidth/2) > 1e-9 || math.Abs(h2-BaseHeight/2) > 1e-9 {
		t.Fatalf("A2 portrait = %v×%v, want half of A0", w2, h2)
	}
}

func TestParseFallbacks(t *testing.T) {
	if ParseSize("letter") != A0 {
		t.Error("unknown size should fall back to A0")
	}
	if ParseSize("a3") != A3 {
		t.Error("known size should parse")
	}
	if ParseOrientation("diagonal") != Portrait {
		t.Error("unknown orientation should fall back to portrait")
	}
	if ParseOrientation("landscape") != Landscape {
		t.Error("landscape should parse")
	}
}
