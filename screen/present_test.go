package screen

import (
	"image"
	"testing"

	"github.com/32bitkid/dda"
)

func TestText(t *testing.T) {
	buf := NewBuffer(image.Rect(0, 0, 200, 40), nil)
	Text(buf, 10, 10, "DDA", dda.White)

	if buf.Count(dda.White) == 0 {
		t.Fatal("expected text pixels")
	}

	box := image.Rect(10, 10, 10+TextWidth("DDA"), 10+13)
	for y := buf.Rect.Min.Y; y < buf.Rect.Max.Y; y++ {
		for x := buf.Rect.Min.X; x < buf.Rect.Max.X; x++ {
			if dda.Color(buf.ColorIndexAt(x, y)) == dda.White && !image.Pt(x, y).In(box) {
				t.Fatalf("pixel (%d,%d) outside %v", x, y, box)
			}
		}
	}
}

func TestTextWidth(t *testing.T) {
	if w := TextWidth("abcd"); w != 4*7 {
		t.Fatalf("expected(28) != actual(%d)", w)
	}
}

func TestScale(t *testing.T) {
	buf := NewBuffer(image.Rect(0, 0, 2, 2), nil)
	buf.SetPixel(1, 1, dda.LightRed)

	dst := Scale(buf, 3)
	if dst.Bounds() != image.Rect(0, 0, 6, 6) {
		t.Fatalf("unexpected bounds %v", dst.Bounds())
	}

	r1, g1, b1, _ := DefaultPalettes.EGA[dda.LightRed].RGBA()
	for y := 3; y < 6; y++ {
		for x := 3; x < 6; x++ {
			r2, g2, b2, _ := dst.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 {
				t.Fatalf("(%d,%d): unexpected colour", x, y)
			}
		}
	}
	if r, g, b, _ := dst.At(0, 0).RGBA(); r|g|b != 0 {
		t.Fatal("expected black")
	}
}

func TestScaleMinimumFactor(t *testing.T) {
	buf := NewBuffer(image.Rect(0, 0, 4, 3), nil)
	if b := Scale(buf, 0).Bounds(); b != image.Rect(0, 0, 4, 3) {
		t.Fatalf("unexpected bounds %v", b)
	}
}

func TestRenderToCRT(t *testing.T) {
	buf := NewBuffer(image.Rect(0, 0, 3, 1), nil)
	buf.SetPixel(1, 0, dda.White)

	dst := RenderToCRT(buf)
	if dst.Bounds() != image.Rect(0, 0, 3*CRTScale, CRTScale) {
		t.Fatalf("unexpected bounds %v", dst.Bounds())
	}

	// Centre of the lit cell on an undarkened row.
	if r, g, b, _ := dst.At(CRTScale+3, 2).RGBA(); r|g|b == 0 {
		t.Fatal("expected lit pixel")
	}
}

func TestPresent(t *testing.T) {
	buf := NewBuffer(image.Rect(0, 0, 4, 2), nil)

	cases := []struct {
		crt    bool
		factor int
		bounds image.Rectangle
	}{
		{false, 1, image.Rect(0, 0, 4, 2)},
		{false, 2, image.Rect(0, 0, 8, 4)},
		{true, 1, image.Rect(0, 0, 4*CRTScale, 2*CRTScale)},
		{true, 2, image.Rect(0, 0, 8*CRTScale, 4*CRTScale)},
	}
	for i, tc := range cases {
		if b := Present(buf, tc.crt, tc.factor).Bounds(); b != tc.bounds {
			t.Fatalf("%d: expected(%v) != actual(%v)", i, tc.bounds, b)
		}
	}
}
