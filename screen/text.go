package screen

import (
	"image"

	"github.com/32bitkid/dda"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Text draws s in colour c with its top-left corner at (x, y). Glyphs that
// fall outside of buf are clipped.
func Text(buf *Buffer, x, y int, s string, c dda.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  buf.Paletted,
		Src:  image.NewUniform(buf.Palette[c]),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// TextWidth reports the advance of s in pixels.
func TextWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}
