package screen

import (
	"image"
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

// CRTScale is the number of output pixels per source pixel, in each axis,
// produced by RenderToCRT.
const CRTScale = 6

var (
	maskRed   = color.RGBA{R: 0xFF, G: 0x99, B: 0x99, A: 0xff}
	maskGreen = color.RGBA{G: 0xFF, R: 0x99, B: 0x99, A: 0xff}
	maskBlue  = color.RGBA{B: 0xFF, R: 0x99, G: 0x99, A: 0xff}
)

// Horizontal bleed from the left (negative) or right (positive) neighbour,
// per output column. Zero means the pixel's own colour.
var bleed = [CRTScale]float64{-3.0 / 6.0, -4.0 / 6.0, -5.0 / 6.0, 0, 1.0 / 6.0, 2.0 / 6.0}

// Scan-line darkening per output row.
var scanline = [CRTScale]float64{0.7, 0.2, 0, 0, 0.1, 0.4}

// Aperture grille, alternating between even and odd rows.
var shadowMask = [2][CRTScale]color.RGBA{
	{maskRed, maskRed, maskGreen, maskGreen, maskBlue, maskBlue},
	{maskGreen, maskBlue, maskBlue, maskRed, maskRed, maskGreen},
}

// RenderToCRT upscales src by CRTScale, imitating colour bleed, scan-lines
// and the shadow mask of a period monitor.
func RenderToCRT(src image.Image) *image.RGBA {
	srcRect := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, srcRect.Dx()*CRTScale, srcRect.Dy()*CRTScale))

	for sy, dy := srcRect.Min.Y, 0; sy < srcRect.Max.Y; sy, dy = sy+1, dy+CRTScale {
		for sx, dx := srcRect.Min.X, 0; sx < srcRect.Max.X; sx, dx = sx+1, dx+CRTScale {
			lc := src.At(clamp(sx-1, srcRect.Min.X, srcRect.Max.X-1), sy)
			c := src.At(sx, sy)
			rc := src.At(clamp(sx+1, srcRect.Min.X, srcRect.Max.X-1), sy)

			for iy := 0; iy < CRTScale; iy++ {
				for ix := 0; ix < CRTScale; ix++ {
					co := c
					switch t := bleed[ix]; {
					case t < 0:
						co = rgbMix(lc, c, -t)
					case t > 0:
						co = rgbMix(c, rc, t)
					}
					if p := scanline[iy]; p > 0 {
						co = darken(co, p)
					}
					co = rgbMul(co, shadowMask[iy%2][ix])
					dst.Set(dx+ix, dy+iy, co)
				}
			}
		}
	}

	return dst
}

func rgbMix(c1, c2 color.Color, t float64) color.Color {
	clr1, _ := clr.MakeColor(c1)
	clr2, _ := clr.MakeColor(c2)
	if (clr1.R == clr1.G && clr1.G == clr1.B) || (clr2.R == clr2.G && clr2.G == clr2.B) {
		return clr1.BlendRgb(clr2, t).Clamped()
	}
	return clr1.BlendLab(clr2, t).Clamped()
}

func darken(src color.Color, p float64) color.Color {
	srcColor, _ := clr.MakeColor(src)
	h, c, l := srcColor.Hcl()
	return clr.Hcl(h, c, l-p).Clamped()
}

func rgbMul(a, b color.Color) color.Color {
	r1, g1, b1, _ := a.RGBA()
	r2, g2, b2, _ := b.RGBA()
	return color.RGBA{
		R: uint8((r1 * r2 / 0xffff) >> 8),
		G: uint8((g1 * g2 / 0xffff) >> 8),
		B: uint8((b1 * b2 / 0xffff) >> 8),
		A: 0xFF,
	}
}

func clamp(i, min, max int) int {
	switch {
	case i < min:
		return min
	case i > max:
		return max
	default:
		return i
	}
}
