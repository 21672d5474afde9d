package screen

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Scale enlarges src by an integer factor without smoothing, keeping the
// hard pixel edges of the rasterized lines. A factor below 1 is treated
// as 1.
func Scale(src image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	r := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx()*factor, r.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, r, xdraw.Src, nil)
	return dst
}

// Present prepares src for display: optionally through RenderToCRT, then
// enlarged by factor.
func Present(src image.Image, crt bool, factor int) image.Image {
	if crt {
		src = RenderToCRT(src)
	}
	if factor <= 1 {
		return src
	}
	return Scale(src, factor)
}
