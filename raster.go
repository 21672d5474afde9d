// Package dda rasterizes line segments with the Digital Differential
// Analyzer.
//
// The DDA walks the dominant axis of a segment one unit at a time and
// advances the other axis by a fractional increment, plotting the nearest
// pixel at every step. A segment spanning max(|dx|, |dy|) units therefore
// always produces max(|dx|, |dy|)+1 pixels, the first one on the start
// point and the last one on the end point.
//
// Pixels are written to a Surface. The rasterizer never reads pixels back
// and performs no bounds checking; surfaces are expected to drop writes
// that fall outside of them.
package dda

import (
	"image"
	"math"
)

// Surface is a mutable grid of palette indices.
type Surface interface {
	SetPixel(x, y int, c Color)
}

// The SurfaceFunc type is an adapter to allow the use of ordinary
// functions as a Surface.
type SurfaceFunc func(x, y int, c Color)

func (fn SurfaceFunc) SetPixel(x, y int, c Color) { fn(x, y, c) }

// Segment is a single line to be drawn.
type Segment struct {
	Start, End image.Point
	Color      Color
}

// Steps is the number of unit increments along the dominant axis.
func (seg Segment) Steps() int {
	d := seg.End.Sub(seg.Start)
	return max(absInt(d.X), absInt(d.Y))
}

// Round rounds v to the nearest integer, resolving halves upwards, i.e.
// floor(v + 0.5). Round(2.5) is 3 and Round(-2.5) is -2.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Trace calls plot for every pixel of the line from start to end, in
// order.
//
// The position after i steps is start + i*(end-start)/steps. The numerators
// are accumulated as integers so that repeated addition of the fractional
// increment cannot drift; the final sample is exactly end.
func Trace(start, end image.Point, plot func(image.Point)) {
	dx, dy := end.X-start.X, end.Y-start.Y
	steps := max(absInt(dx), absInt(dy))

	if steps == 0 {
		plot(start)
		return
	}

	var (
		x0, y0 = float64(start.X), float64(start.Y)
		fs     = float64(steps)
		nx, ny int
	)

	for i := 0; i <= steps; i++ {
		plot(image.Point{
			X: Round(x0 + float64(nx)/fs),
			Y: Round(y0 + float64(ny)/fs),
		})
		nx += dx
		ny += dy
	}
}

// Rasterizer draws segments onto a surface. The zero value draws at full
// speed.
type Rasterizer struct {
	// Delay, when non-nil, is called after each plotted pixel.
	Delay DelayFunc
}

// Line plots the segment from start to end in color c.
func (r Rasterizer) Line(start, end image.Point, c Color, s Surface) {
	Trace(start, end, func(p image.Point) {
		s.SetPixel(p.X, p.Y, c)
		if r.Delay != nil {
			r.Delay()
		}
	})
}

// Draw plots seg.
func (r Rasterizer) Draw(seg Segment, s Surface) {
	r.Line(seg.Start, seg.End, seg.Color, s)
}

// DrawAll plots segs one after the other.
func (r Rasterizer) DrawAll(segs []Segment, s Surface) {
	for _, seg := range segs {
		r.Draw(seg, s)
	}
}

// DrawLine plots the line from start to end in color c without delay.
func DrawLine(start, end image.Point, c Color, s Surface) {
	Rasterizer{}.Line(start, end, c, s)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
