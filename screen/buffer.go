// Package screen provides in-memory pixel surfaces for the DDA rasterizer
// and the helpers needed to present them.
package screen

import (
	"image"
	"image/color"
	"sync"

	"github.com/32bitkid/dda"
)

// Buffer is a paletted pixel surface. Writes outside of its bounds are
// silently dropped.
type Buffer struct {
	*image.Paletted
}

// NewBuffer allocates a buffer covering bounds. A nil palette selects
// DefaultPalettes.EGA.
func NewBuffer(bounds image.Rectangle, palette color.Palette) *Buffer {
	if palette == nil {
		palette = DefaultPalettes.EGA
	}
	return &Buffer{Paletted: image.NewPaletted(bounds, palette)}
}

func (buf *Buffer) SetPixel(x, y int, c dda.Color) {
	if !(image.Point{x, y}.In(buf.Rect)) {
		return
	}
	buf.Pix[buf.PixOffset(x, y)] = uint8(c)
}

func (buf *Buffer) Clear(c dda.Color) {
	for i, max := 0, len(buf.Pix); i < max; i++ {
		buf.Pix[i] = uint8(c)
	}
}

func (buf *Buffer) Image() *image.Paletted {
	return buf.Paletted
}

// Count returns the number of pixels set to c.
func (buf *Buffer) Count(c dda.Color) int {
	var n int
	for _, p := range buf.Pix {
		if p == uint8(c) {
			n++
		}
	}
	return n
}

// Locked serializes access to a Buffer that is drawn into by one goroutine
// and presented by another.
type Locked struct {
	mu  sync.Mutex
	buf *Buffer
}

func NewLocked(buf *Buffer) *Locked {
	return &Locked{buf: buf}
}

func (l *Locked) SetPixel(x, y int, c dda.Color) {
	l.mu.Lock()
	l.buf.SetPixel(x, y, c)
	l.mu.Unlock()
}

// View calls fn with the underlying image while holding the lock. fn must
// not retain img.
func (l *Locked) View(fn func(img *image.Paletted)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.buf.Paletted)
}
