package main

import (
	"fmt"
	"image"

	"github.com/32bitkid/dda"
	"github.com/32bitkid/dda/screen"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	xdraw "golang.org/x/image/draw"
)

// viewer presents a surface that is being drawn into by another goroutine.
// Any key closes the window.
type viewer struct {
	surface *screen.Locked
	frame   *image.RGBA
}

func (v *viewer) Update() error {
	if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(dst *ebiten.Image) {
	v.surface.View(func(img *image.Paletted) {
		xdraw.Draw(v.frame, v.frame.Rect, img, img.Rect.Min, xdraw.Src)
	})
	dst.WritePixels(v.frame.Pix)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return v.frame.Rect.Dx(), v.frame.Rect.Dy()
}

func runWindow(buf *screen.Buffer, r dda.Rasterizer, scale int) error {
	if scale < 1 {
		scale = 1
	}

	locked := screen.NewLocked(buf)
	v := &viewer{
		surface: locked,
		frame:   image.NewRGBA(image.Rect(0, 0, buf.Rect.Dx(), buf.Rect.Dy())),
	}

	go r.DrawAll(dda.Triangle(), locked)

	ebiten.SetWindowTitle("DDA")
	ebiten.SetWindowSize(buf.Rect.Dx()*scale, buf.Rect.Dy()*scale)
	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("graphics: %w", err)
	}
	return nil
}
