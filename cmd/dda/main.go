// Command dda draws a triangle outline with the Digital Differential
// Analyzer, either into a window or into a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"
	"time"

	"github.com/32bitkid/dda"
	"github.com/32bitkid/dda/screen"
)

const banner = "This is DDA-Digital Differential Analyzer"

func main() {
	output := flag.String("o", "", "write the picture to a PNG `file` instead of opening a window")
	crt := flag.Bool("crt", false, "apply CRT post-processing to the PNG output")
	scale := flag.Int("scale", 1, "integer upscale factor for the output")
	delay := flag.Duration("delay", 100*time.Millisecond, "per-pixel drawing delay in window mode")
	width := flag.Int("w", 640, "surface width")
	height := flag.Int("h", 480, "surface height")
	paletteName := flag.String("palette", "ega", "colour palette: "+strings.Join(screen.PaletteNames(), ", "))
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("dda: ")

	palette, ok := screen.PaletteByName(*paletteName)
	if !ok {
		log.Fatalf("unknown palette %q", *paletteName)
	}
	if *width <= 0 || *height <= 0 {
		log.Fatalf("invalid surface size %dx%d", *width, *height)
	}

	buf := screen.NewBuffer(image.Rect(0, 0, *width, *height), palette)
	screen.Text(buf, 100, 100, banner, dda.White)

	if *output != "" {
		dda.Rasterizer{}.DrawAll(dda.Triangle(), buf)
		if err := writePNG(*output, screen.Present(buf, *crt, *scale)); err != nil {
			log.Fatal(err)
		}
		return
	}

	r := dda.Rasterizer{Delay: dda.Sleep(*delay)}
	if err := runWindow(buf, r, *scale); err != nil {
		log.Fatal(err)
	}
}

func writePNG(fn string, img image.Image) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", fn, err)
	}
	return f.Close()
}
