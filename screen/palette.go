package screen

import (
	"image/color"
	"sort"
)

var DefaultPalettes = struct {
	EGA     color.Palette
	DB32EGA color.Palette
	EGACOM  color.Palette
}{
	// Matches the BGI colour constants, BLACK through WHITE.
	EGA: color.Palette{
		rgb24Color(0x000000),
		rgb24Color(0x0000AA),
		rgb24Color(0x00AA00),
		rgb24Color(0x00AAAA),
		rgb24Color(0xAA0000),
		rgb24Color(0xAA00AA),
		rgb24Color(0xAA5500),
		rgb24Color(0xAAAAAA),

		rgb24Color(0x555555),
		rgb24Color(0x5555FF),
		rgb24Color(0x55FF55),
		rgb24Color(0x55FFFF),
		rgb24Color(0xFF5555),
		rgb24Color(0xFF55FF),
		rgb24Color(0xFFFF55),
		rgb24Color(0xFFFFFF),
	},
	DB32EGA: color.Palette{
		rgb24Color(0x000000),
		rgb24Color(0x3f3f74),
		rgb24Color(0x4b692f),
		rgb24Color(0x306082),
		rgb24Color(0xac3232),
		rgb24Color(0x45283c),
		rgb24Color(0x8f563b),
		rgb24Color(0x847e87),

		rgb24Color(0x323c39),
		rgb24Color(0x639bff),
		rgb24Color(0x6abe30),
		rgb24Color(0x5fcde4),
		rgb24Color(0xd95763),
		rgb24Color(0xd77bba),
		rgb24Color(0xfbf236),
		rgb24Color(0xffffff),
	},
	EGACOM: color.Palette{
		0x0: rgb(24, 24, 24),
		0x1: rgb(44, 66, 103),
		0x2: rgb(83, 138, 106),
		0x3: rgb(87, 110, 84),
		0x4: rgb(123, 45, 47),
		0x5: rgb(157, 68, 106),
		0x6: rgb(108, 75, 55),
		0x7: rgb(148, 153, 158),

		0x8: rgb(82, 87, 92),
		0x9: rgb(56, 102, 139),
		0xa: rgb(99, 180, 101),
		0xb: rgb(130, 232, 232),
		0xc: rgb(208, 64, 67),
		0xd: rgb(235, 114, 114),
		0xe: rgb(230, 196, 57),
		0xf: rgb(238, 247, 237),
	},
}

var namedPalettes = map[string]color.Palette{
	"ega":     DefaultPalettes.EGA,
	"db32ega": DefaultPalettes.DB32EGA,
	"egacom":  DefaultPalettes.EGACOM,
}

// PaletteByName looks up one of the DefaultPalettes by its lower-case
// name.
func PaletteByName(name string) (color.Palette, bool) {
	pal, ok := namedPalettes[name]
	return pal, ok
}

// PaletteNames lists the names accepted by PaletteByName.
func PaletteNames() []string {
	names := make([]string, 0, len(namedPalettes))
	for name := range namedPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type rgb24Color uint32

func (rgb24 rgb24Color) RGBA() (r, g, b, a uint32) {
	rb, gb, bb := (rgb24>>16)&0xFF, (rgb24>>8)&0xFF, (rgb24>>0)&0xFF

	r = uint32((rb << 8) | rb)
	g = uint32((gb << 8) | gb)
	b = uint32((bb << 8) | bb)
	a = 0xFFFF
	return
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}
