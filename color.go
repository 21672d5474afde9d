package dda

// Color is an index into the 16 colour EGA palette used by the BGI
// graphics library.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

var colorNames = [...]string{
	"BLACK", "BLUE", "GREEN", "CYAN",
	"RED", "MAGENTA", "BROWN", "LIGHTGRAY",
	"DARKGRAY", "LIGHTBLUE", "LIGHTGREEN", "LIGHTCYAN",
	"LIGHTRED", "LIGHTMAGENTA", "YELLOW", "WHITE",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "UNKNOWN"
}
