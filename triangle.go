package dda

import "image"

// Triangle returns the three sides of the demo triangle in drawing order.
func Triangle() []Segment {
	return []Segment{
		{Start: image.Pt(2, 200), End: image.Pt(80, 100), Color: Magenta},
		{Start: image.Pt(80, 100), End: image.Pt(80, 200), Color: Blue},
		{Start: image.Pt(80, 200), End: image.Pt(2, 200), Color: White},
	}
}
