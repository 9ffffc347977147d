package ui

import (
	"image"
	"math"
)

// pt is a helper function to check if a point is within a rectangle.
func pt(x, y int, r image.Rectangle) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

// spanRect converts a horizontal span in track coordinates to a screen
// rectangle, offset by originX and covering rows [y0, y1).
func spanRect(originX int, x0, x1 float64, y0, y1 int) image.Rectangle {
	return image.Rect(
		originX+int(math.Round(x0)), y0,
		originX+int(math.Round(x1)), y1,
	)
}

// centeredBand returns the rows [y0, y1) of a band h pixels tall centred in r.
func centeredBand(r image.Rectangle, h float64) (int, int) {
	mid := float64(r.Min.Y) + float64(r.Dy())/2
	y0 := int(math.Round(mid - h/2))
	return y0, y0 + int(math.Round(h))
}
