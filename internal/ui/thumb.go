package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ThumbView is the visual for one thumb. The slider positions it; the view
// only reports its size and draws itself into the rectangle it is given.
type ThumbView interface {
	Size() (w, h float64)
	Draw(dst *ebiten.Image, r image.Rectangle, dragging bool)
}

// RoundThumb is a filled circle.
type RoundThumb struct {
	Diameter float64
	Fill     color.Color
	Active   color.Color
}

func NewRoundThumb() *RoundThumb {
	return &RoundThumb{Diameter: defaultThumbSize, Fill: colThumb, Active: colThumbActive}
}

func (t *RoundThumb) Size() (float64, float64) { return t.Diameter, t.Diameter }

func (t *RoundThumb) Draw(dst *ebiten.Image, r image.Rectangle, dragging bool) {
	c := t.Fill
	if dragging && t.Active != nil {
		c = t.Active
	}
	drawDisc(dst, r, c)
}

// BoxThumb is a bordered rectangle, taller than the track.
type BoxThumb struct {
	W, H   float64
	Fill   color.Color
	Border color.Color
}

func NewBoxThumb(w, h float64) *BoxThumb {
	return &BoxThumb{W: w, H: h, Fill: colThumb, Border: colLabelBorder}
}

func (t *BoxThumb) Size() (float64, float64) { return t.W, t.H }

func (t *BoxThumb) Draw(dst *ebiten.Image, r image.Rectangle, dragging bool) {
	drawButton(dst, r, t.Fill, t.Border, dragging)
}

// newThumbView builds a thumb from its config name; unknown names fall back
// to a round thumb.
func newThumbView(kind string, size float64) ThumbView {
	if size <= 0 {
		size = defaultThumbSize
	}
	switch kind {
	case "box":
		return NewBoxThumb(size*0.6, size*1.4)
	default:
		t := NewRoundThumb()
		t.Diameter = size
		return t
	}
}
