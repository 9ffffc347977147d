package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// TrackStyle defines the bar the thumbs travel along and the highlighted
// segment between them.
type TrackStyle struct {
	Height    float64
	Color     color.Color
	Highlight color.Color
}

// DefaultTrackStyle is a translucent white track with an opaque white highlight.
func DefaultTrackStyle() TrackStyle {
	return TrackStyle{Height: defaultTrackHeight, Color: colTrack, Highlight: colTrackHighlight}
}

// Draw renders the track and, when non-empty, the highlight on top of it.
func (s TrackStyle) Draw(dst *ebiten.Image, track, highlight image.Rectangle) {
	drawRect(dst, track, s.Color, true)
	if highlight.Dx() > 0 {
		drawRect(dst, highlight, s.Highlight, true)
	}
}

// LabelStyle styles the value read-outs of the demo screen.
type LabelStyle struct {
	Fill   color.Color
	Border color.Color
}

// Draw renders the label box; active darkens it while its slider is dragged.
func (s LabelStyle) Draw(dst *ebiten.Image, r image.Rectangle, active bool) {
	drawButton(dst, r, s.Fill, s.Border, active)
}

// ButtonStyle describes rectangular button visuals.
type ButtonStyle struct {
	Fill   color.Color
	Border color.Color
}

// Draw renders the button rectangle using the global drawButton primitive.
func (s ButtonStyle) Draw(dst *ebiten.Image, r image.Rectangle, pressed, hovered bool) {
	drawButton(dst, r, s.Fill, s.Border, pressed)
	if hovered && !pressed {
		drawRect(dst, insetRect(r, 1), s.Border, false)
	}
}

var (
	ValueLabelStyle  = LabelStyle{Fill: colLabelFill, Border: colLabelBorder}
	ResetButtonStyle = ButtonStyle{Fill: colResetButton, Border: colLabelBorder}
)
