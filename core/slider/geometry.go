package slider

import (
	"github.com/ingyamilmolinar/rangeslider/core/model"
	"github.com/ingyamilmolinar/rangeslider/internal/utils"
)

// Geometry describes the horizontal track the thumbs travel along, in track
// coordinates (0 is the container's left edge).
//
// The left thumb's trailing edge and the right thumb's leading edge both live
// in [ThumbWidth, ThumbWidth+UsableLength]; a thumb width is reserved at each
// end of the track so neither thumb is ever drawn outside it.
type Geometry struct {
	TrackLength float64
	ThumbWidth  float64
}

// UsableLength is the pixel distance a thumb edge can travel. Layouts too
// narrow for two thumbs report 0, which pins both thumbs together.
func (g Geometry) UsableLength() float64 {
	u := g.TrackLength - 2*g.ThumbWidth
	if u < 0 {
		return 0
	}
	return u
}

// Degenerate reports whether the thumbs have no room to move.
func (g Geometry) Degenerate() bool { return g.UsableLength() <= 0 }

func (g Geometry) edgeX(v float64, r *model.ValueRange) float64 {
	return g.ThumbWidth + g.UsableLength()*utils.Clamp(r.Fraction(v), 0, 1)
}

// LeftThumbX maps v to the left thumb's trailing edge. The result never
// passes the right thumb's leading edge.
func (g Geometry) LeftThumbX(v float64, r *model.ValueRange) float64 {
	x := g.edgeX(v, r)
	if limit := g.edgeX(r.Right(), r); x > limit {
		x = limit
	}
	return x
}

// RightThumbX maps v to the right thumb's leading edge. The result never
// precedes the left thumb's trailing edge.
func (g Geometry) RightThumbX(v float64, r *model.ValueRange) float64 {
	x := g.edgeX(v, r)
	if limit := g.edgeX(r.Left(), r); x < limit {
		x = limit
	}
	return x
}

// PixelToValue is the inverse of the edge mapping. The result is not clamped;
// ValueRange does that on assignment.
func (g Geometry) PixelToValue(x float64, r *model.ValueRange) float64 {
	u := g.UsableLength()
	if u <= 0 {
		return r.Minimum()
	}
	return r.Minimum() + ((x-g.ThumbWidth)/u)*r.Span()
}

// Span is a horizontal interval [X0, X1] in track coordinates.
type Span struct {
	X0, X1 float64
}

func (s Span) Width() float64  { return s.X1 - s.X0 }
func (s Span) Center() float64 { return (s.X0 + s.X1) / 2 }

// LeftThumb is the horizontal extent of the left thumb at the current value.
func (g Geometry) LeftThumb(r *model.ValueRange) Span {
	x := g.LeftThumbX(r.Left(), r)
	return Span{X0: x - g.ThumbWidth, X1: x}
}

// RightThumb is the horizontal extent of the right thumb at the current value.
func (g Geometry) RightThumb(r *model.ValueRange) Span {
	x := g.RightThumbX(r.Right(), r)
	return Span{X0: x, X1: x + g.ThumbWidth}
}

// Thumb returns the extent of the thumb on side.
func (g Geometry) Thumb(side Side, r *model.ValueRange) Span {
	if side == Left {
		return g.LeftThumb(r)
	}
	return g.RightThumb(r)
}

// Highlight spans from the left thumb's center to the right thumb's center.
func (g Geometry) Highlight(r *model.ValueRange) Span {
	return Span{X0: g.LeftThumb(r).Center(), X1: g.RightThumb(r).Center()}
}

// Anchor is the edge captured when a drag starts: the left thumb's trailing
// edge or the right thumb's leading edge.
func (g Geometry) Anchor(side Side, r *model.ValueRange) float64 {
	if side == Left {
		return g.LeftThumbX(r.Left(), r)
	}
	return g.RightThumbX(r.Right(), r)
}
