package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/rangeslider/core/model"
	"github.com/ingyamilmolinar/rangeslider/core/slider"
	game_log "github.com/ingyamilmolinar/rangeslider/internal/log"
)

// Delegate is notified while the user drags either thumb. Calls happen
// synchronously from RangeSlider.Update.
type Delegate interface {
	OnDragBegin(s *RangeSlider)
	OnDragUpdate(s *RangeSlider)
	OnDragEnd(s *RangeSlider)
}

// DelegateFuncs adapts plain functions to Delegate. Nil fields are skipped.
type DelegateFuncs struct {
	Begin  func(*RangeSlider)
	Update func(*RangeSlider)
	End    func(*RangeSlider)
}

func (f DelegateFuncs) OnDragBegin(s *RangeSlider) {
	if f.Begin != nil {
		f.Begin(s)
	}
}

func (f DelegateFuncs) OnDragUpdate(s *RangeSlider) {
	if f.Update != nil {
		f.Update(s)
	}
}

func (f DelegateFuncs) OnDragEnd(s *RangeSlider) {
	if f.End != nil {
		f.End(s)
	}
}

// thumbBinding ties a thumb view to the pointer currently dragging it.
type thumbBinding struct {
	view    ThumbView
	bound   bool
	pointer pointerID
	startX  int
	lastX   int
}

// RangeSlider is a horizontal two-thumb slider selecting [LeftValue, RightValue]
// within [MinimumValue, MaximumValue].
type RangeSlider struct {
	Name string

	r        image.Rectangle
	rng      *model.ValueRange
	ctrl     *slider.Controller
	thumbs   [2]thumbBinding
	track    TrackStyle
	delegate Delegate
	pressed  map[pointerID]bool // pointers down on the previous Update
	logger   *game_log.Logger
}

func NewRangeSlider(name string, logger *game_log.Logger) *RangeSlider {
	logger = logger.WithField("slider", name)
	s := &RangeSlider{
		Name:    name,
		rng:     model.NewValueRange(logger),
		track:   DefaultTrackStyle(),
		pressed: map[pointerID]bool{},
		logger:  logger,
	}
	s.thumbs[slider.Left].view = NewRoundThumb()
	s.thumbs[slider.Right].view = NewRoundThumb()
	s.ctrl = slider.NewController(s.rng, s.geometry, logger)
	s.ctrl.SetObserver(relay{s})
	return s
}

// relay forwards controller transitions to the delegate with the widget as
// argument.
type relay struct{ s *RangeSlider }

func (r relay) OnDragBegin(slider.Side) {
	if d := r.s.delegate; d != nil {
		d.OnDragBegin(r.s)
	}
}

func (r relay) OnDragUpdate(slider.Side) {
	if d := r.s.delegate; d != nil {
		d.OnDragUpdate(r.s)
	}
}

func (r relay) OnDragEnd(slider.Side) {
	if d := r.s.delegate; d != nil {
		d.OnDragEnd(r.s)
	}
}

// SetDelegate registers d, replacing any previous delegate. nil unregisters.
func (s *RangeSlider) SetDelegate(d Delegate) { s.delegate = d }

func (s *RangeSlider) SetRect(r image.Rectangle) {
	if r != s.r {
		s.logger.Debugf("[SLIDER] resized %v -> %v", s.r, r)
	}
	s.r = r
}

func (s *RangeSlider) Rect() image.Rectangle { return s.r }

func (s *RangeSlider) MinimumValue() float64 { return s.rng.Minimum() }
func (s *RangeSlider) MaximumValue() float64 { return s.rng.Maximum() }
func (s *RangeSlider) LeftValue() float64    { return s.rng.Left() }
func (s *RangeSlider) RightValue() float64   { return s.rng.Right() }

// SetMinimumValue sets the lower bound; the selection is re-clamped, not reset.
func (s *RangeSlider) SetMinimumValue(v float64) float64 { return s.rng.SetMinimum(v) }

// SetMaximumValue sets the upper bound; the selection is re-clamped, not reset.
func (s *RangeSlider) SetMaximumValue(v float64) float64 { return s.rng.SetMaximum(v) }

// SetBounds sets both bounds, swapping them if reversed.
func (s *RangeSlider) SetBounds(lo, hi float64) { s.rng.SetBounds(lo, hi) }

// SetLeftValue stores v clamped to [MinimumValue, RightValue] and returns it.
func (s *RangeSlider) SetLeftValue(v float64) float64 { return s.rng.SetLeft(v) }

// SetRightValue stores v clamped to [LeftValue, MaximumValue] and returns it.
func (s *RangeSlider) SetRightValue(v float64) float64 { return s.rng.SetRight(v) }

// SelectAll moves the thumbs to the bounds.
func (s *RangeSlider) SelectAll() { s.rng.Reset() }

func (s *RangeSlider) TrackStyle() TrackStyle { return s.track }

func (s *RangeSlider) SetTrackHeight(h float64) {
	if h < 0 || math.IsNaN(h) {
		h = 0
	}
	s.track.Height = h
}

func (s *RangeSlider) SetTrackColor(c color.Color)          { s.track.Color = c }
func (s *RangeSlider) SetTrackHighlightColor(c color.Color) { s.track.Highlight = c }

func (s *RangeSlider) Thumb(side slider.Side) ThumbView { return s.thumbs[side].view }

// ReplaceThumb swaps the view used for side. A drag in progress on that side
// is cancelled first, which reaches the delegate as OnDragEnd. Values are
// kept; thumb positions follow from the new view's size. A nil view restores
// the default round thumb.
func (s *RangeSlider) ReplaceThumb(side slider.Side, v ThumbView) {
	if v == nil {
		v = NewRoundThumb()
	}
	b := &s.thumbs[side]
	if b.bound {
		s.ctrl.Cancel(side)
		// the pointer stays down but must not re-grab the new view
		s.pressed[b.pointer] = true
	}
	*b = thumbBinding{view: v}
	s.logger.Debugf("[SLIDER] %s thumb replaced", side)
}

// Dragging reports whether either thumb is being dragged.
func (s *RangeSlider) Dragging() bool {
	return s.ctrl.Dragging(slider.Left) || s.ctrl.Dragging(slider.Right)
}

// Controller exposes the headless state machine.
func (s *RangeSlider) Controller() *slider.Controller { return s.ctrl }

// thumbWidth is the width reserved at each end of the track: the wider of
// the two thumb views.
func (s *RangeSlider) thumbWidth() float64 {
	lw, _ := s.thumbs[slider.Left].view.Size()
	rw, _ := s.thumbs[slider.Right].view.Size()
	return math.Max(lw, rw)
}

func (s *RangeSlider) geometry() slider.Geometry {
	return slider.Geometry{TrackLength: float64(s.r.Dx()), ThumbWidth: s.thumbWidth()}
}

// ThumbRect is the screen rectangle of the thumb on side.
func (s *RangeSlider) ThumbRect(side slider.Side) image.Rectangle {
	span := s.ctrl.Thumb(side)
	_, h := s.thumbs[side].view.Size()
	y0, y1 := centeredBand(s.r, h)
	// a thumb narrower than the reserved width is centred in its slot
	w, _ := s.thumbs[side].view.Size()
	pad := (span.Width() - w) / 2
	return spanRect(s.r.Min.X, span.X0+pad, span.X1-pad, y0, y1)
}

// TrackRect is the full-width track band.
func (s *RangeSlider) TrackRect() image.Rectangle {
	y0, y1 := centeredBand(s.r, s.track.Height)
	return image.Rect(s.r.Min.X, y0, s.r.Max.X, y1)
}

// HighlightRect spans from the left thumb's center to the right thumb's center.
func (s *RangeSlider) HighlightRect() image.Rectangle {
	h := s.ctrl.Highlight()
	y0, y1 := centeredBand(s.r, s.track.Height)
	return spanRect(s.r.Min.X, h.X0, h.X1, y0, y1)
}

// Update polls mouse and touch input and drives both thumbs. It returns true
// while a thumb is captured by a pointer.
func (s *RangeSlider) Update() bool {
	if !isFocused() {
		if s.Dragging() {
			s.logger.Debugf("[SLIDER] focus lost, cancelling drags")
		}
		s.cancelAll()
		s.pressed = map[pointerID]bool{}
		return false
	}

	ptrs := pollPointers()

	for _, side := range slider.Sides {
		b := &s.thumbs[side]
		if !b.bound {
			continue
		}
		p, ok := ptrs[b.pointer]
		if !ok {
			s.ctrl.End(side)
			b.bound = false
			continue
		}
		if p.X != b.lastX {
			b.lastX = p.X
			s.ctrl.Move(side, float64(p.X-b.startX))
		}
	}

	for id, p := range ptrs {
		if s.pressed[id] || s.captured(id) {
			continue
		}
		s.press(id, p)
	}

	next := make(map[pointerID]bool, len(ptrs))
	for id := range ptrs {
		next[id] = true
	}
	s.pressed = next
	return s.Dragging()
}

func (s *RangeSlider) captured(id pointerID) bool {
	for _, b := range s.thumbs {
		if b.bound && b.pointer == id {
			return true
		}
	}
	return false
}

// press binds a newly pressed pointer to the thumb under it. The right thumb
// is drawn last, so it is tested first.
func (s *RangeSlider) press(id pointerID, p image.Point) {
	for _, side := range []slider.Side{slider.Right, slider.Left} {
		b := &s.thumbs[side]
		if b.bound || !pt(p.X, p.Y, s.ThumbRect(side)) {
			continue
		}
		if !s.ctrl.Begin(side) {
			continue
		}
		b.bound = true
		b.pointer = id
		b.startX = p.X
		b.lastX = p.X
		return
	}
}

func (s *RangeSlider) cancelAll() {
	for _, side := range slider.Sides {
		if s.thumbs[side].bound {
			s.ctrl.Cancel(side)
			s.thumbs[side].bound = false
		}
	}
}

// Draw renders the track, the highlight and both thumbs.
func (s *RangeSlider) Draw(dst *ebiten.Image) {
	s.track.Draw(dst, s.TrackRect(), s.HighlightRect())
	for _, side := range slider.Sides {
		s.thumbs[side].view.Draw(dst, s.ThumbRect(side), s.ctrl.Dragging(side))
	}
}
