package slider

import (
	"github.com/ingyamilmolinar/rangeslider/core/model"
	game_log "github.com/ingyamilmolinar/rangeslider/internal/log"
)

// LayoutFunc reports the current track geometry. It is called on every drag
// begin and move, so a resize between moves is always seen.
type LayoutFunc func() Geometry

// Controller is the headless core of a range slider: the value range, one
// drag session per thumb and an optional observer. All methods are meant to
// be called from a single goroutine.
type Controller struct {
	rng      *model.ValueRange
	layout   LayoutFunc
	sessions [2]DragSession
	observer Observer
	logger   *game_log.Logger
}

func NewController(rng *model.ValueRange, layout LayoutFunc, logger *game_log.Logger) *Controller {
	return &Controller{rng: rng, layout: layout, logger: logger}
}

func (c *Controller) Range() *model.ValueRange { return c.rng }

func (c *Controller) Geometry() Geometry { return c.layout() }

// SetObserver registers o, replacing any previous observer. nil unregisters.
func (c *Controller) SetObserver(o Observer) { c.observer = o }

func (c *Controller) Observer() Observer { return c.observer }

func (c *Controller) Session(side Side) DragSession { return c.sessions[side] }

func (c *Controller) Dragging(side Side) bool { return c.sessions[side].Active() }

// Begin starts a drag on side, capturing the thumb edge as anchor. It
// returns false if side is already being dragged.
func (c *Controller) Begin(side Side) bool {
	s := &c.sessions[side]
	if s.Active() {
		return false
	}
	s.begin(c.layout().Anchor(side, c.rng))
	c.logger.Debugf("[DRAG] %s began anchor=%.2f", side, s.Anchor)
	if c.observer != nil {
		c.observer.OnDragBegin(side)
	}
	return true
}

// Move applies a pointer translation, cumulative since Begin, to side. The
// resulting value goes through the range's clamping. Moves on an idle thumb
// are ignored, and so are moves while the layout has no room for the thumbs
// to travel (values are left alone and no update is emitted).
func (c *Controller) Move(side Side, translation float64) bool {
	s := &c.sessions[side]
	if !s.Active() {
		return false
	}
	g := c.layout()
	candidate := s.move(translation)
	if g.Degenerate() {
		c.logger.Debugf("[DRAG] %s move ignored, track too narrow (%.1f)", side, g.TrackLength)
		return false
	}
	v := g.PixelToValue(candidate, c.rng)
	if side == Left {
		v = c.rng.SetLeft(v)
	} else {
		v = c.rng.SetRight(v)
	}
	c.logger.Debugf("[DRAG] %s moved dx=%.2f value=%g", side, translation, v)
	if c.observer != nil {
		c.observer.OnDragUpdate(side)
	}
	return true
}

// End finishes the drag on side. Values already applied are kept.
func (c *Controller) End(side Side) bool {
	return c.finish(side, "ended")
}

// Cancel abandons the drag on side. There is no rollback: the value from
// the last move stays.
func (c *Controller) Cancel(side Side) bool {
	return c.finish(side, "cancelled")
}

func (c *Controller) finish(side Side, how string) bool {
	s := &c.sessions[side]
	if !s.Active() {
		return false
	}
	s.end()
	c.logger.Debugf("[DRAG] %s %s", side, how)
	if c.observer != nil {
		c.observer.OnDragEnd(side)
	}
	return true
}

// CancelAll cancels every active session, left first.
func (c *Controller) CancelAll() {
	for _, side := range Sides {
		c.Cancel(side)
	}
}

// Thumb is the current extent of the thumb on side.
func (c *Controller) Thumb(side Side) Span {
	return c.layout().Thumb(side, c.rng)
}

// Highlight is the current highlight region between the thumb centers.
func (c *Controller) Highlight() Span {
	return c.layout().Highlight(c.rng)
}
