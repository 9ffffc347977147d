package model

import (
	"math"

	game_log "github.com/ingyamilmolinar/rangeslider/internal/log"
	"github.com/ingyamilmolinar/rangeslider/internal/utils"
)

const (
	DefaultMinimum = 0.0
	DefaultMaximum = 1.0
)

// ValueRange holds the selected interval [Left, Right] inside [Minimum, Maximum].
// Every setter validates first and commits once, so
// Minimum <= Left <= Right <= Maximum holds after each call.
// Out-of-range input is clamped, never rejected.
type ValueRange struct {
	minimum float64
	maximum float64
	left    float64
	right   float64
	logger  *game_log.Logger
}

func NewValueRange(logger *game_log.Logger) *ValueRange {
	return &ValueRange{
		minimum: DefaultMinimum,
		maximum: DefaultMaximum,
		left:    DefaultMinimum,
		right:   DefaultMaximum,
		logger:  logger,
	}
}

func (r *ValueRange) Minimum() float64 { return r.minimum }
func (r *ValueRange) Maximum() float64 { return r.maximum }
func (r *ValueRange) Left() float64    { return r.left }
func (r *ValueRange) Right() float64   { return r.right }

// Span is Maximum - Minimum; zero for a collapsed range.
func (r *ValueRange) Span() float64 { return r.maximum - r.minimum }

// SetLeft stores v clamped to [Minimum, Right] and returns the stored value.
// NaN leaves the range untouched.
func (r *ValueRange) SetLeft(v float64) float64 {
	if math.IsNaN(v) {
		r.logger.Debugf("[RANGE] ignored NaN left value")
		return r.left
	}
	nv := utils.Clamp(v, r.minimum, r.right)
	if nv != v {
		r.logger.Debugf("[RANGE] left %g clamped to %g", v, nv)
	}
	r.left = nv
	return nv
}

// SetRight stores v clamped to [Left, Maximum] and returns the stored value.
func (r *ValueRange) SetRight(v float64) float64 {
	if math.IsNaN(v) {
		r.logger.Debugf("[RANGE] ignored NaN right value")
		return r.right
	}
	nv := utils.Clamp(v, r.left, r.maximum)
	if nv != v {
		r.logger.Debugf("[RANGE] right %g clamped to %g", v, nv)
	}
	r.right = nv
	return nv
}

// SetMinimum moves the lower bound (never above Maximum) and re-clamps the
// selected values. Values still inside the new bounds are kept.
// Bounds must be finite; NaN and ±Inf are ignored.
func (r *ValueRange) SetMinimum(v float64) float64 {
	if !finite(v) {
		return r.minimum
	}
	if v > r.maximum {
		r.logger.Debugf("[RANGE] minimum %g above maximum %g, clamped", v, r.maximum)
		v = r.maximum
	}
	r.minimum = v
	r.reclamp()
	return v
}

// SetMaximum moves the upper bound (never below Minimum) and re-clamps the
// selected values. Right is not reset to the new maximum.
func (r *ValueRange) SetMaximum(v float64) float64 {
	if !finite(v) {
		return r.maximum
	}
	if v < r.minimum {
		r.logger.Debugf("[RANGE] maximum %g below minimum %g, clamped", v, r.minimum)
		v = r.minimum
	}
	r.maximum = v
	r.reclamp()
	return v
}

// SetBounds sets both bounds at once, swapping them if given in reverse.
func (r *ValueRange) SetBounds(lo, hi float64) {
	if !finite(lo) || !finite(hi) {
		return
	}
	if lo > hi {
		r.logger.Debugf("[RANGE] bounds [%g,%g] reversed, swapping", lo, hi)
		lo, hi = hi, lo
	}
	r.minimum, r.maximum = lo, hi
	r.reclamp()
}

// Reset selects the whole range.
func (r *ValueRange) Reset() {
	r.left = r.minimum
	r.right = r.maximum
}

func (r *ValueRange) reclamp() {
	r.right = utils.Clamp(r.right, r.minimum, r.maximum)
	r.left = utils.Clamp(r.left, r.minimum, r.right)
}

// Fraction maps v to [0,1] relative to the bounds. A collapsed range maps
// everything to 0.
func (r *ValueRange) Fraction(v float64) float64 {
	span := r.Span()
	if span <= 0 {
		return 0
	}
	return (v - r.minimum) / span
}

// Valid reports whether the ordering invariant holds.
func (r *ValueRange) Valid() bool {
	return r.minimum <= r.left && r.left <= r.right && r.right <= r.maximum
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
