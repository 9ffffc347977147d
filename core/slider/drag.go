package slider

// Side names one of the two thumbs.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Sides lists both thumbs in drawing order.
var Sides = [...]Side{Left, Right}

type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// DragSession is the per-thumb gesture state. The anchor is captured once at
// Begin; every move is applied as anchor + translation, where translation is
// cumulative since Begin.
type DragSession struct {
	State       DragState
	Anchor      float64
	Translation float64
}

func (d DragSession) Active() bool { return d.State == Dragging }

// Candidate is the pixel position requested by the last move.
func (d DragSession) Candidate() float64 { return d.Anchor + d.Translation }

func (d *DragSession) begin(anchor float64) {
	*d = DragSession{State: Dragging, Anchor: anchor}
}

func (d *DragSession) move(translation float64) float64 {
	d.Translation = translation
	return d.Candidate()
}

func (d *DragSession) end() {
	*d = DragSession{}
}
