package ui

import (
	"image"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// Ebiten's debug font uses a 6x13 glyph.
	debugCharW = 6  // width of a character drawn by DebugPrintAt
	debugCharH = 13 // height of a character drawn by DebugPrintAt
)

// insetRect returns r shrunk by pad pixels on all sides.
func insetRect(r image.Rectangle, pad int) image.Rectangle {
	return image.Rect(r.Min.X+pad, r.Min.Y+pad, r.Max.X-pad, r.Max.Y-pad)
}

// centeredText returns the top-left corner for s centred in r.
func centeredText(r image.Rectangle, s string) image.Point {
	w := debugCharW * utf8.RuneCountInString(s)
	return image.Pt(r.Min.X+(r.Dx()-w)/2, r.Min.Y+(r.Dy()-debugCharH)/2)
}

// ButtonVisual is implemented by styles capable of drawing a button.
// pressed indicates the mouse button is currently down; hovered indicates the
// cursor is over the control so styles can provide hover feedback.
type ButtonVisual interface {
	Draw(dst *ebiten.Image, r image.Rectangle, pressed, hovered bool)
}

// Button is a clickable rectangle with a text label. OnClick fires once per
// press, on the frame the pointer goes down inside it.
type Button struct {
	r       image.Rectangle
	Text    string
	Style   ButtonVisual
	OnClick func()
	pressed bool
	hovered bool
	wasDown bool
}

// NewButton constructs a button with the given label, style, and optional click handler.
func NewButton(text string, style ButtonVisual, onClick func()) *Button {
	return &Button{Text: text, Style: style, OnClick: onClick}
}

func (b *Button) Rect() image.Rectangle { return b.r }

func (b *Button) SetRect(r image.Rectangle) { b.r = r }

// Draw renders the button and its label.
func (b *Button) Draw(dst *ebiten.Image) {
	if b.Style != nil {
		b.Style.Draw(dst, b.r, b.pressed, b.hovered)
	}
	p := centeredText(b.r, b.Text)
	drawText(dst, b.Text, p.X, p.Y)
}

// Handle processes the pointer at (mx,my). A press that starts outside the
// button and slides onto it does not click.
func (b *Button) Handle(mx, my int, down bool) bool {
	inside := pt(mx, my, b.r)
	b.hovered = inside
	click := down && !b.wasDown && inside
	b.wasDown = down
	if click && b.OnClick != nil {
		b.OnClick()
	}
	b.pressed = down && inside
	return b.pressed
}

// ValueLabel shows a short read-out centred in a box.
type ValueLabel struct {
	r      image.Rectangle
	Text   string
	Style  LabelStyle
	Active bool
}

func NewValueLabel(style LabelStyle) *ValueLabel {
	return &ValueLabel{Style: style}
}

func (l *ValueLabel) Rect() image.Rectangle { return l.r }

func (l *ValueLabel) SetRect(r image.Rectangle) { l.r = r }

func (l *ValueLabel) Draw(dst *ebiten.Image) {
	l.Style.Draw(dst, l.r, l.Active)
	p := centeredText(l.r, l.Text)
	drawText(dst, l.Text, p.X, p.Y)
}

// GridLayout splits a rectangle into rows and columns using fractional
// weights, leaving gap pixels between neighbouring cells.
type GridLayout struct {
	bounds     image.Rectangle
	gap        int
	colWeights []float64
	rowWeights []float64
	colPos     []int
	rowPos     []int
}

// NewGridLayout creates a layout for the given bounds.
func NewGridLayout(b image.Rectangle, gap int, cols, rows []float64) *GridLayout {
	g := &GridLayout{bounds: b, gap: gap, colWeights: cols, rowWeights: rows}
	g.recalc()
	return g
}

// split distributes length over weights and returns len(weights)+1 cut
// positions starting at origin. The last cut is always origin+length.
func split(origin, length int, weights []float64) []int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	pos := make([]int, len(weights)+1)
	x := origin
	for i, w := range weights {
		pos[i] = x
		if total > 0 {
			x += int(float64(length) * (w / total))
		}
	}
	pos[len(weights)] = origin + length
	return pos
}

func (g *GridLayout) recalc() {
	g.colPos = split(g.bounds.Min.X, g.bounds.Dx(), g.colWeights)
	g.rowPos = split(g.bounds.Min.Y, g.bounds.Dy(), g.rowWeights)
}

// Cell returns the rectangle for the specified cell, shrunk by half the gap
// on every inner edge.
func (g *GridLayout) Cell(col, row int) image.Rectangle {
	r := image.Rect(g.colPos[col], g.rowPos[row], g.colPos[col+1], g.rowPos[row+1])
	half := g.gap / 2
	if col > 0 {
		r.Min.X += half
	}
	if col < len(g.colWeights)-1 {
		r.Max.X -= half
	}
	if row > 0 {
		r.Min.Y += half
	}
	if row < len(g.rowWeights)-1 {
		r.Max.Y -= half
	}
	return r
}

// Span returns the rectangle covering columns [c0, c1] of row.
func (g *GridLayout) Span(c0, c1, row int) image.Rectangle {
	return g.Cell(c0, row).Union(g.Cell(c1, row))
}
