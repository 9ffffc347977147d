package ui

import (
	"image"
	"image/color"
	"io"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	game_log "github.com/ingyamilmolinar/rangeslider/internal/log"
)

var testLogger = game_log.New(io.Discard, game_log.LevelError)

// fakeInput is a scripted pointer source installed through SetInputForTest.
type fakeInput struct {
	x, y    int
	down    bool
	touches map[ebiten.TouchID]image.Point
	blurred bool
}

func installInput(t *testing.T) *fakeInput {
	t.Helper()
	in := &fakeInput{touches: map[ebiten.TouchID]image.Point{}}
	restore := SetInputForTest(
		func() (int, int) { return in.x, in.y },
		func(b ebiten.MouseButton) bool { return b == ebiten.MouseButtonLeft && in.down },
		func() []ebiten.TouchID {
			ids := make([]ebiten.TouchID, 0, len(in.touches))
			for id := range in.touches {
				ids = append(ids, id)
			}
			return ids
		},
		func(id ebiten.TouchID) (int, int) { p := in.touches[id]; return p.X, p.Y },
		func() bool { return !in.blurred },
	)
	t.Cleanup(restore)
	return in
}

func (in *fakeInput) press(x, y int) { in.x, in.y, in.down = x, y, true }
func (in *fakeInput) moveTo(x int)   { in.x = x }
func (in *fakeInput) release()       { in.down = false }

// drawLog captures calls to the drawing primitives.
type drawLog struct {
	rects   []image.Rectangle
	colors  []color.Color
	discs   []image.Rectangle
	texts   []string
	buttons []image.Rectangle
}

func captureDrawing(t *testing.T) *drawLog {
	t.Helper()
	log := &drawLog{}
	oldRect, oldDisc, oldText, oldButton := drawRect, drawDisc, drawText, drawButton
	drawRect = func(_ *ebiten.Image, r image.Rectangle, c color.Color, _ bool) {
		log.rects = append(log.rects, r)
		log.colors = append(log.colors, c)
	}
	drawDisc = func(_ *ebiten.Image, r image.Rectangle, _ color.Color) {
		log.discs = append(log.discs, r)
	}
	drawText = func(_ *ebiten.Image, s string, _, _ int) {
		log.texts = append(log.texts, s)
	}
	drawButton = func(_ *ebiten.Image, r image.Rectangle, _, _ color.Color, _ bool) {
		log.buttons = append(log.buttons, r)
	}
	t.Cleanup(func() {
		drawRect, drawDisc, drawText, drawButton = oldRect, oldDisc, oldText, oldButton
	})
	return log
}

func near(a, b float64) bool { return math.Abs(a-b) <= 1e-9 }

func center(r image.Rectangle) (int, int) {
	return (r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2
}
