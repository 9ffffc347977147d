package ui

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/rangeslider/core/slider"
)

func newTestSlider(t *testing.T, min, max float64, width int) (*RangeSlider, *[]string) {
	t.Helper()
	s := NewRangeSlider("test", testLogger)
	s.SetRect(image.Rect(0, 0, width, 40))
	s.SetBounds(min, max)
	s.SelectAll()
	var events []string
	s.SetDelegate(DelegateFuncs{
		Begin:  func(*RangeSlider) { events = append(events, "begin") },
		Update: func(*RangeSlider) { events = append(events, "update") },
		End:    func(*RangeSlider) { events = append(events, "end") },
	})
	return s, &events
}

func TestMouseDragLeftClampsToRight(t *testing.T) {
	in := installInput(t)
	s, events := newTestSlider(t, 0, 5, 300)

	if r := s.ThumbRect(slider.Left); r != image.Rect(0, 10, 20, 30) {
		t.Fatalf("left thumb rect = %v", r)
	}
	in.press(10, 20)
	if !s.Update() {
		t.Fatalf("press on left thumb not captured")
	}
	// 364px right asks for 7 on a 260px usable track
	in.moveTo(374)
	s.Update()
	in.release()
	if s.Update() {
		t.Fatalf("still dragging after release")
	}

	if s.LeftValue() != 5 || s.RightValue() != 5 {
		t.Fatalf("left/right=%v/%v want 5/5", s.LeftValue(), s.RightValue())
	}
	if diff := cmp.Diff([]string{"begin", "update", "end"}, *events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestMouseDragRightToMiddle(t *testing.T) {
	in := installInput(t)
	// 999px usable: one pixel per unit of [1,1000]
	s, events := newTestSlider(t, 1, 1000, 1039)

	cx, cy := center(s.ThumbRect(slider.Right))
	in.press(cx, cy)
	s.Update()
	in.moveTo(cx - 500)
	s.Update()

	if math.Abs(s.RightValue()-500) > 1e-9 {
		t.Fatalf("right=%v want 500", s.RightValue())
	}
	if s.LeftValue() != 1 {
		t.Fatalf("left moved to %v", s.LeftValue())
	}
	hl := s.HighlightRect()
	lx, _ := center(s.ThumbRect(slider.Left))
	rx, _ := center(s.ThumbRect(slider.Right))
	if hl.Min.X != lx || hl.Max.X != rx {
		t.Fatalf("highlight %v does not span centers %d..%d", hl, lx, rx)
	}
	if hl.Dx() != 519 {
		t.Fatalf("highlight width=%d want 519", hl.Dx())
	}
	if diff := cmp.Diff([]string{"begin", "update"}, *events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestResizeMovesThumbsNotValues(t *testing.T) {
	s, events := newTestSlider(t, 0, 100, 300)
	s.SetRightValue(60)
	s.SetLeftValue(25)
	if r := s.ThumbRect(slider.Left); r.Max.X != 85 {
		t.Fatalf("left thumb trailing edge=%d want 85", r.Max.X)
	}

	s.SetRect(image.Rect(0, 0, 150, 40))

	if s.LeftValue() != 25 || s.RightValue() != 60 {
		t.Fatalf("values changed on resize: %v %v", s.LeftValue(), s.RightValue())
	}
	if r := s.ThumbRect(slider.Left); r.Max.X != 48 {
		t.Fatalf("left thumb trailing edge after resize=%d want 48", r.Max.X)
	}
	if r := s.ThumbRect(slider.Right); r.Min.X != 86 {
		t.Fatalf("right thumb leading edge after resize=%d want 86", r.Min.X)
	}
	if len(*events) != 0 {
		t.Fatalf("resize notified delegate: %v", *events)
	}
}

func TestFocusLossCancelsWithoutRollback(t *testing.T) {
	in := installInput(t)
	s, events := newTestSlider(t, 0, 260, 300)

	in.press(290, 20)
	s.Update()
	in.moveTo(190)
	s.Update()
	in.blurred = true
	s.Update()
	if s.Dragging() {
		t.Fatalf("drag survived focus loss")
	}
	if !near(s.RightValue(), 160) {
		t.Fatalf("right=%v want 160 after cancel", s.RightValue())
	}

	in.blurred = false
	in.release()
	s.Update()
	cx, cy := center(s.ThumbRect(slider.Right))
	in.press(cx, cy)
	s.Update()
	if a := s.Controller().Session(slider.Right).Anchor; !near(a, 180) {
		t.Fatalf("anchor=%v want fresh 180", a)
	}
	in.moveTo(cx + 10)
	s.Update()
	if !near(s.RightValue(), 170) {
		t.Fatalf("right=%v want 170", s.RightValue())
	}

	want := []string{"begin", "update", "end", "begin", "update"}
	if diff := cmp.Diff(want, *events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestPressOffThumbDoesNotGrab(t *testing.T) {
	in := installInput(t)
	s, events := newTestSlider(t, 0, 1, 300)

	in.press(150, 20)
	if s.Update() {
		t.Fatalf("press on bare track captured")
	}
	in.moveTo(10)
	if s.Update() {
		t.Fatalf("pointer sliding onto a thumb grabbed it")
	}
	if len(*events) != 0 {
		t.Fatalf("unexpected events %v", *events)
	}
}

func TestReplaceThumbDuringDrag(t *testing.T) {
	in := installInput(t)
	s, events := newTestSlider(t, 0, 260, 300)

	in.press(10, 20)
	s.Update()
	in.moveTo(60)
	s.Update()
	if !near(s.LeftValue(), 50) {
		t.Fatalf("left=%v want 50", s.LeftValue())
	}

	box := NewBoxThumb(12, 28)
	s.ReplaceThumb(slider.Left, box)
	if s.Thumb(slider.Left) != ThumbView(box) {
		t.Fatalf("thumb not replaced")
	}
	if s.Dragging() {
		t.Fatalf("drag survived thumb replacement")
	}
	if r := s.ThumbRect(slider.Left); r != image.Rect(54, 6, 66, 34) {
		t.Fatalf("box thumb rect=%v", r)
	}
	// still held over the new thumb: must not re-grab
	s.Update()
	if s.Dragging() {
		t.Fatalf("held pointer re-grabbed the new thumb")
	}
	if !near(s.LeftValue(), 50) {
		t.Fatalf("left changed to %v", s.LeftValue())
	}
	in.release()
	s.Update()

	want := []string{"begin", "update", "end"}
	if diff := cmp.Diff(want, *events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}

	wide := &RoundThumb{Diameter: 30, Fill: color.Black}
	s.ReplaceThumb(slider.Left, wide)
	s.ReplaceThumb(slider.Right, nil)
	s.SelectAll()
	if r := s.ThumbRect(slider.Left); r.Min.X != 0 || r.Max.X != 30 {
		t.Fatalf("left thumb with 30px view = %v", r)
	}
	if w, _ := s.Thumb(slider.Right).Size(); w != defaultThumbSize {
		t.Fatalf("nil view did not restore default thumb, width %v", w)
	}
}

func TestTwoTouchesDragBothThumbs(t *testing.T) {
	in := installInput(t)
	s, _ := newTestSlider(t, 0, 260, 300)

	in.touches[1] = image.Pt(10, 20)
	in.touches[2] = image.Pt(290, 20)
	s.Update()
	if !s.Controller().Dragging(slider.Left) || !s.Controller().Dragging(slider.Right) {
		t.Fatalf("both thumbs should be captured")
	}
	in.touches[1] = image.Pt(110, 20)
	in.touches[2] = image.Pt(190, 20)
	s.Update()
	if !near(s.LeftValue(), 100) || !near(s.RightValue(), 160) {
		t.Fatalf("left/right=%v/%v want 100/160", s.LeftValue(), s.RightValue())
	}
	delete(in.touches, ebiten.TouchID(1))
	s.Update()
	if s.Controller().Dragging(slider.Left) || !s.Controller().Dragging(slider.Right) {
		t.Fatalf("only the lifted touch should end its drag")
	}
	delete(in.touches, ebiten.TouchID(2))
	if s.Update() {
		t.Fatalf("still dragging with no touches")
	}
}

func TestProgrammaticSettersClampSilently(t *testing.T) {
	s, events := newTestSlider(t, 0, 10, 300)
	s.SetRightValue(6)
	if got := s.SetLeftValue(s.MaximumValue() + 100); got != 6 {
		t.Fatalf("SetLeftValue(max+100)=%v want 6", got)
	}
	if got := s.SetRightValue(s.MinimumValue() - 100); got != 6 {
		t.Fatalf("SetRightValue(min-100)=%v want 6", got)
	}
	before := s.ThumbRect(slider.Left)
	s.SetLeftValue(s.LeftValue())
	if s.ThumbRect(slider.Left) != before {
		t.Fatalf("no-op set moved the thumb")
	}
	s.SetMaximumValue(20)
	if s.RightValue() != 6 {
		t.Fatalf("raising maximum reset right to %v", s.RightValue())
	}
	if len(*events) != 0 {
		t.Fatalf("programmatic sets notified delegate: %v", *events)
	}
}

func TestDrawRendersTrackHighlightAndThumbs(t *testing.T) {
	log := captureDrawing(t)
	s, _ := newTestSlider(t, 0, 1, 300)
	s.SetRightValue(0.75)
	s.SetLeftValue(0.25)
	hl := color.RGBA{255, 0, 0, 255}
	s.SetTrackHighlightColor(hl)

	s.Draw(nil)

	wantRects := []image.Rectangle{image.Rect(0, 15, 300, 25), image.Rect(75, 15, 225, 25)}
	if diff := cmp.Diff(wantRects, log.rects); diff != "" {
		t.Fatalf("rects mismatch (-want +got):\n%s", diff)
	}
	if log.colors[1] != color.Color(hl) {
		t.Fatalf("highlight drawn with %v", log.colors[1])
	}
	wantDiscs := []image.Rectangle{image.Rect(65, 10, 85, 30), image.Rect(215, 10, 235, 30)}
	if diff := cmp.Diff(wantDiscs, log.discs); diff != "" {
		t.Fatalf("thumbs mismatch (-want +got):\n%s", diff)
	}
}

func TestDegenerateRectPinsThumbs(t *testing.T) {
	in := installInput(t)
	s, events := newTestSlider(t, 0, 10, 30)
	s.SetLeftValue(3)
	l, r := s.ThumbRect(slider.Left), s.ThumbRect(slider.Right)
	if l.Max.X != r.Min.X {
		t.Fatalf("thumbs not pinned: %v %v", l, r)
	}
	cx, cy := center(r)
	in.press(cx, cy)
	s.Update()
	in.moveTo(cx - 5)
	s.Update()
	if s.LeftValue() != 3 || s.RightValue() != 10 {
		t.Fatalf("values changed on degenerate track: %v %v", s.LeftValue(), s.RightValue())
	}
	if diff := cmp.Diff([]string{"begin"}, *events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestSetTrackHeight(t *testing.T) {
	s, _ := newTestSlider(t, 0, 1, 300)
	s.SetTrackHeight(-4)
	if s.TrackStyle().Height != 0 {
		t.Fatalf("negative height stored: %v", s.TrackStyle().Height)
	}
	s.SetTrackHeight(6)
	if r := s.TrackRect(); r.Dy() != 6 || r.Min.Y != 17 {
		t.Fatalf("track rect=%v", r)
	}
}
