package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	cursorPosition       = ebiten.CursorPosition
	isMouseButtonPressed = ebiten.IsMouseButtonPressed
	touchIDs             = func() []ebiten.TouchID { return ebiten.AppendTouchIDs(nil) }
	touchPosition        = ebiten.TouchPosition
	isFocused            = ebiten.IsFocused
)

// SetInputForTest replaces input functions during tests and returns a function
// to restore the originals.
func SetInputForTest(
	cursor func() (int, int),
	mouse func(ebiten.MouseButton) bool,
	touches func() []ebiten.TouchID,
	touchPos func(ebiten.TouchID) (int, int),
	focused func() bool,
) func() {
	oldCursor := cursorPosition
	oldMouse := isMouseButtonPressed
	oldTouches := touchIDs
	oldTouchPos := touchPosition
	oldFocused := isFocused
	cursorPosition = cursor
	isMouseButtonPressed = mouse
	touchIDs = touches
	touchPosition = touchPos
	isFocused = focused
	return func() {
		cursorPosition = oldCursor
		isMouseButtonPressed = oldMouse
		touchIDs = oldTouches
		touchPosition = oldTouchPos
		isFocused = oldFocused
	}
}

// pointerID identifies one input pointer: the mouse or a touch.
type pointerID int

const mousePointer pointerID = -1

// pollPointers returns the position of every pointer currently held down.
func pollPointers() map[pointerID]image.Point {
	ptrs := make(map[pointerID]image.Point)
	if isMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := cursorPosition()
		ptrs[mousePointer] = image.Pt(x, y)
	}
	for _, id := range touchIDs() {
		x, y := touchPosition(id)
		ptrs[pointerID(id)] = image.Pt(x, y)
	}
	return ptrs
}
