package testing

import (
	"github.com/go-drift/carousel/pkg/gestures"
)

// pointerState tracks the last position of a pressed pointer.
type pointerState struct {
	position gestures.Offset
}

func (t *Tester) allocPointerID() int {
	t.nextID++
	return t.nextID
}

// Center returns the center of the viewport.
func (t *Tester) Center() gestures.Offset {
	return gestures.Offset{X: t.width / 2, Y: t.height / 2}
}

// DragFrom simulates a press at start, a single move by delta and a
// release at the end point. Returns whether the move had its default
// action prevented.
func (t *Tester) DragFrom(start, delta gestures.Offset) bool {
	id := t.allocPointerID()
	t.SendPointerDown(start, id)
	end := gestures.Offset{X: start.X + delta.X, Y: start.Y + delta.Y}
	prevented := t.SendPointerMove(end, id)
	t.SendPointerUp(end, id)
	return prevented
}

// DragBy simulates a drag from the viewport center.
func (t *Tester) DragBy(dx, dy float64) bool {
	return t.DragFrom(t.Center(), gestures.Offset{X: dx, Y: dy})
}

// Fling simulates a drag delivered as steps intermediate moves.
func (t *Tester) Fling(start, delta gestures.Offset, steps int) {
	if steps < 1 {
		steps = 1
	}
	id := t.allocPointerID()
	t.SendPointerDown(start, id)
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		t.SendPointerMove(gestures.Offset{
			X: start.X + delta.X*frac,
			Y: start.Y + delta.Y*frac,
		}, id)
		t.Pump()
	}
	t.SendPointerUp(gestures.Offset{X: start.X + delta.X, Y: start.Y + delta.Y}, id)
}

// SendPointerDown sends a press at pos. Returns whether the default
// action was prevented.
func (t *Tester) SendPointerDown(pos gestures.Offset, pointerID int) bool {
	t.pointers[pointerID] = &pointerState{position: pos}
	return t.send(gestures.PointerPhaseDown, pos, pointerID)
}

// SendPointerMove sends a move to pos.
func (t *Tester) SendPointerMove(pos gestures.Offset, pointerID int) bool {
	if state := t.pointers[pointerID]; state != nil {
		state.position = pos
	}
	return t.send(gestures.PointerPhaseMove, pos, pointerID)
}

// SendPointerUp sends a release at pos.
func (t *Tester) SendPointerUp(pos gestures.Offset, pointerID int) bool {
	delete(t.pointers, pointerID)
	return t.send(gestures.PointerPhaseUp, pos, pointerID)
}

// SendPointerCancel cancels the pointer at its last known position.
func (t *Tester) SendPointerCancel(pointerID int) bool {
	var pos gestures.Offset
	if state := t.pointers[pointerID]; state != nil {
		pos = state.position
	}
	delete(t.pointers, pointerID)
	return t.send(gestures.PointerPhaseCancel, pos, pointerID)
}

func (t *Tester) send(phase gestures.PointerPhase, pos gestures.Offset, pointerID int) bool {
	return t.carousel.HandlePointer(&gestures.PointerEvent{
		PointerID: int64(pointerID),
		Position:  pos,
		Phase:     phase,
		Timestamp: t.clock.Now(),
	})
}
