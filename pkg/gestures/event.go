// Package gestures defines pointer events and the router that delivers them
// to listeners.
//
// Hosts translate their native input (touch, mouse, terminal mouse) into
// [PointerEvent] values. Element-scoped handling (a press landing on a
// widget) is done by the widget itself; listeners that must follow a
// pointer anywhere for the duration of a drag register on a [Router].
package gestures

import (
	"fmt"
	"time"
)

// Offset is a position or displacement in logical pixels.
type Offset struct {
	X, Y float64
}

// Sub returns o - other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// PointerPhase is the lifecycle stage of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown is a press (touch-start, mouse button down).
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is a movement while pressed.
	PointerPhaseMove
	// PointerPhaseUp is a release.
	PointerPhaseUp
	// PointerPhaseCancel means the host aborted the interaction.
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a single pointer sample.
type PointerEvent struct {
	PointerID int64
	Position  Offset
	Phase     PointerPhase
	Timestamp time.Time

	defaultPrevented bool
}

// PreventDefault marks the event as consumed so the host skips its default
// action (page scroll for touch moves).
func (e *PointerEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a handler called PreventDefault.
func (e *PointerEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}
