package window

import (
	"math"
	"time"

	"github.com/go-drift/carousel/pkg/gestures"
)

// clickSlop is how far a press may travel and still count as a click.
const clickSlop = 4

// pointerSample is one pointer's state for a single frame.
type pointerSample struct {
	id       int64
	position gestures.Offset
}

type pointerState struct {
	start gestures.Offset
	last  gestures.Offset
}

// pointerTracker turns per-frame polled pointer state into down, move and
// up events. Ebiten reports what is pressed now; transitions are derived
// by comparing with the previous frame.
type pointerTracker struct {
	active map[int64]*pointerState
}

func newPointerTracker() *pointerTracker {
	return &pointerTracker{active: make(map[int64]*pointerState)}
}

// update emits events for the pressed pointers in samples. Pointers absent
// from samples are released at their last position. onClick is called for
// releases that stayed within clickSlop of the press.
func (t *pointerTracker) update(samples []pointerSample, now time.Time, emit func(*gestures.PointerEvent), onClick func(gestures.Offset)) {
	seen := make(map[int64]bool, len(samples))
	for _, s := range samples {
		seen[s.id] = true
		st, ok := t.active[s.id]
		if !ok {
			t.active[s.id] = &pointerState{start: s.position, last: s.position}
			emit(&gestures.PointerEvent{PointerID: s.id, Position: s.position, Phase: gestures.PointerPhaseDown, Timestamp: now})
			continue
		}
		if s.position == st.last {
			continue
		}
		st.last = s.position
		emit(&gestures.PointerEvent{PointerID: s.id, Position: s.position, Phase: gestures.PointerPhaseMove, Timestamp: now})
	}

	for id, st := range t.active {
		if seen[id] {
			continue
		}
		delete(t.active, id)
		emit(&gestures.PointerEvent{PointerID: id, Position: st.last, Phase: gestures.PointerPhaseUp, Timestamp: now})
		d := st.last.Sub(st.start)
		if onClick != nil && math.Hypot(d.X, d.Y) <= clickSlop {
			onClick(st.last)
		}
	}
}

// cancelAll releases every pointer as cancelled, used when the window
// loses focus mid-drag.
func (t *pointerTracker) cancelAll(now time.Time, emit func(*gestures.PointerEvent)) {
	for id, st := range t.active {
		delete(t.active, id)
		emit(&gestures.PointerEvent{PointerID: id, Position: st.last, Phase: gestures.PointerPhaseCancel, Timestamp: now})
	}
}
