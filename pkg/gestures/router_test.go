package gestures

import (
	"testing"

	"github.com/go-drift/carousel/pkg/errors"
)

func TestRouter_DispatchInRegistrationOrder(t *testing.T) {
	r := NewRouter()
	var order []int
	for i := range 3 {
		r.Listen(PointerPhaseMove, func(*PointerEvent) { order = append(order, i) })
	}
	r.Listen(PointerPhaseUp, func(*PointerEvent) { t.Error("up listener got a move event") })

	r.Dispatch(&PointerEvent{Phase: PointerPhaseMove})

	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("order = %v, want [0 1 2]", order)
	}
}

func TestRouter_PreventDefault(t *testing.T) {
	r := NewRouter()
	r.Listen(PointerPhaseMove, func(e *PointerEvent) { e.PreventDefault() })

	if !r.Dispatch(&PointerEvent{Phase: PointerPhaseMove}) {
		t.Error("expected default to be prevented")
	}
	if r.Dispatch(&PointerEvent{Phase: PointerPhaseUp}) {
		t.Error("no listener should have prevented the up event")
	}
}

func TestRouter_RemoveListener(t *testing.T) {
	r := NewRouter()
	calls := 0
	remove := r.Listen(PointerPhaseDown, func(*PointerEvent) { calls++ })
	if r.ListenerCount() != 1 {
		t.Fatalf("ListenerCount = %d, want 1", r.ListenerCount())
	}

	remove()
	remove()
	r.Dispatch(&PointerEvent{Phase: PointerPhaseDown})

	if calls != 0 {
		t.Errorf("removed listener called %d times", calls)
	}
	if r.ListenerCount() != 0 {
		t.Errorf("ListenerCount = %d, want 0", r.ListenerCount())
	}
}

func TestRouter_ListenerRemovingItselfDuringDispatch(t *testing.T) {
	r := NewRouter()
	var remove func()
	calls := 0
	remove = r.Listen(PointerPhaseUp, func(*PointerEvent) {
		calls++
		remove()
	})

	r.Dispatch(&PointerEvent{Phase: PointerPhaseUp})
	r.Dispatch(&PointerEvent{Phase: PointerPhaseUp})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRouter_PanicIsolated(t *testing.T) {
	var reported *errors.PanicError
	defer errors.SetHandler(errors.SetHandler(&panicRecorder{fn: func(p *errors.PanicError) { reported = p }}))

	r := NewRouter()
	r.Listen(PointerPhaseMove, func(*PointerEvent) { panic("bad listener") })
	second := false
	r.Listen(PointerPhaseMove, func(*PointerEvent) { second = true })

	r.Dispatch(&PointerEvent{Phase: PointerPhaseMove})

	if reported == nil || reported.Value != "bad listener" {
		t.Errorf("panic not reported: %+v", reported)
	}
	if !second {
		t.Error("listener after the panicking one did not run")
	}
}

func TestPointerPhaseString(t *testing.T) {
	if PointerPhaseCancel.String() != "cancel" {
		t.Errorf("String() = %q", PointerPhaseCancel.String())
	}
	if PointerPhase(9).String() != "PointerPhase(9)" {
		t.Errorf("String() = %q", PointerPhase(9).String())
	}
}

type panicRecorder struct {
	fn func(*errors.PanicError)
}

func (p *panicRecorder) HandleError(*errors.CarouselError) {}

func (p *panicRecorder) HandlePanic(err *errors.PanicError) { p.fn(err) }
