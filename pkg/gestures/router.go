package gestures

import (
	"sort"
	"sync"

	"github.com/go-drift/carousel/pkg/errors"
)

// Handler receives a pointer event. Handlers may call PreventDefault.
type Handler func(event *PointerEvent)

// Router is a host-wide pointer listener registry, the equivalent of
// window-level listeners in a browser. Listeners run in registration order.
// Each listener is isolated: a panic is recovered and reported through
// errors.ReportPanic and the remaining listeners still run.
type Router struct {
	mu        sync.Mutex
	listeners map[PointerPhase]map[int]Handler
	nextID    int
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{listeners: make(map[PointerPhase]map[int]Handler)}
}

// Listen registers h for events of the given phase. Returns a function that
// removes the listener; calling it more than once is safe.
func (r *Router) Listen(phase PointerPhase, h Handler) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	if r.listeners[phase] == nil {
		r.listeners[phase] = make(map[int]Handler)
	}
	r.listeners[phase][id] = h
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.listeners[phase], id)
	}
}

// Dispatch delivers event to every listener registered for its phase and
// reports whether any of them prevented the default action.
func (r *Router) Dispatch(event *PointerEvent) bool {
	for _, h := range r.snapshot(event.Phase) {
		r.call(h, event)
	}
	return event.DefaultPrevented()
}

func (r *Router) call(h Handler, event *PointerEvent) {
	defer errors.Recover("gestures.Router.Dispatch")
	h(event)
}

func (r *Router) snapshot(phase PointerPhase) []Handler {
	r.mu.Lock()
	defer r.mu.Unlock()
	byID := r.listeners[phase]
	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	handlers := make([]Handler, len(ids))
	for i, id := range ids {
		handlers[i] = byID[id]
	}
	return handlers
}

// ListenerCount returns the number of registered listeners across phases.
func (r *Router) ListenerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, byID := range r.listeners {
		n += len(byID)
	}
	return n
}
