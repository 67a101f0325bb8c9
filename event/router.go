package event

import "context"

// Handler processes routed action events
type Handler interface {
	// HandleEvent processes a single event, called synchronously during dispatch
	HandleEvent(ctx context.Context, ev Event)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Router dispatches queued events to registered handlers
//   - single-threaded dispatch from the tick loop
//   - handlers for the same type run in registration order
type Router struct {
	handlers map[EventType][]Handler
	queue    *Queue
	buf      []Event
}

// NewRouter creates a router draining queue
func NewRouter(queue *Queue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
		buf:      make([]Event, 0, queueSize),
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(h Handler) {
	for _, t := range h.EventTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// DispatchAll consumes pending events and routes them in FIFO order
// Returns the number of events consumed
func (r *Router) DispatchAll(ctx context.Context) int {
	r.buf = r.queue.Drain(r.buf)
	for _, ev := range r.buf {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
	return len(r.buf)
}

// HasHandlers reports whether any handler is registered for t
func (r *Router) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}
