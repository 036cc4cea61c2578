package engine

// EventHandler processes specific event types
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously at the end of the tick that produced it
	HandleEvent(event GameEvent)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []EventType
}

// EventRouter queues events during a tick and dispatches them to registered handlers
//
// Architecture:
//   - Single-threaded dispatch from the session owner goroutine
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
type EventRouter struct {
	handlers map[EventType][]EventHandler
	queue    []GameEvent
}

// NewEventRouter creates an empty router
func NewEventRouter() *EventRouter {
	return &EventRouter{
		handlers: make(map[EventType][]EventHandler),
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Push queues an event for the next dispatch
func (r *EventRouter) Push(ev GameEvent) {
	r.queue = append(r.queue, ev)
}

// DispatchAll routes pending events in FIFO order and empties the queue
// All handlers for an event are called before moving to the next event
func (r *EventRouter) DispatchAll() {
	events := r.queue
	r.queue = nil
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}

// Pending returns the number of queued events
func (r *EventRouter) Pending() int {
	return len(r.queue)
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
