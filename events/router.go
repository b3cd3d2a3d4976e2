package events

// Handler processes specific event types within a context T
// Collaborators implement this interface to receive routed events
type Handler[T any] interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase
	HandleEvent(ctx T, event GameEvent)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []EventType
}

// HandlerFunc adapts a function to Handler for the listed types
type HandlerFunc[T any] struct {
	Types []EventType
	Fn    func(ctx T, event GameEvent)
}

func (h HandlerFunc[T]) HandleEvent(ctx T, event GameEvent) { h.Fn(ctx, event) }

func (h HandlerFunc[T]) EventTypes() []EventType { return h.Types }

// Router fans queued events out to handlers after each simulation step
// Dispatch runs on the frame loop goroutine; handlers for a type run in registration order
type Router[T any] struct {
	byType [eventTypeCount][]Handler[T]
	queue  *Queue
}

func NewRouter[T any](queue *Queue) *Router[T] {
	return &Router[T]{queue: queue}
}

// Register subscribes handler to each of its declared types
// Unknown types are ignored; a type listed twice still delivers once
func (r *Router[T]) Register(handler Handler[T]) {
	var seen [eventTypeCount]bool
	for _, t := range handler.EventTypes() {
		if t < 0 || t >= eventTypeCount || seen[t] {
			continue
		}
		seen[t] = true
		r.byType[t] = append(r.byType[t], handler)
	}
}

// DispatchAll drains the queue in FIFO order; returns the number of events consumed
// Events pushed by handlers stay queued for the next frame
func (r *Router[T]) DispatchAll(ctx T) int {
	pending := r.queue.Consume()
	for _, ev := range pending {
		if ev.Type < 0 || ev.Type >= eventTypeCount {
			continue
		}
		for _, h := range r.byType[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
	return len(pending)
}

// HandlerCount returns the number of handlers subscribed to t
func (r *Router[T]) HandlerCount(t EventType) int {
	if t < 0 || t >= eventTypeCount {
		return 0
	}
	return len(r.byType[t])
}
