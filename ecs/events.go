package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// DragEventKind identifies drag lifecycle events.
type DragEventKind string

const (
	DragEventStarted  DragEventKind = "drag_started"
	DragEventReleased DragEventKind = "drag_released"
)

// DragEvent is emitted when an element is picked up or let go.
type DragEvent struct {
	Entity Entity
	Kind   DragEventKind
	X, Y   float64
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Flush drops anything nobody drained this frame.
func (q *EventQueue) Flush() {
	if q == nil {
		return
	}
	q.items = nil
}
