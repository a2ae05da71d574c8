package ecs

// Event types the simulation emits for the presentation layer. The game
// over event is one-shot per round; restarted fires on every (re)init.
const (
	EventGameOver  = "game_over"
	EventRestarted = "restarted"
)

// Event is a simulation notification with an optional payload.
type Event struct {
	Type string
	Data any
}

// EventQueue is a simple FIFO drained by the presentation layer each tick.
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

// Drain returns all pending events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
