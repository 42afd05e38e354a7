package ecs

type EventType string

// EventLevelRequested carries the path of the next level to load.
const EventLevelRequested EventType = "level_requested"

// Event is posted by systems and handled by the game loop after the
// scheduler has run.
type Event struct {
	Type EventType
	Data any
}

// EventQueue is first in, first out. A nil queue drops pushes.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain hands back the pending events in push order and empties the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
