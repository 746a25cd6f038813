package game

type EventType int

const (
	EventTurn EventType = iota // direction-change request from input
	EventQuit                  // window close or Escape
)

type Event struct {
	Type EventType
	Dir  Direction // valid for EventTurn
}

// EventQueue collects the frame's discrete input events. Everything runs
// on one thread: input pushes during polling, the loop drains once per
// frame in arrival order.
type EventQueue struct {
	events []Event
}

func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns the queued events and empties the queue. The returned
// slice is only valid until the next Push.
func (q *EventQueue) Drain() []Event {
	out := q.events
	q.events = q.events[:0]
	return out
}
