package game

type EventType int

const (
	EventRunStarted EventType = iota
	EventThrottle             // Data: 1 while accelerating, 0 otherwise
	EventGameOver             // Data: final score
	EventRestart
)

func (t EventType) String() string {
	switch t {
	case EventRunStarted:
		return "run_started"
	case EventThrottle:
		return "throttle"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	}
	return "unknown"
}

type Event struct {
	Type EventType
	Car  string
	Data int
}

type EventHandler func(Event)

// EventBus dispatches synchronously on the emitting goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
