package pipeline

// EventKind identifies an edge-triggered movement notification.
type EventKind int

const (
	EventLanded EventKind = iota
	EventJumped
	EventStartedMovement
	EventFinishedMovement
	EventStartedInput
	EventFinishedInput
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventLanded:
		return "Landed"
	case EventJumped:
		return "Jumped"
	case EventStartedMovement:
		return "StartedMovement"
	case EventFinishedMovement:
		return "FinishedMovement"
	case EventStartedInput:
		return "StartedInput"
	case EventFinishedInput:
		return "FinishedInput"
	default:
		return "Unknown"
	}
}

// Event is one edge notification. Source is the pipeline that raised it.
type Event struct {
	Kind     EventKind
	EntityID string
	Tick     uint64
	Source   *Pipeline
}

// Handler receives events synchronously.
type Handler func(Event)

type subscription struct {
	id int
	fn Handler
}

// observers is a per-kind observer list dispatched in subscription order.
type observers struct {
	nextID   int
	handlers map[EventKind][]subscription
}

func (o *observers) subscribe(kind EventKind, fn Handler) func() {
	if fn == nil {
		return func() {}
	}
	if o.handlers == nil {
		o.handlers = make(map[EventKind][]subscription)
	}
	o.nextID++
	id := o.nextID
	o.handlers[kind] = append(o.handlers[kind], subscription{id: id, fn: fn})

	return func() {
		subs := o.handlers[kind]
		for i, s := range subs {
			if s.id == id {
				o.handlers[kind] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

func (o *observers) dispatch(e Event) {
	subs := o.handlers[e.Kind]
	if len(subs) == 0 {
		return
	}
	// Handlers may unsubscribe while being dispatched.
	snapshot := make([]subscription, len(subs))
	copy(snapshot, subs)
	for _, s := range snapshot {
		s.fn(e)
	}
}
