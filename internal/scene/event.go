package scene

// Listener is invoked with no arguments whenever its event is raised.
type Listener func()

// RemoveCallback unsubscribes the listener it was returned for. Safe to call
// more than once.
type RemoveCallback func()

type eventEntry struct {
	id       int
	listener Listener
}

// Event is an ordered listener registry. Listeners fire in registration order
// and may add or remove listeners while the event is being raised; changes
// take effect on the next Raise.
type Event struct {
	entries []eventEntry
	nextID  int
}

func NewEvent() *Event {
	return &Event{}
}

func (e *Event) AddListener(listener Listener) RemoveCallback {
	id := e.nextID
	e.nextID++
	e.entries = append(e.entries, eventEntry{id: id, listener: listener})

	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		for i, entry := range e.entries {
			if entry.id == id {
				e.entries = append(e.entries[:i], e.entries[i+1:]...)
				break
			}
		}
	}
}

func (e *Event) Raise() {
	// snapshot so mutations during delivery are deferred
	entries := make([]eventEntry, len(e.entries))
	copy(entries, e.entries)
	for _, entry := range entries {
		entry.listener()
	}
}

func (e *Event) NumberOfListeners() int {
	return len(e.entries)
}
