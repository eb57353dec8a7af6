package playback

// EventType represents a playback event type.
type EventType int

const (
	EventStateChanged   EventType = iota // Command moved the player to another state
	EventStateUnchanged                  // Command left the state as it was
)

// String returns the string representation of the event type.
func (e EventType) String() string {
	switch e {
	case EventStateChanged:
		return "state_changed"
	case EventStateUnchanged:
		return "state_unchanged"
	default:
		return "unknown"
	}
}

// Event represents the effect of a single command.
type Event struct {
	Type       EventType
	Transition Transition
	Message    string // Resolved message text
	State      State  // State after the command
}

// Announcer receives one event per dispatched command.
type Announcer interface {
	Announce(Event)
}

// AnnouncerFunc adapts a function to Announcer.
type AnnouncerFunc func(Event)

// Announce calls f(e).
func (f AnnouncerFunc) Announce(e Event) {
	f(e)
}
