// Package state provides session lifecycle tracking.
package state

// Phase represents the session lifecycle phase.
type Phase int

const (
	PhaseIdle       Phase = iota // Created, nothing run yet
	PhaseScript                  // Running the startup script
	PhaseWaiting                 // Waiting for a line of input
	PhaseConsole                 // Running the interactive console
	PhaseTerminated              // Session has ended
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseScript:
		return "script"
	case PhaseWaiting:
		return "waiting"
	case PhaseConsole:
		return "console"
	case PhaseTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
