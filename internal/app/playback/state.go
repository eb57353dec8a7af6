// Package playback provides the player state machine.
package playback

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnknownState is returned when a state name cannot be parsed.
var ErrUnknownState = errors.New("unknown state")

// State represents the playback state.
type State int

const (
	StateStopped State = iota // Nothing playing; initial state
	StatePlaying              // Song is playing
	StatePaused               // Song is paused
)

// States lists every state in table order.
var States = []State{StateStopped, StatePlaying, StatePaused}

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the defined states.
func (s State) Valid() bool {
	return s >= StateStopped && s <= StatePaused
}

// ParseState parses a state name.
func ParseState(name string) (State, error) {
	for _, s := range States {
		if strings.EqualFold(strings.TrimSpace(name), s.String()) {
			return s, nil
		}
	}
	return StateStopped, errors.Wrapf(ErrUnknownState, "%q", name)
}
