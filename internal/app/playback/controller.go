package playback

import (
	"sync"

	zlog "github.com/rs/zerolog/log"
)

// Controller is the player. It holds the current state and routes every
// command through the transition table.
type Controller struct {
	mu sync.RWMutex

	state   State
	history []Transition

	messages  Messages
	announcer Announcer
}

// NewController creates a new controller in the stopped state.
// A nil announcer discards events; nil messages use the defaults.
func NewController(announcer Announcer, messages Messages) *Controller {
	if messages == nil {
		messages = DefaultMessages()
	}
	return &Controller{
		state:     StateStopped,
		history:   make([]Transition, 0),
		messages:  messages,
		announcer: announcer,
	}
}

// Play starts playback, or resumes it when paused.
func (c *Controller) Play() {
	c.Dispatch(CommandPlay)
}

// Pause pauses playback.
func (c *Controller) Pause() {
	c.Dispatch(CommandPause)
}

// Stop stops playback.
func (c *Controller) Stop() {
	c.Dispatch(CommandStop)
}

// Dispatch applies cmd to the current state, announces the effect and
// returns the applied transition.
func (c *Controller) Dispatch(cmd Command) Transition {
	c.mu.Lock()
	t := Lookup(c.state, cmd)
	c.state = t.To
	c.history = append(c.history, t)
	event := Event{
		Type:       EventStateUnchanged,
		Transition: t,
		Message:    c.messages.Text(t.Code),
		State:      t.To,
	}
	if t.Changed() {
		event.Type = EventStateChanged
	}
	c.mu.Unlock()

	zlog.Debug().Msgf("playback: %s: %s -> %s (%s)", cmd, t.From, t.To, t.Code)

	// Announce outside the lock so announcers may read the controller.
	if c.announcer != nil {
		c.announcer.Announce(event)
	}
	return t
}

// GetState returns the current playback state.
func (c *Controller) GetState() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// GetHistory returns a copy of the applied transitions, oldest first.
func (c *Controller) GetHistory() []Transition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]Transition, len(c.history))
	copy(result, c.history)
	return result
}

// Message returns the configured text for code.
func (c *Controller) Message(code MessageCode) string {
	return c.messages.Text(code)
}
