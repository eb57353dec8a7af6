package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects announced events.
type recorder struct {
	events []Event
}

func (r *recorder) Announce(e Event) {
	r.events = append(r.events, e)
}

func TestNewController_StartsStopped(t *testing.T) {
	c := NewController(nil, nil)

	assert.Equal(t, StateStopped, c.GetState())
	assert.Empty(t, c.GetHistory())
}

func TestController_AllTransitions(t *testing.T) {
	tests := []struct {
		name        string
		from        State
		command     Command
		wantState   State
		wantCode    MessageCode
		wantMessage string
		wantType    EventType
	}{
		{"stopped play", StateStopped, CommandPlay, StatePlaying, CodeStartPlaying, "Song is now playing", EventStateChanged},
		{"stopped pause", StateStopped, CommandPause, StateStopped, CodeCannotPause, "Cannot pause. The song is not playing", EventStateUnchanged},
		{"stopped stop", StateStopped, CommandStop, StateStopped, CodeAlreadyStopped, "Song is already stopped", EventStateUnchanged},
		{"playing play", StatePlaying, CommandPlay, StatePlaying, CodeAlreadyPlaying, "Song is already playing", EventStateUnchanged},
		{"playing pause", StatePlaying, CommandPause, StatePaused, CodePaused, "Song is paused", EventStateChanged},
		{"playing stop", StatePlaying, CommandStop, StateStopped, CodeStopped, "Song has stopped playing", EventStateChanged},
		{"paused play", StatePaused, CommandPlay, StatePlaying, CodeResumed, "Resuming song playback", EventStateChanged},
		{"paused pause", StatePaused, CommandPause, StatePaused, CodeAlreadyPaused, "Song is already paused", EventStateUnchanged},
		{"paused stop", StatePaused, CommandStop, StateStopped, CodeStopped, "Song has stopped playing", EventStateChanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			c := NewController(rec, nil)
			driveTo(t, c, tt.from)
			rec.events = nil

			got := c.Dispatch(tt.command)

			assert.Equal(t, tt.from, got.From)
			assert.Equal(t, tt.command, got.Command)
			assert.Equal(t, tt.wantState, got.To)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantState, c.GetState())

			require.Len(t, rec.events, 1, "exactly one effect per command")
			assert.Equal(t, tt.wantMessage, rec.events[0].Message)
			assert.Equal(t, tt.wantType, rec.events[0].Type)
			assert.Equal(t, tt.wantState, rec.events[0].State)
		})
	}
}

func TestController_Idempotence(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		command  Command
		wantCode MessageCode
	}{
		{"pause while paused", StatePaused, CommandPause, CodeAlreadyPaused},
		{"stop while stopped", StateStopped, CommandStop, CodeAlreadyStopped},
		{"play while playing", StatePlaying, CommandPlay, CodeAlreadyPlaying},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			c := NewController(rec, nil)
			driveTo(t, c, tt.state)
			rec.events = nil

			for i := 0; i < 5; i++ {
				c.Dispatch(tt.command)
				assert.Equal(t, tt.state, c.GetState())
			}

			require.Len(t, rec.events, 5)
			for _, e := range rec.events {
				assert.Equal(t, tt.wantCode, e.Transition.Code)
				assert.Equal(t, EventStateUnchanged, e.Type)
			}
		})
	}
}

func TestController_StartupSequence(t *testing.T) {
	rec := &recorder{}
	c := NewController(rec, nil)

	c.Play()
	assert.Equal(t, StatePlaying, c.GetState())

	c.Stop()
	assert.Equal(t, StateStopped, c.GetState())

	c.Pause()
	assert.Equal(t, StateStopped, c.GetState())

	require.Len(t, rec.events, 3)
	assert.Equal(t, "Song is now playing", rec.events[0].Message)
	assert.Equal(t, "Song has stopped playing", rec.events[1].Message)
	assert.Equal(t, "Cannot pause. The song is not playing", rec.events[2].Message)

	history := c.GetHistory()
	require.Len(t, history, 3)
	assert.Equal(t, CodeStartPlaying, history[0].Code)
	assert.Equal(t, CodeStopped, history[1].Code)
	assert.Equal(t, CodeCannotPause, history[2].Code)
}

func TestController_NeverLeavesDefinedStates(t *testing.T) {
	// Walk every command sequence up to length 6.
	var walk func(c *Controller, depth int)
	visited := 0
	walk = func(prefix *Controller, depth int) {
		if depth == 0 {
			return
		}
		for _, cmd := range Commands {
			c := NewController(nil, nil)
			for _, tr := range prefix.GetHistory() {
				c.Dispatch(tr.Command)
			}
			c.Dispatch(cmd)
			visited++
			require.True(t, c.GetState().Valid(), "state %d after %v", c.GetState(), c.GetHistory())
			walk(c, depth-1)
		}
	}
	walk(NewController(nil, nil), 6)

	// 3 + 9 + ... + 729
	assert.Equal(t, 1092, visited)
}

func TestController_CustomMessages(t *testing.T) {
	rec := &recorder{}
	c := NewController(rec, Messages{CodeStartPlaying: "Now spinning"})

	c.Play()
	c.Pause()

	require.Len(t, rec.events, 2)
	assert.Equal(t, "Now spinning", rec.events[0].Message)
	assert.Equal(t, "Song is paused", rec.events[1].Message, "missing codes fall back to defaults")
}

func TestController_GetHistoryReturnsCopy(t *testing.T) {
	c := NewController(nil, nil)
	c.Play()

	history := c.GetHistory()
	history[0].To = StatePaused

	assert.Equal(t, StatePlaying, c.GetHistory()[0].To)
}

func TestController_AnnouncerCanReadState(t *testing.T) {
	var seen []State
	var c *Controller
	c = NewController(AnnouncerFunc(func(e Event) {
		seen = append(seen, c.GetState())
	}), nil)

	c.Play()
	c.Pause()

	assert.Equal(t, []State{StatePlaying, StatePaused}, seen)
}

// driveTo moves a fresh controller into the given state.
func driveTo(t *testing.T, c *Controller, s State) {
	t.Helper()
	switch s {
	case StateStopped:
	case StatePlaying:
		c.Play()
	case StatePaused:
		c.Play()
		c.Pause()
	}
	require.Equal(t, s, c.GetState())
}
