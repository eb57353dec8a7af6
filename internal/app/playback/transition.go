package playback

// MessageCode identifies the effect of a transition.
type MessageCode string

const (
	CodeStartPlaying   MessageCode = "start_playing"
	CodeCannotPause    MessageCode = "cannot_pause"
	CodeAlreadyStopped MessageCode = "already_stopped"
	CodeAlreadyPlaying MessageCode = "already_playing"
	CodePaused         MessageCode = "paused"
	CodeStopped        MessageCode = "stopped"
	CodeResumed        MessageCode = "resumed"
	CodeAlreadyPaused  MessageCode = "already_paused"
)

// Transition is the outcome of a command issued in a given state.
type Transition struct {
	From    State
	Command Command
	To      State
	Code    MessageCode
}

// Changed reports whether the transition moves the player to another state.
func (t Transition) Changed() bool {
	return t.From != t.To
}

type outcome struct {
	to   State
	code MessageCode
}

// table is indexed by [state][command]. Every pair is defined.
var table = [3][3]outcome{
	StateStopped: {
		CommandPlay:  {StatePlaying, CodeStartPlaying},
		CommandPause: {StateStopped, CodeCannotPause},
		CommandStop:  {StateStopped, CodeAlreadyStopped},
	},
	StatePlaying: {
		CommandPlay:  {StatePlaying, CodeAlreadyPlaying},
		CommandPause: {StatePaused, CodePaused},
		CommandStop:  {StateStopped, CodeStopped},
	},
	StatePaused: {
		CommandPlay:  {StatePlaying, CodeResumed},
		CommandPause: {StatePaused, CodeAlreadyPaused},
		CommandStop:  {StateStopped, CodeStopped},
	},
}

// Lookup returns the transition for command c issued in state s.
// Both arguments must be valid; invalid input panics.
func Lookup(s State, c Command) Transition {
	o := table[s][c]
	return Transition{From: s, Command: c, To: o.to, Code: o.code}
}

// Table returns every transition ordered by state, then command.
func Table() []Transition {
	rows := make([]Transition, 0, len(States)*len(Commands))
	for _, s := range States {
		for _, c := range Commands {
			rows = append(rows, Lookup(s, c))
		}
	}
	return rows
}
