package playback

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnknownCommand is returned when a command name cannot be parsed.
var ErrUnknownCommand = errors.New("unknown command")

// Command represents a player action.
type Command int

const (
	CommandPlay  Command = iota // Start or resume playback
	CommandPause                // Pause playback
	CommandStop                 // Stop playback
)

// Commands lists every command in table order.
var Commands = []Command{CommandPlay, CommandPause, CommandStop}

// String returns the string representation of the command.
func (c Command) String() string {
	switch c {
	case CommandPlay:
		return "play"
	case CommandPause:
		return "pause"
	case CommandStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the defined commands.
func (c Command) Valid() bool {
	return c >= CommandPlay && c <= CommandStop
}

// ParseCommand parses a command name, ignoring case and surrounding spaces.
func ParseCommand(name string) (Command, error) {
	for _, c := range Commands {
		if strings.EqualFold(strings.TrimSpace(name), c.String()) {
			return c, nil
		}
	}
	return CommandPlay, errors.Wrapf(ErrUnknownCommand, "%q", name)
}

// ParseCommands parses a list of command names.
// The returned error names the first entry that failed.
func ParseCommands(names []string) ([]Command, error) {
	cmds := make([]Command, 0, len(names))
	for i, name := range names {
		c, err := ParseCommand(name)
		if err != nil {
			return nil, errors.Wrapf(err, "command %d", i+1)
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}
