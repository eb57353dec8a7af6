package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/Princegabz/State-Pattern/internal/app/playback"
	"github.com/Princegabz/State-Pattern/internal/app/session/state"
)

const consoleHelp = `Commands:
  play      Start or resume playback
  pause     Pause playback
  stop      Stop playback
  state     Show the current state
  history   Show the commands issued so far
  table     Show the transition table
  help      Show this help
  quit      Leave the console
`

// Console reads commands from in, one per line, until "quit", EOF or ctx is
// done. Player messages go to the configured sinks; console replies go to out.
func (m *Manager) Console(ctx context.Context, in io.Reader, out io.Writer) error {
	if m.stateMgr.IsTerminated() {
		return ErrSessionClosed
	}
	m.stateMgr.SetPhase(state.PhaseConsole)

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			case <-m.done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	fmt.Fprintln(out, "Type 'help' for a list of commands.")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.done:
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return errors.Wrap(err, "failed to read input")
					}
				default:
				}
				return nil
			}
			if quit := m.handleLine(line, out); quit {
				return nil
			}
		}
	}
}

// handleLine executes one console line and reports whether the console
// should end.
func (m *Manager) handleLine(line string, out io.Writer) bool {
	word := strings.ToLower(strings.TrimSpace(line))
	switch word {
	case "":
		return false
	case "quit", "exit":
		return true
	case "state":
		fmt.Fprintf(out, "State: %s\n", m.playback.GetState())
	case "history":
		WriteHistory(out, m.playback.GetHistory())
	case "table":
		WriteTable(out, m.playback)
	case "help", "?":
		fmt.Fprint(out, consoleHelp)
	default:
		cmd, err := playback.ParseCommand(word)
		if err != nil {
			fmt.Fprintf(out, "Unknown command %q (type 'help' for a list)\n", word)
			return false
		}
		m.dispatch(cmd)
	}
	return false
}
