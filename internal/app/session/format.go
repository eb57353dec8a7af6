package session

import (
	"fmt"
	"io"

	"github.com/Princegabz/State-Pattern/internal/app/playback"
)

// MessageSource resolves message codes to text.
type MessageSource interface {
	Message(code playback.MessageCode) string
}

// WriteTable prints every transition with the text it produces.
func WriteTable(w io.Writer, messages MessageSource) {
	fmt.Fprintf(w, "%-8s  %-6s  %-8s  %s\n", "STATE", "CMD", "NEXT", "MESSAGE")
	for _, t := range playback.Table() {
		fmt.Fprintf(w, "%-8s  %-6s  %-8s  %s\n", t.From, t.Command, t.To, messages.Message(t.Code))
	}
}

// WriteHistory prints the applied transitions, oldest first.
func WriteHistory(w io.Writer, history []playback.Transition) {
	if len(history) == 0 {
		fmt.Fprintln(w, "No commands issued yet")
		return
	}
	for i, t := range history {
		fmt.Fprintf(w, "%3d. %-5s  %s -> %s (%s)\n", i+1, t.Command, t.From, t.To, t.Code)
	}
}
