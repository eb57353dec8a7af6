package playback

// Messages maps message codes to the text shown for them.
type Messages map[MessageCode]string

// DefaultMessages returns the built-in message texts.
func DefaultMessages() Messages {
	return Messages{
		CodeStartPlaying:   "Song is now playing",
		CodeCannotPause:    "Cannot pause. The song is not playing",
		CodeAlreadyStopped: "Song is already stopped",
		CodeAlreadyPlaying: "Song is already playing",
		CodePaused:         "Song is paused",
		CodeStopped:        "Song has stopped playing",
		CodeResumed:        "Resuming song playback",
		CodeAlreadyPaused:  "Song is already paused",
	}
}

// Text returns the text for code, falling back to the default text and
// finally to the code itself.
func (m Messages) Text(code MessageCode) string {
	if text, ok := m[code]; ok && text != "" {
		return text
	}
	if text, ok := DefaultMessages()[code]; ok {
		return text
	}
	return string(code)
}
