package sink

import (
	"fmt"
	"io"

	"github.com/Princegabz/State-Pattern/internal/app/notification"
)

// ConsoleConfig represents the configuration for ConsoleSink.
type ConsoleConfig struct {
	Stream    string `yaml:"stream" mapstructure:"stream" default:"stdout" validate:"oneof=stdout stderr"`
	ShowState bool   `yaml:"show_state" mapstructure:"show_state"`
}

// ConsoleSink writes each event's message as one line.
type ConsoleSink struct {
	env    Env
	config *ConsoleConfig
}

// NewConsoleSink creates a console sink writing to env.
func NewConsoleSink(env Env) *ConsoleSink {
	return &ConsoleSink{env: env}
}

func (s *ConsoleSink) Name() string {
	return "console"
}

func (s *ConsoleSink) Description() string {
	return "Writes each player message as a line on stdout or stderr"
}

func (s *ConsoleSink) ValidateConfig(settings map[string]any) error {
	var config ConsoleConfig
	if err := decodeSettings(settings, &config); err != nil {
		return err
	}
	s.config = &config
	return nil
}

func (s *ConsoleSink) Send(n *notification.Notification) error {
	config := s.config
	if config == nil {
		config = &ConsoleConfig{Stream: "stdout"}
	}

	line := n.Event.Message
	if config.ShowState {
		t := n.Event.Transition
		line = fmt.Sprintf("%s [%s -> %s]", line, t.From, t.To)
	}

	_, err := fmt.Fprintln(s.writer(config.Stream), line)
	return err
}

func (s *ConsoleSink) writer(stream string) io.Writer {
	if stream == "stderr" {
		return s.env.Stderr
	}
	return s.env.Stdout
}

func init() {
	Register("console", func(env Env) Sink {
		return NewConsoleSink(env)
	})
}
