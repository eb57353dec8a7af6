package sink

import (
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/Princegabz/State-Pattern/internal/app/notification"
)

// LogConfig represents the configuration for LogSink.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level" default:"debug" validate:"oneof=debug info warn"`
}

// LogSink records each event as a structured log entry.
type LogSink struct {
	level zerolog.Level
}

// NewLogSink creates a log sink at debug level.
func NewLogSink() *LogSink {
	return &LogSink{level: zerolog.DebugLevel}
}

func (s *LogSink) Name() string {
	return "log"
}

func (s *LogSink) Description() string {
	return "Logs each player event with structured fields"
}

func (s *LogSink) ValidateConfig(settings map[string]any) error {
	var config LogConfig
	if err := decodeSettings(settings, &config); err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(config.Level)
	if err != nil {
		return err
	}
	s.level = level
	return nil
}

func (s *LogSink) Send(n *notification.Notification) error {
	t := n.Event.Transition
	zlog.WithLevel(s.level).
		Str("session", n.SessionID).
		Uint64("seq", n.SequenceNo).
		Str("event", n.Event.Type.String()).
		Str("command", t.Command.String()).
		Str("from", t.From.String()).
		Str("to", t.To.String()).
		Str("code", string(t.Code)).
		Msg(n.Event.Message)
	return nil
}

func init() {
	Register("log", func(env Env) Sink {
		return NewLogSink()
	})
}
