// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Princegabz/State-Pattern/internal/app/playback"
)

// Environment variables that override file values.
const (
	EnvScript       = "MUSICPLAYER_SCRIPT"
	EnvWaitForInput = "MUSICPLAYER_WAIT_FOR_INPUT"
	EnvLogLevel     = "MUSICPLAYER_LOG_LEVEL"
)

// Config represents the application configuration.
type Config struct {
	Player   PlayerConfig   `yaml:"player"`
	Messages MessagesConfig `yaml:"messages"`
	Sinks    []SinkConfig   `yaml:"sinks" default:"[{\"type\":\"console\"},{\"type\":\"log\"}]" validate:"dive"`
	Log      LogConfig      `yaml:"log"`
}

// PlayerConfig represents the startup behaviour of the player.
type PlayerConfig struct {
	Script       []string `yaml:"script" default:"[\"play\",\"stop\",\"pause\"]" validate:"dive,oneof=play pause stop"`
	WaitForInput *bool    `yaml:"wait_for_input" default:"true"`
}

// ShouldWaitForInput reports whether the player waits for a line of input
// after running its script.
func (p PlayerConfig) ShouldWaitForInput() bool {
	return p.WaitForInput == nil || *p.WaitForInput
}

// MessagesConfig represents the text printed for each transition.
type MessagesConfig struct {
	StartPlaying   string `yaml:"start_playing" default:"Song is now playing"`
	CannotPause    string `yaml:"cannot_pause" default:"Cannot pause. The song is not playing"`
	AlreadyStopped string `yaml:"already_stopped" default:"Song is already stopped"`
	AlreadyPlaying string `yaml:"already_playing" default:"Song is already playing"`
	Paused         string `yaml:"paused" default:"Song is paused"`
	Stopped        string `yaml:"stopped" default:"Song has stopped playing"`
	Resumed        string `yaml:"resumed" default:"Resuming song playback"`
	AlreadyPaused  string `yaml:"already_paused" default:"Song is already paused"`
}

// SinkConfig represents a single sink configuration.
type SinkConfig struct {
	Type     string         `yaml:"type" validate:"required"`
	Settings map[string]any `yaml:"settings,omitempty"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	Level  string `yaml:"level" default:"warn" validate:"oneof=debug info warn error"`
	Output string `yaml:"output" default:"stderr"` // "stdout", "stderr" or a file path
}

// Default returns the configuration used when no file is given.
func Default() (*Config, error) {
	var cfg Config
	cfg.overrideFromEnv()
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}
	return &cfg, nil
}

// Load loads configuration from a YAML file.
// Environment variables take precedence over file values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	// Override with environment variables
	cfg.overrideFromEnv()

	// Set defaults using creasty/defaults
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv(EnvScript); v != "" {
		c.Player.Script = SplitScript(v)
	}
	if v := os.Getenv(EnvWaitForInput); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Player.WaitForInput = &b
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
}

// SplitScript splits a comma separated command list, dropping empty entries.
func SplitScript(s string) []string {
	parts := strings.Split(s, ",")
	script := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			script = append(script, p)
		}
	}
	return script
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}
	return nil
}

// GetMessage returns the message for the given code.
func (c *Config) GetMessage(code playback.MessageCode) string {
	switch code {
	case playback.CodeStartPlaying:
		return c.Messages.StartPlaying
	case playback.CodeCannotPause:
		return c.Messages.CannotPause
	case playback.CodeAlreadyStopped:
		return c.Messages.AlreadyStopped
	case playback.CodeAlreadyPlaying:
		return c.Messages.AlreadyPlaying
	case playback.CodePaused:
		return c.Messages.Paused
	case playback.CodeStopped:
		return c.Messages.Stopped
	case playback.CodeResumed:
		return c.Messages.Resumed
	case playback.CodeAlreadyPaused:
		return c.Messages.AlreadyPaused
	default:
		return ""
	}
}

// PlaybackMessages returns the configured texts keyed by message code.
func (c *Config) PlaybackMessages() playback.Messages {
	messages := make(playback.Messages)
	for _, row := range playback.Table() {
		messages[row.Code] = c.GetMessage(row.Code)
	}
	return messages
}

// ScriptCommands parses the configured startup script.
func (c *Config) ScriptCommands() ([]playback.Command, error) {
	cmds, err := playback.ParseCommands(c.Player.Script)
	if err != nil {
		return nil, errors.Wrap(err, "invalid player script")
	}
	return cmds, nil
}
