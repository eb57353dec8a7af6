// Package sink provides the pluggable outputs that receive player events.
package sink

import (
	"io"
	"os"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"

	"github.com/Princegabz/State-Pattern/internal/app/notification"
)

// ErrUnknownSink is returned when no sink is registered under a type name.
var ErrUnknownSink = errors.New("unknown sink")

// Env holds the process streams sinks may write to.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultEnv returns an Env bound to the process streams.
func DefaultEnv() Env {
	return Env{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Sink is the interface for event outputs.
type Sink interface {
	// Name returns the sink name (used in config).
	Name() string
	// Description returns a human-readable description.
	Description() string
	// ValidateConfig validates and applies the sink configuration.
	ValidateConfig(settings map[string]any) error
	// Send delivers a notification.
	Send(n *notification.Notification) error
}

// Factory creates a sink bound to env.
type Factory func(env Env) Sink

// registry holds registered sink factories.
var registry = make(map[string]Factory)

// Register registers a sink factory.
func Register(name string, factory Factory) {
	registry[name] = factory
}

// GetRegistered returns all registered sink factories.
func GetRegistered() map[string]Factory {
	return registry
}

// Names returns the registered sink names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates the sink registered as name and applies settings to it.
func New(name string, env Env, settings map[string]any) (Sink, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSink, "%q", name)
	}

	s := factory(env)
	if err := s.ValidateConfig(settings); err != nil {
		return nil, errors.Wrapf(err, "sink %s", name)
	}
	return s, nil
}

// decodeSettings decodes settings into out, applies default tags and
// validates the result.
func decodeSettings(settings map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		TagName:     "mapstructure",
		ErrorUnused: true,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create decoder")
	}

	if err := decoder.Decode(settings); err != nil {
		return errors.Wrap(err, "failed to decode settings")
	}

	if err := defaults.Set(out); err != nil {
		return errors.Wrap(err, "failed to set defaults")
	}

	if err := validator.New().Struct(out); err != nil {
		return errors.Wrap(err, "validation failed")
	}
	return nil
}
