// Package session provides the session manager that wires the player to its
// configured sinks and drives it from a script or an interactive console.
package session

import (
	"bufio"
	"context"
	"io"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/Princegabz/State-Pattern/internal/app/notification"
	"github.com/Princegabz/State-Pattern/internal/app/playback"
	"github.com/Princegabz/State-Pattern/internal/app/session/state"
	"github.com/Princegabz/State-Pattern/internal/app/sink"
	"github.com/Princegabz/State-Pattern/internal/infra/config"
)

// ErrSessionClosed is returned when a closed session is asked to run.
var ErrSessionClosed = errors.New("session is closed")

// Option configures a Manager.
type Option func(*Manager)

// WithEnv sets the streams sinks write to. The default is the process
// stdout and stderr.
func WithEnv(env sink.Env) Option {
	return func(m *Manager) {
		m.env = env
	}
}

// Manager manages a player session.
type Manager struct {
	mu sync.Mutex

	// Configuration
	config *config.Config
	env    sink.Env

	// Components
	stateMgr     *state.Manager
	playback     *playback.Controller
	notification *notification.Manager

	done      chan struct{}
	closeOnce sync.Once
}

// NewManager creates a new session manager and subscribes the configured
// sinks to the player's events.
func NewManager(cfg *config.Config, opts ...Option) (*Manager, error) {
	sessionID := uuid.New().String()

	m := &Manager{
		config:       cfg,
		env:          sink.DefaultEnv(),
		stateMgr:     state.New(sessionID),
		notification: notification.NewManager(sessionID),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.setupSinks(); err != nil {
		return nil, err
	}

	m.playback = playback.NewController(m.notification, cfg.PlaybackMessages())

	zlog.Debug().Msgf("session: created: id=%s sinks=%d", sessionID, m.notification.SubscriberCount())
	return m, nil
}

// setupSinks creates every configured sink and subscribes it.
func (m *Manager) setupSinks() error {
	for i, sc := range m.config.Sinks {
		s, err := sink.New(sc.Type, m.env, sc.Settings)
		if err != nil {
			return errors.Wrapf(err, "sinks[%d]", i)
		}
		m.notification.Subscribe(s.Name(), s)
	}
	return nil
}

// Run runs the configured script, then waits for a line from in when the
// configuration asks for it.
func (m *Manager) Run(ctx context.Context, in io.Reader) error {
	cmds, err := m.config.ScriptCommands()
	if err != nil {
		return err
	}

	if err := m.RunScript(ctx, cmds); err != nil {
		return err
	}

	if m.config.Player.ShouldWaitForInput() {
		return m.WaitForInput(ctx, in)
	}
	return nil
}

// RunScript dispatches cmds in order.
func (m *Manager) RunScript(ctx context.Context, cmds []playback.Command) error {
	if m.stateMgr.IsTerminated() {
		return ErrSessionClosed
	}
	m.stateMgr.SetPhase(state.PhaseScript)

	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.dispatch(cmd)
	}
	return nil
}

// WaitForInput blocks until a line (or EOF) is read from in, or ctx is done.
func (m *Manager) WaitForInput(ctx context.Context, in io.Reader) error {
	if m.stateMgr.IsTerminated() {
		return ErrSessionClosed
	}
	m.stateMgr.SetPhase(state.PhaseWaiting)

	readCh := make(chan error, 1)
	go func() {
		_, err := bufio.NewReader(in).ReadString('\n')
		readCh <- err
	}()

	select {
	case err := <-readCh:
		if err != nil && !errors.Is(err, io.EOF) {
			return errors.Wrap(err, "failed to read input")
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-m.done:
		return nil
	}
}

// Controller returns the player.
func (m *Manager) Controller() *playback.Controller {
	return m.playback
}

// SessionID returns the session ID.
func (m *Manager) SessionID() string {
	return m.stateMgr.GetSessionID()
}

// Snapshot returns the current session state.
func (m *Manager) Snapshot() state.Snapshot {
	return m.stateMgr.Snapshot()
}

// Done is closed when the session is closed.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// Close ends the session and releases its subscriptions.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		m.stateMgr.SetPhase(state.PhaseTerminated)
		m.notification.Close()
		close(m.done)
		zlog.Debug().Msgf("session: closed: id=%s", m.SessionID())
	})
}

// dispatch issues one command to the player.
func (m *Manager) dispatch(cmd playback.Command) playback.Transition {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stateMgr.CountCommand()
	return m.playback.Dispatch(cmd)
}
