package state

import (
	"sync"
	"time"
)

// Snapshot is a point-in-time copy of the session state.
type Snapshot struct {
	SessionID string
	Phase     Phase
	StartedAt time.Time
	Commands  int
}

// Manager manages session state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	sessionID string
	phase     Phase
	startedAt time.Time
	commands  int
}

// New creates a new state manager.
func New(sessionID string) *Manager {
	return &Manager{
		sessionID: sessionID,
		phase:     PhaseIdle,
		startedAt: time.Now(),
	}
}

// GetPhase returns the current session phase.
func (m *Manager) GetPhase() Phase {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.phase
}

// SetPhase sets the session phase. A terminated session stays terminated.
func (m *Manager) SetPhase(p Phase) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.phase == PhaseTerminated {
		return
	}
	m.phase = p
}

// IsTerminated returns true once the session has ended.
func (m *Manager) IsTerminated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.phase == PhaseTerminated
}

// CountCommand records that a command was dispatched.
func (m *Manager) CountCommand() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands++
}

// GetSessionID returns the session ID.
func (m *Manager) GetSessionID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessionID
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		SessionID: m.sessionID,
		Phase:     m.phase,
		StartedAt: m.startedAt,
		Commands:  m.commands,
	}
}
