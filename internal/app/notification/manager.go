// Package notification provides the notification manager for broadcasting
// player events to subscribed sinks.
package notification

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/Princegabz/State-Pattern/internal/app/playback"
)

// Notification is a player event stamped for delivery.
type Notification struct {
	SequenceNo uint64
	SessionID  string
	Time       time.Time
	Event      playback.Event
}

// Stream represents a notification stream for a subscriber.
type Stream interface {
	Send(*Notification) error
}

// subscription represents a subscriber's subscription.
type subscription struct {
	id     string
	name   string
	stream Stream
}

// Manager manages notification subscriptions and broadcasting.
// Subscribers receive notifications synchronously, in subscription order.
type Manager struct {
	mu            sync.RWMutex
	sessionID     string
	subscriptions []*subscription
	sequenceNo    uint64
	sequenceNoMu  sync.Mutex
	now           func() time.Time
}

// NewManager creates a new notification manager for a session.
func NewManager(sessionID string) *Manager {
	return &Manager{
		sessionID:     sessionID,
		subscriptions: make([]*subscription, 0),
		now:           time.Now,
	}
}

// Subscribe adds a new subscription and returns the subscription ID.
func (m *Manager) Subscribe(name string, stream Stream) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	m.subscriptions = append(m.subscriptions, &subscription{
		id:     id,
		name:   name,
		stream: stream,
	})
	return id
}

// Unsubscribe removes a subscription.
func (m *Manager) Unsubscribe(subscriptionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscriptions {
		if sub.id == subscriptionID {
			m.subscriptions = append(m.subscriptions[:i], m.subscriptions[i+1:]...)
			return
		}
	}
}

// NextSequenceNo returns the next sequence number and increments the counter.
func (m *Manager) NextSequenceNo() uint64 {
	m.sequenceNoMu.Lock()
	defer m.sequenceNoMu.Unlock()
	m.sequenceNo++
	return m.sequenceNo
}

// Announce broadcasts e and logs delivery failures.
// It implements playback.Announcer.
func (m *Manager) Announce(e playback.Event) {
	if err := m.Broadcast(e); err != nil {
		zlog.Warn().Err(err).Msg("notification: delivery failed")
	}
}

// Broadcast stamps e with the next sequence number and sends it to every
// subscriber. A failing subscriber does not stop delivery to the others;
// all failures are combined into the returned error.
func (m *Manager) Broadcast(e playback.Event) error {
	n := &Notification{
		SequenceNo: m.NextSequenceNo(),
		SessionID:  m.sessionID,
		Time:       m.now(),
		Event:      e,
	}

	m.mu.RLock()
	// Copy subscriptions to avoid holding lock during sends
	subs := make([]*subscription, len(m.subscriptions))
	copy(subs, m.subscriptions)
	m.mu.RUnlock()

	var combined error
	for _, sub := range subs {
		if err := sub.stream.Send(n); err != nil {
			combined = errors.CombineErrors(combined, errors.Wrapf(err, "sink %s", sub.name))
		}
	}
	return combined
}

// SubscriberCount returns the number of active subscribers.
func (m *Manager) SubscriberCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscriptions)
}

// Close closes the manager and removes all subscriptions.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscriptions = make([]*subscription, 0)
}
