// Package runtime owns the live state of the server: the session registry,
// the room & membership manager, and the broadcaster that fans events out to
// subscribers. It contains no wire or UI logic.
package runtime

import (
	"sync"

	"roomhub/contract"
	"roomhub/errors"
)

// Registry tracks every currently connected client, keyed by
// (user id, connection id). Purely in-memory: it starts empty on every
// restart and is rebuilt by clients re-subscribing.
type Registry struct {
	mu            sync.RWMutex
	sessions      map[string]map[string]contract.EventSink // user id -> connection id -> sink
	allowMultiple bool
}

// NewRegistry builds a registry. allowMultiple controls the multi-session
// policy: when false a user may hold at most one open stream and further
// Register calls fail with ErrAlreadyConnected; when true every session of
// the user receives the fan-out.
func NewRegistry(allowMultiple bool) *Registry {
	return &Registry{
		sessions:      make(map[string]map[string]contract.EventSink),
		allowMultiple: allowMultiple,
	}
}

func (r *Registry) Register(userID, connectionID string, sink contract.EventSink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	connections, ok := r.sessions[userID]
	if !ok {
		connections = make(map[string]contract.EventSink)
		r.sessions[userID] = connections
	}
	if !r.allowMultiple && len(connections) > 0 {
		return errors.ErrAlreadyConnected
	}
	connections[connectionID] = sink
	return nil
}

// Unregister removes and closes the session's sink; closing ends the
// gateway's drain loop for that connection. Idempotent: absent sessions are
// a no-op.
func (r *Registry) Unregister(userID, connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	connections, ok := r.sessions[userID]
	if !ok {
		return
	}
	sink, ok := connections[connectionID]
	if !ok {
		return
	}
	delete(connections, connectionID)
	if len(connections) == 0 {
		delete(r.sessions, userID)
	}
	sink.Close()
}

// ChannelsFor returns the live sinks of a user, empty when the user has no
// open session. A message for a user with no session is persisted only.
func (r *Registry) ChannelsFor(userID string) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	connections, ok := r.sessions[userID]
	if !ok {
		return nil
	}
	sinks := make([]contract.EventSink, 0, len(connections))
	for _, sink := range connections {
		sinks = append(sinks, sink)
	}
	return sinks
}
