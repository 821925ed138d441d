package runtime

import (
	"sync"

	"chatitude/contract"
	"chatitude/domain/chat"
)

type session struct {
	participant chat.Participant
	sink        contract.EventSink
}

// Registry tracks which live connections map to which display identity and
// holds each connection's event sink. Pure in-memory state: it is rebuilt
// from nothing on restart, so all presence is lost across restarts.
//
// Iteration order is insertion order, matching what the participant panel
// expects.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session
	order    []string
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*session)}
}

// Add registers a freshly opened connection. Idempotent: a second Add for
// the same connection id changes nothing, not even the sink.
func (r *Registry) Add(connectionID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[connectionID]; ok {
		return
	}
	r.sessions[connectionID] = &session{
		participant: chat.Participant{ID: connectionID},
		sink:        sink,
	}
	r.order = append(r.order, connectionID)
}

// Identify sets the connection's display name and stable id, first-identify-wins.
// Returns false when the connection is unknown or already identified.
func (r *Registry) Identify(connectionID, name, uuid string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[connectionID]
	if !ok || s.participant.Identified() {
		return false
	}
	s.participant.Name = name
	s.participant.UUID = uuid
	return true
}

func (r *Registry) Remove(connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[connectionID]; !ok {
		return
	}
	delete(r.sessions, connectionID)
	for i, id := range r.order {
		if id == connectionID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// All returns the current participants in insertion order.
func (r *Registry) All() []chat.Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	participants := make([]chat.Participant, 0, len(r.order))
	for _, id := range r.order {
		participants = append(participants, r.sessions[id].participant)
	}
	return participants
}

func (r *Registry) Find(connectionID string) (chat.Participant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[connectionID]
	if !ok {
		return chat.Participant{}, false
	}
	return s.participant, true
}

// Sink resolves a connection's event sink.
func (r *Registry) Sink(connectionID string) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[connectionID]
	if !ok {
		return nil, false
	}
	return s.sink, true
}

// SinksExcept returns every sink but the given connection's, in insertion
// order. Pass an empty id to get all sinks.
func (r *Registry) SinksExcept(connectionID string) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sinks []contract.EventSink
	for _, id := range r.order {
		if id == connectionID {
			continue
		}
		sinks = append(sinks, r.sessions[id].sink)
	}
	return sinks
}
