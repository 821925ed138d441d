package chat

// Participant is a live connection's presence record, keyed by connection id.
// Name and UUID are set once on first identification and are immutable for
// the connection's lifetime. Participants are never persisted.
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	UUID string `json:"uuid,omitempty"`
}

// Identified reports whether the connection has completed its join.
func (p Participant) Identified() bool {
	return p.Name != ""
}
