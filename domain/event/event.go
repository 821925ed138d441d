package event

import (
	"chatitude/domain/chat"
)

// DomainEvent is anything the coordinator can push to a connection.
// Name maps to the wire event, Payload to its JSON body.
type DomainEvent interface {
	Name() string
	Payload() any
}

// MessageReceived carries one new message (human or bot).
type MessageReceived struct {
	Message chat.Message
}

func (e MessageReceived) Name() string { return "message:new" }
func (e MessageReceived) Payload() any { return e.Message }

// TranscriptSnapshot carries the full ordered message log.
type TranscriptSnapshot struct {
	Messages []chat.Message
}

func (e TranscriptSnapshot) Name() string { return "message:all" }
func (e TranscriptSnapshot) Payload() any { return e.Messages }

// ParticipantJoined announces a newly identified connection.
type ParticipantJoined struct {
	Participant chat.Participant
}

func (e ParticipantJoined) Name() string { return "user:join" }
func (e ParticipantJoined) Payload() any { return e.Participant }

// ParticipantLeft announces a closed connection by its connection id.
type ParticipantLeft struct {
	ConnectionID string
}

func (e ParticipantLeft) Name() string { return "user:leave" }
func (e ParticipantLeft) Payload() any { return e.ConnectionID }

// ParticipantList carries the full current participant list.
type ParticipantList struct {
	Participants []chat.Participant
}

func (e ParticipantList) Name() string { return "user:all" }
func (e ParticipantList) Payload() any { return e.Participants }
