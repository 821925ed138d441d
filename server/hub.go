package server

import (
	"context"
	"log/slog"

	"chatitude/bot"
	"chatitude/contract"
	"chatitude/domain/chat"
	"chatitude/domain/event"
	"chatitude/runtime"
	"chatitude/services"
)

// Hub is the broadcast coordinator: it owns the mapping from client intents
// to store and registry operations, and fans the results out to the right
// set of connections. Per connection it enforces the
// connected → identified → closed lifecycle.
type Hub struct {
	log      *slog.Logger
	registry *runtime.Registry
	messages services.IMessagesService
	engine   *bot.Engine
}

func NewHub(log *slog.Logger, registry *runtime.Registry, messages services.IMessagesService, engine *bot.Engine) *Hub {
	return &Hub{log: log, registry: registry, messages: messages, engine: engine}
}

// Connect registers a freshly opened, not yet identified connection.
func (h *Hub) Connect(connectionID string, sink contract.EventSink) {
	h.registry.Add(connectionID, sink)
}

// Disconnect closes the connection's lifecycle: its registry entry goes
// away and everyone still connected learns about the departure.
func (h *Hub) Disconnect(ctx context.Context, connectionID string) {
	h.registry.Remove(connectionID)
	h.broadcastExcept(ctx, connectionID, event.ParticipantLeft{ConnectionID: connectionID})
	h.log.Info("Connection closed", "connection_id", connectionID)
}

// Join identifies the connection, first-identify-wins. The joiner gets the
// full transcript and participant list; everyone else gets a join notice.
// A second join on an identified connection is silently ignored.
func (h *Hub) Join(ctx context.Context, connectionID string, payload joinPayload) error {
	participant, ok := h.registry.Find(connectionID)
	if !ok {
		h.log.Warn("Join from unknown connection", "connection_id", connectionID)
		return nil
	}
	if participant.Identified() {
		h.log.Info("Client already joined", "name", participant.Name)
		return nil
	}
	h.registry.Identify(connectionID, payload.Name, payload.UUID)

	messages, err := h.messages.All()
	if err != nil {
		return err
	}
	sink, ok := h.registry.Sink(connectionID)
	if !ok {
		return nil
	}
	if err := sink.Consume(ctx, event.TranscriptSnapshot{Messages: messages}); err != nil {
		h.log.Warn("Failed to deliver transcript to joiner", "error", err)
	}
	if err := sink.Consume(ctx, event.ParticipantList{Participants: h.registry.All()}); err != nil {
		h.log.Warn("Failed to deliver participant list to joiner", "error", err)
	}

	joined, _ := h.registry.Find(connectionID)
	h.broadcastExcept(ctx, connectionID, event.ParticipantJoined{Participant: joined})
	h.log.Info("User joined", "connection_id", connectionID, "name", payload.Name)
	return nil
}

// SendParticipants replies with the current participant list, requester only.
func (h *Hub) SendParticipants(ctx context.Context, connectionID string) {
	h.reply(ctx, connectionID, event.ParticipantList{Participants: h.registry.All()})
}

// SendTranscript replies with the full message log, requester only.
func (h *Hub) SendTranscript(ctx context.Context, connectionID string) error {
	messages, err := h.messages.All()
	if err != nil {
		return err
	}
	h.reply(ctx, connectionID, event.TranscriptSnapshot{Messages: messages})
	return nil
}

// Send appends the message and rebroadcasts it to every other connection;
// the author already has its optimistic local copy. Bot classification runs
// as a detached task with its own error boundary so its failure can never
// reach the already-completed broadcast.
func (h *Hub) Send(ctx context.Context, connectionID string, payload sendPayload) error {
	stored, err := h.messages.Save(services.SaveMessageCommand{
		ID:         payload.ID,
		Text:       payload.Text,
		SenderName: payload.SenderName,
		SenderID:   payload.SenderID,
		Sender:     chat.SenderKind(payload.Sender),
		Type:       chat.ContentType(payload.Type),
	})
	if err != nil {
		return err
	}
	h.broadcastExcept(ctx, connectionID, event.MessageReceived{Message: stored})

	// A disconnect of the author must not cancel the classification.
	detached := context.WithoutCancel(ctx)
	go h.classify(detached, stored)
	return nil
}

// Update rewrites the message text and pushes the entire updated log to
// every other connection. An unknown id still rebroadcasts the unchanged
// log: protocol misuse is a no-op, not an error.
func (h *Hub) Update(ctx context.Context, connectionID string, payload updatePayload) error {
	messages, err := h.messages.Update(payload.ID, payload.Text)
	if err != nil {
		return err
	}
	h.broadcastExcept(ctx, connectionID, event.TranscriptSnapshot{Messages: messages})
	return nil
}

// BroadcastAll delivers to every connection, the originator included. Bot
// replies use this: the asker needs the answer too.
func (h *Hub) BroadcastAll(ctx context.Context, e event.DomainEvent) {
	for _, sink := range h.registry.SinksExcept("") {
		if err := sink.Consume(ctx, e); err != nil {
			h.log.Warn("Broadcast delivery failed", "event", e.Name(), "error", err)
		}
	}
}

func (h *Hub) classify(ctx context.Context, message chat.Message) {
	reply, err := h.engine.ProcessMessage(ctx, message)
	if err != nil {
		h.log.Error("Bot classification failed", "message_id", message.ID, "error", err)
		return
	}
	if reply != nil {
		h.BroadcastAll(ctx, event.MessageReceived{Message: *reply})
	}
}

func (h *Hub) reply(ctx context.Context, connectionID string, e event.DomainEvent) {
	sink, ok := h.registry.Sink(connectionID)
	if !ok {
		return
	}
	if err := sink.Consume(ctx, e); err != nil {
		h.log.Warn("Reply delivery failed", "event", e.Name(), "error", err)
	}
}

func (h *Hub) broadcastExcept(ctx context.Context, connectionID string, e event.DomainEvent) {
	for _, sink := range h.registry.SinksExcept(connectionID) {
		if err := sink.Consume(ctx, e); err != nil {
			h.log.Warn("Broadcast delivery failed", "event", e.Name(), "error", err)
		}
	}
}
