package sink

import (
	"context"
	"log/slog"

	"chatitude/domain/event"
)

// Connection buffers events for one live connection. The coordinator calls
// Consume; the transport's writer goroutine drains Events toward the socket.
type Connection struct {
	log    *slog.Logger
	Events chan event.DomainEvent
}

func NewConnection(log *slog.Logger, bufferSize int) *Connection {
	return &Connection{log: log, Events: make(chan event.DomainEvent, bufferSize)}
}

// Consume hands the event to the connection's writer. A full buffer drops
// the event instead of stalling the coordinator: delivery is best effort and
// the client can always re-request the full state.
func (c *Connection) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case c.Events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		c.log.Warn("Connection buffer full, dropping event", "event", e.Name())
		return nil
	}
}
