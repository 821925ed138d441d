package runtime

import (
	"context"
	"testing"

	"chatitude/domain/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type nopSink struct {
	name string
}

func (s nopSink) Consume(_ context.Context, _ event.DomainEvent) error {
	return nil
}

func TestRegistry_Add_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID := uuid.NewString()

	// When the same connection registers twice
	registry.Add(connectionID, nopSink{name: "first"})
	registry.Add(connectionID, nopSink{name: "second"})

	// Then a single entry exists and the first sink is kept
	req.Len(registry.All(), 1)
	sink, ok := registry.Sink(connectionID)
	req.True(ok)
	req.Equal(nopSink{name: "first"}, sink)
}

func TestRegistry_First_Identify_Wins(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connectionID := uuid.NewString()
	registry.Add(connectionID, nopSink{})

	req.True(registry.Identify(connectionID, "Alice", "uuid-1"))

	// A second identify for the same connection is ignored
	req.False(registry.Identify(connectionID, "Mallory", "uuid-2"))

	participant, ok := registry.Find(connectionID)
	req.True(ok)
	req.Equal("Alice", participant.Name)
	req.Equal("uuid-1", participant.UUID)
}

func TestRegistry_Identify_Unknown_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	req.False(registry.Identify(uuid.NewString(), "Alice", "uuid-1"))
	req.Empty(registry.All())
}

func TestRegistry_All_Keeps_Insertion_Order(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	ids := []string{"c1", "c2", "c3"}
	for _, id := range ids {
		registry.Add(id, nopSink{name: id})
	}

	participants := registry.All()
	req.Len(participants, 3)
	for i, p := range participants {
		req.Equal(ids[i], p.ID)
	}
}

func TestRegistry_Remove_Frees_The_Entry(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	registry.Add("c1", nopSink{})
	registry.Add("c2", nopSink{})

	registry.Remove("c1")

	req.Len(registry.All(), 1)
	_, ok := registry.Find("c1")
	req.False(ok)

	// Removing twice is harmless
	registry.Remove("c1")
	req.Len(registry.All(), 1)
}

func TestRegistry_SinksExcept_Skips_The_Sender(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	registry.Add("c1", nopSink{name: "c1"})
	registry.Add("c2", nopSink{name: "c2"})
	registry.Add("c3", nopSink{name: "c3"})

	sinks := registry.SinksExcept("c2")
	req.Len(sinks, 2)
	req.Equal(nopSink{name: "c1"}, sinks[0])
	req.Equal(nopSink{name: "c3"}, sinks[1])

	// Empty id means everyone
	req.Len(registry.SinksExcept(""), 3)
}
