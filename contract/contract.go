//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chatitude/domain/event"
	"context"
	"reflect"
)

// Worker doesn't protect itself.
// Can be silly, focused. Supervision is someone else's job.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging and supervision, avoiding manual naming in the interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is one connection's inbox. Consume must not block the caller
// beyond the context; a slow consumer loses events rather than stalling
// the coordinator.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// Broadcaster fans an event out to every live connection.
type Broadcaster interface {
	BroadcastAll(ctx context.Context, e event.DomainEvent)
}
