//go:generate go run go.uber.org/mock/mockgen -source=completer.go -destination=../mocks/mock_completer.go -package=mocks
package bot

import "context"

// Completer is the external reasoning call. Implementations must return the
// raw model output; interpreting it is the engine's job.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
