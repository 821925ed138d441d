package repositories

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"chatitude/domain/chat"

	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *TranscriptRepository {
	t.Helper()
	return NewTranscriptRepository(filepath.Join(t.TempDir(), "database.json"), slog.Default())
}

func userMessage(id, text, sender string) chat.Message {
	return chat.Message{
		ID:         id,
		Text:       text,
		Sender:     chat.SenderUser,
		SenderName: sender,
		Type:       chat.ContentText,
	}
}

func Test_Append_Preserves_Insertion_Order(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	// Given three messages appended in order
	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("m%d", i)
		stored, err := repository.Append(userMessage(id, "hello", "Alice"))
		req.NoError(err)
		req.False(stored.CreatedAt.IsZero())
	}

	// Then the log returns them oldest first
	messages, err := repository.Messages()
	req.NoError(err)
	req.Len(messages, 3)
	for i, m := range messages {
		req.Equal(fmt.Sprintf("m%d", i), m.ID)
	}
}

func Test_Missing_File_Starts_Empty(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	messages, err := repository.Messages()
	req.NoError(err)
	req.Empty(messages)

	knowledge, err := repository.Knowledge()
	req.NoError(err)
	req.Empty(knowledge)
}

func Test_UpdateText_Rewrites_Exactly_One_Message(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	_, err := repository.Append(userMessage("m1", "first", "Alice"))
	req.NoError(err)
	_, err = repository.Append(userMessage("m2", "second", "Bob"))
	req.NoError(err)

	// When one message is edited
	messages, err := repository.UpdateText("m1", "first, corrected")
	req.NoError(err)

	// Then only that message changed and the full log came back
	req.Len(messages, 2)
	req.Equal("first, corrected", messages[0].Text)
	req.Equal("second", messages[1].Text)
}

func Test_UpdateText_Unknown_Id_Is_A_NoOp(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "database.json")
	repository := NewTranscriptRepository(path, slog.Default())

	_, err := repository.Append(userMessage("m1", "untouched", "Alice"))
	req.NoError(err)
	before, err := os.ReadFile(path)
	req.NoError(err)

	messages, err := repository.UpdateText("nope", "ghost edit")
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal("untouched", messages[0].Text)

	after, err := os.ReadFile(path)
	req.NoError(err)
	req.Equal(string(before), string(after))
}

func Test_Knowledge_Only_Grows(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	pairs := []chat.QuestionAnswer{
		{Question: "What port does the service use?", Answer: "3000"},
		{Question: "Who owns the deploy pipeline?", Answer: "Dana"},
	}
	for i, pair := range pairs {
		stored, err := repository.AppendKnowledge(pair)
		req.NoError(err)
		req.False(stored.CreatedAt.IsZero())

		knowledge, err := repository.Knowledge()
		req.NoError(err)
		req.Len(knowledge, i+1)
	}

	// Message traffic never touches the knowledge base
	_, err := repository.Append(userMessage("m1", "unrelated", "Alice"))
	req.NoError(err)
	_, err = repository.UpdateText("m1", "still unrelated")
	req.NoError(err)

	knowledge, err := repository.Knowledge()
	req.NoError(err)
	req.Len(knowledge, len(pairs))
	req.Equal("What port does the service use?", knowledge[0].Question)
}

// The regression test for the read-modify-write race: overlapping appends
// must never lose a message once they are serialized inside the repository.
func Test_Concurrent_Appends_Lose_Nothing(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	const writers = 20
	errs := make(chan error, writers)
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(n int) {
			defer wg.Done()
			_, err := repository.Append(userMessage(fmt.Sprintf("m%d", n), "racing", "Alice"))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		req.NoError(err)
	}

	messages, err := repository.Messages()
	req.NoError(err)
	req.Len(messages, writers)

	seen := make(map[string]struct{})
	for _, m := range messages {
		seen[m.ID] = struct{}{}
	}
	req.Len(seen, writers)
}

func Test_Document_Survives_A_Reopen(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "database.json")

	first := NewTranscriptRepository(path, slog.Default())
	_, err := first.Append(userMessage("m1", "persisted", "Alice"))
	req.NoError(err)
	_, err = first.AppendKnowledge(chat.QuestionAnswer{Question: "q", Answer: "a"})
	req.NoError(err)

	second := NewTranscriptRepository(path, slog.Default())
	messages, err := second.Messages()
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal("persisted", messages[0].Text)

	knowledge, err := second.Knowledge()
	req.NoError(err)
	req.Len(knowledge, 1)
}
