//go:generate go run go.uber.org/mock/mockgen -source=transcript.go -destination=../mocks/mock_transcript_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"chatitude/domain/chat"
)

type ITranscriptRepository interface {
	Messages() ([]chat.Message, error)
	Append(message chat.Message) (chat.Message, error)
	UpdateText(id, text string) ([]chat.Message, error)
	Knowledge() ([]chat.QuestionAnswer, error)
	AppendKnowledge(pair chat.QuestionAnswer) (chat.QuestionAnswer, error)
}

// document is the full persisted state. Every mutation rewrites it as one
// unit; there is no partial update.
type document struct {
	Messages                []chat.Message        `json:"messages"`
	PastQuestionsAndAnswers []chat.QuestionAnswer `json:"pastQuestionsAndAnswers"`
}

// TranscriptRepository persists the transcript and the knowledge base in a
// single JSON document on disk. The read-modify-write cycle of each mutation
// spans disk I/O, so all calls are serialized behind one mutex: without it,
// two overlapping mutations would be last-write-wins on the whole document
// and one of them would be lost.
type TranscriptRepository struct {
	mu   sync.Mutex
	path string
	log  *slog.Logger
}

func NewTranscriptRepository(path string, log *slog.Logger) *TranscriptRepository {
	return &TranscriptRepository{path: path, log: log}
}

func (r *TranscriptRepository) Messages() ([]chat.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	return doc.Messages, nil
}

// Append stores a message at the end of the log and stamps its CreatedAt.
// Ids are not required to be unique; the log is strictly insertion-ordered.
func (r *TranscriptRepository) Append(message chat.Message) (chat.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return chat.Message{}, err
	}
	message.CreatedAt = time.Now().UTC()
	doc.Messages = append(doc.Messages, message)
	if err := r.save(doc); err != nil {
		return chat.Message{}, err
	}
	return message, nil
}

// UpdateText rewrites the text of every message carrying the given id and
// refreshes its CreatedAt. An unknown id is not an error: the document is
// written back unchanged and the full log is still returned.
func (r *TranscriptRepository) UpdateText(id, text string) ([]chat.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range doc.Messages {
		if doc.Messages[i].ID == id {
			doc.Messages[i].Text = text
			doc.Messages[i].CreatedAt = time.Now().UTC()
		}
	}
	if err := r.save(doc); err != nil {
		return nil, err
	}
	return doc.Messages, nil
}

func (r *TranscriptRepository) Knowledge() ([]chat.QuestionAnswer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	return doc.PastQuestionsAndAnswers, nil
}

// AppendKnowledge stores one learned question/answer pair. The knowledge
// base only grows; nothing ever removes or rewrites an entry.
func (r *TranscriptRepository) AppendKnowledge(pair chat.QuestionAnswer) (chat.QuestionAnswer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return chat.QuestionAnswer{}, err
	}
	pair.CreatedAt = time.Now().UTC()
	doc.PastQuestionsAndAnswers = append(doc.PastQuestionsAndAnswers, pair)
	if err := r.save(doc); err != nil {
		return chat.QuestionAnswer{}, err
	}
	return pair, nil
}

// load reads the whole document, creating it with empty arrays on first use.
func (r *TranscriptRepository) load() (document, error) {
	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		doc := document{Messages: []chat.Message{}, PastQuestionsAndAnswers: []chat.QuestionAnswer{}}
		if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
			return document{}, fmt.Errorf("creating store directory: %w", err)
		}
		if err := r.save(doc); err != nil {
			return document{}, err
		}
		r.log.Info("Created empty transcript store", "path", r.path)
		return doc, nil
	}
	if err != nil {
		return document{}, fmt.Errorf("reading store: %w", err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return document{}, fmt.Errorf("decoding store %s: %w", r.path, err)
	}
	return doc, nil
}

func (r *TranscriptRepository) save(doc document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	return nil
}
