package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"chatitude/domain/chat"
	"chatitude/errors"
	"chatitude/repositories"
)

// History windows handed to the reasoning call. Classification gets a wider
// view than unsolicited commentary.
const (
	classifyHistoryLimit   = 100
	commentaryHistoryLimit = 50
)

// Decision is the structured verdict expected from the reasoning call.
type Decision struct {
	Message                 string     `json:"message"`
	IsAnswerForPastQuestion bool       `json:"isAnswerForPastQuestion"`
	NewAnswer               *NewAnswer `json:"newAnswer,omitempty"`
}

type NewAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// decodeDecision is the explicit fallible step between the model and the
// rest of the system. Model output is never trusted as structured data.
func decodeDecision(raw string) (Decision, error) {
	var d Decision
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return Decision{}, fmt.Errorf("%w: %v", errors.ErrMalformedDecision, err)
	}
	return d, nil
}

// Engine classifies each fresh human message against the accumulated
// knowledge base and produces the bot's side of the conversation. Without a
// completer it is a disabled no-op: it never answers and never learns.
type Engine struct {
	log        *slog.Logger
	repository repositories.ITranscriptRepository
	completer  Completer
	timeout    time.Duration
}

func NewEngine(log *slog.Logger, repository repositories.ITranscriptRepository, completer Completer, timeout time.Duration) *Engine {
	if completer == nil {
		log.Warn("No reasoning credential configured, bot is disabled")
	}
	return &Engine{log: log, repository: repository, completer: completer, timeout: timeout}
}

func (e *Engine) Enabled() bool {
	return e.completer != nil
}

// ProcessMessage classifies one stored human message. When the
// classification yields a new question/answer pair it is recorded first;
// when it marks the message as a repeat of an answered question, the reply
// is persisted as a bot message and returned for broadcast. Errors from the
// reasoning call or its decoding propagate: the triggering send has already
// been broadcast, only the bot's side effects are absent for that turn.
func (e *Engine) ProcessMessage(ctx context.Context, message chat.Message) (*chat.Message, error) {
	if !e.Enabled() {
		return nil, nil
	}
	// The bot never reasons about its own output.
	if message.Sender == chat.SenderBot {
		return nil, nil
	}

	knowledge, err := e.repository.Knowledge()
	if err != nil {
		return nil, err
	}
	recent, err := e.repository.Messages()
	if err != nil {
		return nil, err
	}

	raw, err := e.complete(ctx, classifyPrompt(knowledge, recent, message.Text), message.Text)
	if err != nil {
		return nil, err
	}
	decision, err := decodeDecision(raw)
	if err != nil {
		return nil, err
	}

	if decision.NewAnswer != nil {
		pair := chat.QuestionAnswer{
			Question: decision.NewAnswer.Question,
			Answer:   decision.NewAnswer.Answer,
		}
		if _, err := e.repository.AppendKnowledge(pair); err != nil {
			return nil, err
		}
		e.log.Info("Learned a new answer", "question", pair.Question)
	}

	if decision.IsAnswerForPastQuestion && decision.Message != "" {
		stored, err := e.repository.Append(chat.NewBotMessage(decision.Message))
		if err != nil {
			return nil, err
		}
		return &stored, nil
	}
	return nil, nil
}

// Commentary asks for an unsolicited remark over a shorter history window.
// An empty remark means the bot had nothing to say this time.
func (e *Engine) Commentary(ctx context.Context) (string, error) {
	if !e.Enabled() {
		return "", nil
	}

	knowledge, err := e.repository.Knowledge()
	if err != nil {
		return "", err
	}
	recent, err := e.repository.Messages()
	if err != nil {
		return "", err
	}

	raw, err := e.complete(ctx, commentaryPrompt(knowledge, recent), "")
	if err != nil {
		return "", err
	}
	decision, err := decodeDecision(raw)
	if err != nil {
		return "", err
	}
	return decision.Message, nil
}

func (e *Engine) complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	return e.completer.Complete(ctx, systemPrompt, userMessage)
}
