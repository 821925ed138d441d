package workers

import (
	"context"
	"log/slog"
	"time"

	"chatitude/contract"
	"chatitude/domain/chat"
	"chatitude/domain/event"
	"chatitude/services"

	"github.com/google/uuid"
)

// Commentator produces an unsolicited remark, empty when there is nothing
// worth saying.
type Commentator interface {
	Commentary(ctx context.Context) (string, error)
}

// CommentaryWorker periodically asks the bot for an unsolicited remark and
// injects it into the room as a normal bot message. Any failure only skips
// the current tick; the worker itself keeps ticking until its context ends.
type CommentaryWorker struct {
	log         *slog.Logger
	commentator Commentator
	messages    services.IMessagesService
	broadcaster contract.Broadcaster
	interval    time.Duration
}

func NewCommentaryWorker(
	log *slog.Logger,
	commentator Commentator,
	messages services.IMessagesService,
	broadcaster contract.Broadcaster,
	interval time.Duration,
) *CommentaryWorker {
	return &CommentaryWorker{
		log:         log,
		commentator: commentator,
		messages:    messages,
		broadcaster: broadcaster,
		interval:    interval,
	}
}

func (w *CommentaryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping commentary worker")
			return ctx.Err()
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *CommentaryWorker) tick(ctx context.Context) {
	remark, err := w.commentator.Commentary(ctx)
	if err != nil {
		w.log.Warn("Commentary skipped", "error", err)
		return
	}
	if remark == "" {
		w.log.Debug("Nothing to say this tick")
		return
	}

	stored, err := w.messages.Save(services.SaveMessageCommand{
		ID:         uuid.NewString(),
		Text:       remark,
		SenderName: chat.BotName,
		SenderID:   chat.BotSenderID,
		Sender:     chat.SenderBot,
		Type:       chat.ContentText,
	})
	if err != nil {
		w.log.Error("Failed to persist commentary", "error", err)
		return
	}
	w.broadcaster.BroadcastAll(ctx, event.MessageReceived{Message: stored})
}
