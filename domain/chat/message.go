// Package chat contains core concepts of the chat room.
// Messages are append-only; once stored, only their text may be rewritten.
package chat

import (
	"time"

	"github.com/google/uuid"
)

type SenderKind string

const (
	SenderUser SenderKind = "USER"
	SenderBot  SenderKind = "BOT"
)

type ContentType string

const (
	ContentText  ContentType = "text"
	ContentImage ContentType = "image"
)

// The bot participates under a fixed identity, like any other sender.
const (
	BotName     = "Chatitude"
	BotSenderID = "bot"
)

// Message is one transcript entry. JSON field names are part of the wire
// protocol and of the persisted document layout, so they stay camelCased.
type Message struct {
	ID         string      `json:"id"`
	Text       string      `json:"text"`
	Sender     SenderKind  `json:"senderType"`
	SenderName string      `json:"senderName"`
	SenderID   string      `json:"senderId,omitempty"`
	Type       ContentType `json:"type"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// QuestionAnswer is one fact the bot may recite later. Entries are
// append-only and never mutated.
type QuestionAnswer struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewBotMessage builds a bot-authored text message with a fresh id.
// CreatedAt is left zero; the store stamps it on append.
func NewBotMessage(text string) Message {
	return Message{
		ID:         uuid.NewString(),
		Text:       text,
		Sender:     SenderBot,
		SenderName: BotName,
		SenderID:   BotSenderID,
		Type:       ContentText,
	}
}
