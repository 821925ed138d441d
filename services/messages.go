//go:generate go run go.uber.org/mock/mockgen -source=messages.go -destination=../mocks/mock_messages_service.go -package=mocks
package services

import (
	"chatitude/domain/chat"
	"chatitude/repositories"
)

type IMessagesService interface {
	All() ([]chat.Message, error)
	Save(cmd SaveMessageCommand) (chat.Message, error)
	Update(id, text string) ([]chat.Message, error)
}

// SaveMessageCommand is a send intent as it arrives from a client. The id
// is caller-supplied so the author can match its optimistic local copy.
type SaveMessageCommand struct {
	ID         string
	Text       string
	SenderName string
	SenderID   string
	Sender     chat.SenderKind
	Type       chat.ContentType
}

// MessagesService applies message defaults before hitting the store:
// sender kind falls back to USER, content type is sniffed when absent.
type MessagesService struct {
	repository repositories.ITranscriptRepository
}

func NewMessagesService(repository repositories.ITranscriptRepository) *MessagesService {
	return &MessagesService{repository: repository}
}

func (s *MessagesService) All() ([]chat.Message, error) {
	return s.repository.Messages()
}

func (s *MessagesService) Save(cmd SaveMessageCommand) (chat.Message, error) {
	sender := cmd.Sender
	if sender == "" {
		sender = chat.SenderUser
	}
	contentType := cmd.Type
	if contentType == "" {
		contentType = chat.DetectContentType(cmd.Text)
	}
	return s.repository.Append(chat.Message{
		ID:         cmd.ID,
		Text:       cmd.Text,
		Sender:     sender,
		SenderName: cmd.SenderName,
		SenderID:   cmd.SenderID,
		Type:       contentType,
	})
}

func (s *MessagesService) Update(id, text string) ([]chat.Message, error) {
	return s.repository.UpdateText(id, text)
}
