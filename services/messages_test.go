package services

import (
	"path/filepath"
	"testing"

	"chatitude/domain/chat"
	"chatitude/repositories"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *MessagesService {
	t.Helper()
	repository := repositories.NewTranscriptRepository(filepath.Join(t.TempDir(), "database.json"), logs.GetLoggerFromString("ERROR"))
	return NewMessagesService(repository)
}

func Test_Save_Defaults_To_User_Text(t *testing.T) {
	req := require.New(t)
	service := newService(t)

	// When a client sends a bare message
	stored, err := service.Save(SaveMessageCommand{ID: "m1", Text: "hello", SenderName: "Alice"})

	// Then the gaps are filled before persisting
	req.NoError(err)
	req.Equal(chat.SenderUser, stored.Sender)
	req.Equal(chat.ContentText, stored.Type)
	req.False(stored.CreatedAt.IsZero())
}

func Test_Save_Keeps_Explicit_Fields(t *testing.T) {
	req := require.New(t)
	service := newService(t)

	stored, err := service.Save(SaveMessageCommand{
		ID:         "m2",
		Text:       "pong",
		SenderName: chat.BotName,
		SenderID:   chat.BotSenderID,
		Sender:     chat.SenderBot,
		Type:       chat.ContentText,
	})

	req.NoError(err)
	req.Equal(chat.SenderBot, stored.Sender)
	req.Equal(chat.BotSenderID, stored.SenderID)
}

func Test_Save_Sniffs_Image_Payloads(t *testing.T) {
	req := require.New(t)
	service := newService(t)

	stored, err := service.Save(SaveMessageCommand{
		ID:         "m3",
		Text:       "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg==",
		SenderName: "Alice",
	})

	req.NoError(err)
	req.Equal(chat.ContentImage, stored.Type)
}

func Test_Update_Returns_The_Full_Log(t *testing.T) {
	req := require.New(t)
	service := newService(t)

	_, err := service.Save(SaveMessageCommand{ID: "m1", Text: "helo", SenderName: "Alice"})
	req.NoError(err)
	_, err = service.Save(SaveMessageCommand{ID: "m2", Text: "hi", SenderName: "Bob"})
	req.NoError(err)

	log, err := service.Update("m1", "hello")

	req.NoError(err)
	req.Len(log, 2)
	req.Equal("hello", log[0].Text)
	req.Equal("hi", log[1].Text)
}
