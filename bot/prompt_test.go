package bot

import (
	"fmt"
	"strings"
	"testing"

	"chatitude/domain/chat"

	"github.com/stretchr/testify/require"
)

func Test_Knowledge_Rendering(t *testing.T) {
	req := require.New(t)

	req.Equal(noKnowledgeSentinel, renderKnowledge(nil))

	rendered := renderKnowledge([]chat.QuestionAnswer{
		{Question: "What port does the service use?", Answer: "3000"},
		{Question: "Who owns the deploy pipeline?", Answer: "Dana"},
	})
	req.Contains(rendered, `Q: "What port does the service use?"`)
	req.Contains(rendered, `A: "3000"`)
	req.Contains(rendered, "\n\n---\n\n")
}

func Test_Recent_History_Is_Windowed_From_The_Tail(t *testing.T) {
	req := require.New(t)

	req.Equal(noMessagesSentinel, renderRecent(nil, 10))

	var messages []chat.Message
	for i := 0; i < 5; i++ {
		messages = append(messages, chat.Message{
			SenderName: "Alice",
			Text:       fmt.Sprintf("message %d", i),
		})
	}
	rendered := renderRecent(messages, 2)
	req.NotContains(rendered, "message 2")
	req.Contains(rendered, `Alice: "message 3"`)
	req.Contains(rendered, `Alice: "message 4"`)
	req.Len(strings.Split(rendered, "\n"), 2)
}

func Test_Classify_Prompt_Layout(t *testing.T) {
	req := require.New(t)

	prompt := classifyPrompt(
		[]chat.QuestionAnswer{{Question: "q", Answer: "a"}},
		[]chat.Message{{SenderName: "Alice", Text: "q"}},
		"is it q?",
	)

	req.Contains(prompt, "Chatitude")
	req.Contains(prompt, "# Already Answered Questions:")
	req.Contains(prompt, "# Last messages from users in the chatroom:")
	req.Contains(prompt, "# New message you are asked about:\nis it q?")
	req.True(strings.HasSuffix(prompt, "# Your JSON response:"))
}
