package bot

import (
	"fmt"
	"strings"

	"chatitude/domain/chat"

	"github.com/samber/lo"
)

const (
	noKnowledgeSentinel = "No questions have been answered yet."
	noMessagesSentinel  = "No recent messages."
	knowledgeDivider    = "\n\n---\n\n"
)

const personaTemplate = `You are a bot living in a chat room where users ask questions and answer each other's questions.
Your name is Chatitude (a chat with an attitude).
You answer a user's question ONLY when it has already been answered by users in the past.
The "Already Answered Questions" section below is your whole knowledge base; answer only from it.
You have attitude: responses should be a bit toxic, smart and funny, while staying faithful to the knowledge base.

You will receive the latest messages of the chatroom and must process only the last one.
If it is a *question* that has already been answered, answer it; if it has not been answered, do nothing.
Never react to answers, only to questions.

# Respond with a JSON object containing:
{
    "message": "answer", // your toxic and funny answer, only if the question was already answered; otherwise an empty string
    "isAnswerForPastQuestion": true/false,
    "newAnswer": { // present only when the processed message is a user answering a previously asked question, otherwise omit this field
        "question": "question", // the question that was asked
        "answer": "answer" // the answer another user just gave
    }
}

# Already Answered Questions:
%s`

const commentaryTemplate = `You are a funny bot living in a chat room where users ask questions and answer each other's questions.
Your name is Chatitude (a chat with an attitude).
Write one funny random message to pop into the chatroom, teasing the users about their past messages.
The users are technical developers, so make it funny and a bit toxic about them.

# Knowledge Base:
%s

# Last messages from users in the chatroom:
%s

# Respond with a JSON object containing:
{
    "message": "answer"
}`

func classifyPrompt(knowledge []chat.QuestionAnswer, recent []chat.Message, subject string) string {
	var b strings.Builder
	fmt.Fprintf(&b, personaTemplate, renderKnowledge(knowledge))
	b.WriteString("\n\n# Last messages from users in the chatroom:\n")
	b.WriteString(renderRecent(recent, classifyHistoryLimit))
	b.WriteString("\n\n# New message you are asked about:\n")
	b.WriteString(subject)
	b.WriteString("\n\n# Your JSON response:")
	return b.String()
}

func commentaryPrompt(knowledge []chat.QuestionAnswer, recent []chat.Message) string {
	return fmt.Sprintf(commentaryTemplate,
		renderKnowledge(knowledge),
		renderRecent(recent, commentaryHistoryLimit),
	)
}

func renderKnowledge(pairs []chat.QuestionAnswer) string {
	if len(pairs) == 0 {
		return noKnowledgeSentinel
	}
	lines := lo.Map(pairs, func(pair chat.QuestionAnswer, _ int) string {
		return fmt.Sprintf("Q: %q\nA: %q", pair.Question, pair.Answer)
	})
	return strings.Join(lines, knowledgeDivider)
}

func renderRecent(messages []chat.Message, limit int) string {
	if len(messages) == 0 {
		return noMessagesSentinel
	}
	if len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	lines := lo.Map(messages, func(m chat.Message, _ int) string {
		return fmt.Sprintf("%s: %q", m.SenderName, m.Text)
	})
	return strings.Join(lines, "\n")
}
