package bot

import (
	"context"
	"fmt"
	"strings"

	"chatitude/errors"

	openai "github.com/sashabaranov/go-openai"
)

// Answers stay short; the cap keeps the bot from monologuing.
const maxCompletionTokens = 200

// OpenAICompleter talks to the OpenAI chat completions API in JSON mode, so
// the model is constrained to emit a single JSON object.
type OpenAICompleter struct {
	client *openai.Client
	model  string
}

func NewOpenAICompleter(apiKey, model string) *OpenAICompleter {
	return &OpenAICompleter{client: openai.NewClient(apiKey), model: model}
}

func (c *OpenAICompleter) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
	}
	if userMessage != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser, Content: userMessage,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: maxCompletionTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.ErrEmptyCompletion
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.ErrEmptyCompletion
	}
	return content, nil
}
