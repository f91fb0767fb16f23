package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Bamise-gif/Camanda-lms-AI/models"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// OpenAIClient completes conversations through the OpenAI chat API.
type OpenAIClient struct {
	llm llms.Model
}

func NewOpenAIClient(apiKey, model string) (*OpenAIClient, error) {
	llm, err := openai.New(
		openai.WithModel(model),
		openai.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &OpenAIClient{llm: llm}, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, messages []models.Message) (string, error) {
	log.Printf("[INFO] Calling OpenAI with %d messages", len(messages))

	history := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		var msgType schema.ChatMessageType
		switch msg.Role {
		case models.RoleSystem:
			msgType = schema.ChatMessageTypeSystem
		case models.RoleAssistant:
			msgType = schema.ChatMessageTypeAI
		default:
			msgType = schema.ChatMessageTypeHuman
		}
		history = append(history, llms.TextParts(msgType, msg.Content))
	}

	resp, err := c.llm.GenerateContent(ctx, history)
	if err != nil {
		log.Printf("[ERROR] OpenAI completion failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		log.Printf("[ERROR] OpenAI returned no content")
		return "", ErrModelResponseEmpty
	}

	return resp.Choices[0].Content, nil
}
