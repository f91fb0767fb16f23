package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Bamise-gif/Camanda-lms-AI/models"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient completes conversations through the Anthropic Messages
// API. System messages are lifted into the request's system prompt since
// the API does not accept a system role inside the message list.
type AnthropicClient struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewAnthropicClient(apiKey, model string) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	selected := anthropic.ModelClaude4Sonnet20250514
	if model != "" {
		selected = anthropic.Model(model)
	}

	return &AnthropicClient{
		client: &client,
		model:  selected,
	}
}

func (c *AnthropicClient) Complete(ctx context.Context, messages []models.Message) (string, error) {
	log.Printf("[INFO] Calling Anthropic with %d messages", len(messages))

	var systemBlocks []anthropic.TextBlockParam
	var anthropicMessages []anthropic.MessageParam

	for _, msg := range messages {
		switch msg.Role {
		case models.RoleSystem:
			systemBlocks = append(systemBlocks, anthropic.TextBlockParam{Text: msg.Content})
		case models.RoleAssistant:
			anthropicMessages = append(anthropicMessages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			anthropicMessages = append(anthropicMessages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	response, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 4096,
		System:    systemBlocks,
		Messages:  anthropicMessages,
	})
	if err != nil {
		log.Printf("[ERROR] Anthropic completion failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	var reply strings.Builder
	for _, block := range response.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			reply.WriteString(text.Text)
		}
	}

	if strings.TrimSpace(reply.String()) == "" {
		log.Printf("[ERROR] Anthropic returned no text content")
		return "", ErrModelResponseEmpty
	}

	return reply.String(), nil
}
