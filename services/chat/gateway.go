package chat

import (
	"context"
	"errors"

	"github.com/Bamise-gif/Camanda-lms-AI/models"
)

var (
	// ErrModelUnavailable reports that the completion service could not be
	// reached or returned an error.
	ErrModelUnavailable = errors.New("model service unavailable")
	// ErrModelResponseEmpty reports that the completion service answered
	// without any text content.
	ErrModelResponseEmpty = errors.New("model returned no content")
)

// CompletionClient is the gateway to the external completion service. One
// synchronous call per user turn; no retries, no streaming.
type CompletionClient interface {
	Complete(ctx context.Context, messages []models.Message) (string, error)
}
