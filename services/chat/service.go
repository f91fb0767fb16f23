package chat

import (
	"context"
	"fmt"
	"log"

	"github.com/Bamise-gif/Camanda-lms-AI/models"
	"github.com/Bamise-gif/Camanda-lms-AI/services"
	"github.com/Bamise-gif/Camanda-lms-AI/services/router"
)

// Service runs one full chat turn: route the message, answer from the
// dataset or delegate to the completion client, and record the exchange in
// the session's persona history.
type Service struct {
	sessionService *services.SessionService
	courseService  *services.CourseService
	client         CompletionClient
}

func NewService(sessionService *services.SessionService, courseService *services.CourseService, client CompletionClient) *Service {
	return &Service{
		sessionService: sessionService,
		courseService:  courseService,
		client:         client,
	}
}

func (s *Service) HandleMessage(ctx context.Context, sessionID string, persona models.Persona, message string) (*models.ChatResponse, error) {
	log.Printf("[INFO] Handling chat message for session %s, persona %s", sessionID, persona)

	onboarded, err := s.sessionService.Onboarded(sessionID)
	if err != nil {
		return nil, err
	}
	if !onboarded {
		log.Printf("[ERROR] Session %s attempted chat before completing onboarding", sessionID)
		return nil, services.ErrOnboardingRequired
	}

	doc := s.courseService.Document()

	result := router.Route(persona, message, doc)
	if result.Kind == router.RouteDirectAnswer {
		if err := s.recordExchange(sessionID, persona, message, result.Answer); err != nil {
			return nil, err
		}
		return &models.ChatResponse{Reply: result.Answer, Source: models.ReplySourceDataset}, nil
	}

	history, err := s.sessionService.History(sessionID, persona)
	if err != nil {
		return nil, err
	}

	// The user turn is recorded before the model call so a failed
	// delegation still leaves the question in the history.
	if err := s.sessionService.AppendUserTurn(sessionID, persona, message); err != nil {
		return nil, err
	}

	assembled := Assemble(persona, history, message, doc)

	reply, err := s.client.Complete(ctx, assembled)
	if err != nil {
		return nil, fmt.Errorf("delegation failed for persona %s: %w", persona, err)
	}

	if err := s.sessionService.AppendAssistantTurn(sessionID, persona, reply); err != nil {
		return nil, err
	}

	log.Printf("[INFO] Chat turn for session %s completed via model", sessionID)
	return &models.ChatResponse{Reply: reply, Source: models.ReplySourceModel}, nil
}

func (s *Service) recordExchange(sessionID string, persona models.Persona, message, reply string) error {
	if err := s.sessionService.AppendUserTurn(sessionID, persona, message); err != nil {
		return err
	}
	return s.sessionService.AppendAssistantTurn(sessionID, persona, reply)
}
