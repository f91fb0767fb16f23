package services

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Bamise-gif/Camanda-lms-AI/models"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	// ErrOnboardingRequired gates chat access until the session has
	// acknowledged the onboarding checklist.
	ErrOnboardingRequired = errors.New("onboarding not completed")
)

// SessionService owns all per-session state: one append-only conversation per
// persona plus the onboarding flag. Sessions live in memory only.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewSessionService() *SessionService {
	return &SessionService{
		sessions: make(map[string]*models.Session),
	}
}

func (s *SessionService) CreateSession() *models.SessionSnapshot {
	session := &models.Session{
		ID:        uuid.NewString(),
		Histories: make(map[models.Persona][]models.Message),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	log.Printf("[INFO] Created session %s", session.ID)
	return snapshot(session)
}

func (s *SessionService) GetSession(id string) (*models.SessionSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return snapshot(session), nil
}

// ClearSession drops the session entirely, the logout action in the UI.
func (s *SessionService) ClearSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	delete(s.sessions, id)
	log.Printf("[INFO] Cleared session %s", id)
	return nil
}

func (s *SessionService) CompleteOnboarding(id string) error {
	return s.setOnboarded(id, true)
}

// ResetOnboarding re-imposes the onboarding gate; conversation histories are
// kept.
func (s *SessionService) ResetOnboarding(id string) error {
	return s.setOnboarded(id, false)
}

func (s *SessionService) setOnboarded(id string, onboarded bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	session.Onboarded = onboarded
	log.Printf("[INFO] Session %s onboarded flag set to %t", id, onboarded)
	return nil
}

func (s *SessionService) Onboarded(id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return session.Onboarded, nil
}

// History returns a copy of the persona's conversation in order.
func (s *SessionService) History(id string, persona models.Persona) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	history := session.Histories[persona]
	out := make([]models.Message, len(history))
	copy(out, history)
	return out, nil
}

func (s *SessionService) AppendUserTurn(id string, persona models.Persona, content string) error {
	return s.appendTurn(id, persona, models.Message{Role: models.RoleUser, Content: content})
}

func (s *SessionService) AppendAssistantTurn(id string, persona models.Persona, content string) error {
	return s.appendTurn(id, persona, models.Message{Role: models.RoleAssistant, Content: content})
}

func (s *SessionService) appendTurn(id string, persona models.Persona, msg models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	session.Histories[persona] = append(session.Histories[persona], msg)
	return nil
}

func snapshot(session *models.Session) *models.SessionSnapshot {
	return &models.SessionSnapshot{
		ID:        session.ID,
		Onboarded: session.Onboarded,
		Personas:  models.AllPersonas,
		CreatedAt: session.CreatedAt,
	}
}
