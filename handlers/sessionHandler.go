package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Bamise-gif/Camanda-lms-AI/services"

	"github.com/gorilla/mux"
)

type SessionHandler struct {
	sessionService *services.SessionService
	courseService  *services.CourseService
}

func NewSessionHandler(sessionService *services.SessionService, courseService *services.CourseService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		courseService:  courseService,
	}
}

func (h *SessionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/sessions", h.CreateSession).Methods("POST")
	router.HandleFunc("/sessions/{id}", h.GetSession).Methods("GET")
	router.HandleFunc("/sessions/{id}", h.ClearSession).Methods("DELETE")
	router.HandleFunc("/sessions/{id}/onboarding/complete", h.CompleteOnboarding).Methods("POST")
	router.HandleFunc("/sessions/{id}/onboarding/reset", h.ResetOnboarding).Methods("POST")
}

func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received session creation request")

	session := h.sessionService.CreateSession()

	h.writeJSONResponse(w, http.StatusCreated, map[string]any{
		"session":          session,
		"onboarding_steps": h.courseService.OnboardingSteps(),
	})
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	session, err := h.sessionService.GetSession(id)
	if err != nil {
		log.Printf("[ERROR] Failed to get session %s: %v", id, err)
		h.writeErrorResponse(w, sessionErrorStatus(err), err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, session)
}

func (h *SessionHandler) ClearSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.sessionService.ClearSession(id); err != nil {
		log.Printf("[ERROR] Failed to clear session %s: %v", id, err)
		h.writeErrorResponse(w, sessionErrorStatus(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.sessionService.CompleteOnboarding(id); err != nil {
		log.Printf("[ERROR] Failed to complete onboarding for session %s: %v", id, err)
		h.writeErrorResponse(w, sessionErrorStatus(err), err.Error())
		return
	}

	log.Printf("[INFO] Session %s completed onboarding", id)
	h.writeJSONResponse(w, http.StatusOK, map[string]bool{"onboarded": true})
}

func (h *SessionHandler) ResetOnboarding(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.sessionService.ResetOnboarding(id); err != nil {
		log.Printf("[ERROR] Failed to reset onboarding for session %s: %v", id, err)
		h.writeErrorResponse(w, sessionErrorStatus(err), err.Error())
		return
	}

	log.Printf("[INFO] Session %s onboarding reset", id)
	h.writeJSONResponse(w, http.StatusOK, map[string]any{
		"onboarded":        false,
		"onboarding_steps": h.courseService.OnboardingSteps(),
	})
}

func sessionErrorStatus(err error) int {
	if errors.Is(err, services.ErrSessionNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (h *SessionHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *SessionHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
