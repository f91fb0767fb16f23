package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Bamise-gif/Camanda-lms-AI/models"
	"github.com/Bamise-gif/Camanda-lms-AI/services"
	"github.com/Bamise-gif/Camanda-lms-AI/services/chat"

	"github.com/gorilla/mux"
)

type ChatHandler struct {
	chatService    *chat.Service
	sessionService *services.SessionService
}

func NewChatHandler(chatService *chat.Service, sessionService *services.SessionService) *ChatHandler {
	return &ChatHandler{
		chatService:    chatService,
		sessionService: sessionService,
	}
}

func (h *ChatHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/chat", h.ProcessMessage).Methods("POST")
	router.HandleFunc("/chat/history", h.GetHistory).Methods("GET")
}

func (h *ChatHandler) ProcessMessage(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received chat request")

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode chat request JSON: %v", err)
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if req.SessionID == "" {
		h.writeErrorResponse(w, http.StatusBadRequest, "session_id is required")
		return
	}
	if !req.Persona.Valid() {
		h.writeErrorResponse(w, http.StatusBadRequest, "unknown persona")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.writeErrorResponse(w, http.StatusBadRequest, "message is required")
		return
	}

	result, err := h.chatService.HandleMessage(r.Context(), req.SessionID, req.Persona, req.Message)
	if err != nil {
		log.Printf("[ERROR] Chat turn failed: %v", err)
		h.writeErrorResponse(w, chatErrorStatus(err), err.Error())
		return
	}

	log.Printf("[INFO] Chat turn completed successfully")
	h.writeJSONResponse(w, http.StatusOK, result)
}

func (h *ChatHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	persona := models.Persona(r.URL.Query().Get("persona"))

	if sessionID == "" {
		h.writeErrorResponse(w, http.StatusBadRequest, "session_id is required")
		return
	}
	if !persona.Valid() {
		h.writeErrorResponse(w, http.StatusBadRequest, "unknown persona")
		return
	}

	history, err := h.sessionService.History(sessionID, persona)
	if err != nil {
		log.Printf("[ERROR] Failed to get history: %v", err)
		h.writeErrorResponse(w, chatErrorStatus(err), err.Error())
		return
	}

	h.writeJSONResponse(w, http.StatusOK, map[string]any{
		"session_id": sessionID,
		"persona":    persona,
		"messages":   history,
	})
}

func chatErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrOnboardingRequired):
		return http.StatusConflict
	case errors.Is(err, chat.ErrModelUnavailable), errors.Is(err, chat.ErrModelResponseEmpty):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *ChatHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (h *ChatHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
