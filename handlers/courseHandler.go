package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Bamise-gif/Camanda-lms-AI/services"

	"github.com/gorilla/mux"
)

type CourseHandler struct {
	courseService *services.CourseService
}

func NewCourseHandler(courseService *services.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

func (h *CourseHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/courses", h.ListCourses).Methods("GET")
	router.HandleFunc("/courses/search", h.SearchCourses).Methods("GET")
	router.HandleFunc("/assignments", h.ListAssignments).Methods("GET")
	router.HandleFunc("/schedule", h.GetSchedule).Methods("GET")
	router.HandleFunc("/onboarding/steps", h.GetOnboardingSteps).Methods("GET")
}

func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, map[string]any{"courses": h.courseService.Courses()})
}

func (h *CourseHandler) SearchCourses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	log.Printf("[INFO] Received course search request for %q", query)

	courses := h.courseService.SearchCourses(query)
	h.writeJSONResponse(w, http.StatusOK, map[string]any{"courses": courses})
}

func (h *CourseHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, map[string]any{"assignments": h.courseService.Assignments()})
}

func (h *CourseHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, map[string]any{"schedule": h.courseService.Schedule()})
}

func (h *CourseHandler) GetOnboardingSteps(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, map[string]any{"steps": h.courseService.OnboardingSteps()})
}

func (h *CourseHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
