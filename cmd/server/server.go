package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Bamise-gif/Camanda-lms-AI/config"
	"github.com/Bamise-gif/Camanda-lms-AI/db"
	"github.com/Bamise-gif/Camanda-lms-AI/handlers"
	"github.com/Bamise-gif/Camanda-lms-AI/services"
	"github.com/Bamise-gif/Camanda-lms-AI/services/chat"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	courseRepo := db.NewFileCourseRepository(cfg.CoursesFile)
	courseService, err := services.NewCourseService(courseRepo)
	if err != nil {
		log.Fatalf("Failed to load courses dataset: %v", err)
	}

	completionClient, err := buildCompletionClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize completion client: %v", err)
	}

	sessionService := services.NewSessionService()
	chatService := chat.NewService(sessionService, courseService, completionClient)

	sessionHandler := handlers.NewSessionHandler(sessionService, courseService)
	courseHandler := handlers.NewCourseHandler(courseService)
	chatHandler := handlers.NewChatHandler(chatService, sessionService)

	router := mux.NewRouter()

	router.Use(corsMiddleware)
	router.Use(jsonMiddleware)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("OPTIONS")

	sessionHandler.RegisterRoutes(router)
	courseHandler.RegisterRoutes(router)
	chatHandler.RegisterRoutes(router)

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	addr := ":" + cfg.Port
	fmt.Printf("Server starting on port %s\n", cfg.Port)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func buildCompletionClient(cfg *config.Config) (chat.CompletionClient, error) {
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			log.Fatal("OPENAI_API_KEY environment variable is required")
		}
		return chat.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	case config.ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			log.Fatal("ANTHROPIC_API_KEY environment variable is required")
		}
		return chat.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.LLMProvider)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}
