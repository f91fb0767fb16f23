package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

type Config struct {
	Port            string
	CoursesFile     string
	LLMProvider     string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	OpenAIModel     string
	AnthropicModel  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[INFO] No .env file found, using environment variables")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		CoursesFile:     getEnv("COURSES_FILE", "courses.json"),
		LLMProvider:     getEnv("LLM_PROVIDER", ProviderOpenAI),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
