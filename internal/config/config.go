package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const defaultModel = "gemini-2.5-flash"

// Config holds the application configuration.
type Config struct {
	GeminiAPIKey string
	GeminiModel  string
}

// LoadConfig loads the configuration from the environment. A .env file in
// the working directory is read first if present, so local runs don't need
// an exported key.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &Config{
		GeminiAPIKey: apiKey,
		GeminiModel:  model,
	}, nil
}
