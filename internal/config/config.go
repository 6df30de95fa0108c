package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	UploadsDir  string
	Port        string

	// Entity recognizer configuration
	NERProvider string // "openai", "groq", or "ollama"
	NERModel    string
	NERAPIKey   string // OpenAI or Groq API key
	OllamaURL   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	provider := os.Getenv("NER_PROVIDER")
	if provider == "" {
		provider = "ollama" // local default, no credentials needed
	}

	model := os.Getenv("NER_MODEL")
	if model == "" {
		switch provider {
		case "openai":
			model = "gpt-4o-mini"
		case "groq":
			model = "llama-3.3-70b-versatile"
		default:
			model = "llama3.1"
		}
	}

	apiKey := ""
	switch provider {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
	case "groq":
		apiKey = os.Getenv("GROQ_API_KEY")
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		UploadsDir:  uploadsDir,
		Port:        port,
		NERProvider: provider,
		NERModel:    model,
		NERAPIKey:   apiKey,
		OllamaURL:   os.Getenv("OLLAMA_URL"),
	}
}
