package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	Timezone    string
	DBPath      string
	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string
	StrictAuth  bool
	EmailFrom   string
	SMSSender   string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		Timezone:    get("TZ", "UTC"),
		DBPath:      get("DB_PATH", "haven.db"),
		LLMEndpoint: get("LLM_ENDPOINT", ""),
		LLMAPIKey:   get("LLM_API_KEY", ""),
		LLMModel:    get("LLM_MODEL", "gpt-4o-mini"),
		StrictAuth:  get("STRICT_AUTH", "false") == "true",
		EmailFrom:   get("EMAIL_FROM", "alerts@haven.local"),
		SMSSender:   get("SMS_SENDER", "HAVEN"),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
