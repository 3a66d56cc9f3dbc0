package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	LLMProvider   string // groq, openai, anthropic
	GroqKey       string
	OpenAIKey     string
	AnthropicKey  string
	LLMModel      string
	GroqBaseURL   string
	DataDir       string // holds tasks.json, routine.json, calendar.json
	CalendarURL   string
	CalendarToken string
	CalendarID    string
	CalendarTZ    string
	WebhookURL    string
	AutoRunCron   string
}

func Load() *Config {
	_ = godotenv.Load() // ignore error if no .env

	return &Config{
		LLMProvider:   envOr("LLM_PROVIDER", "groq"),
		GroqKey:       os.Getenv("GROQ_API_KEY"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		AnthropicKey:  os.Getenv("ANTHROPIC_API_KEY"),
		LLMModel:      envOr("LLM_MODEL", os.Getenv("GROQ_MODEL")),
		GroqBaseURL:   envOr("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		DataDir:       envOr("DATA_DIR", "./data"),
		CalendarURL:   envOr("CALENDAR_API_URL", "https://www.googleapis.com/calendar/v3"),
		CalendarToken: os.Getenv("CALENDAR_TOKEN"),
		CalendarID:    envOr("CALENDAR_ID", "primary"),
		CalendarTZ:    envOr("CALENDAR_TIMEZONE", "Asia/Taipei"),
		WebhookURL:    os.Getenv("WEBHOOK_URL"),
		AutoRunCron:   envOr("AUTO_RUN_CRON", "0 7 * * *"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
