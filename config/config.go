package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	LLMProvider   string // openai, anthropic, ollama
	OpenAIKey     string
	AnthropicKey  string
	LLMModel      string
	OllamaBaseURL string
	DiscordToken  string
	StorePath     string
	JournalPath   string
	CheckInCron   string
}

func Load() *Config {
	_ = godotenv.Load() // ignore error if no .env

	return &Config{
		LLMProvider:   envOr("LLM_PROVIDER", "openai"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		AnthropicKey:  os.Getenv("ANTHROPIC_API_KEY"),
		LLMModel:      os.Getenv("LLM_MODEL"),
		OllamaBaseURL: envOr("OLLAMA_BASE_URL", "http://localhost:11434/v1"),
		DiscordToken:  os.Getenv("DISCORD_BOT_TOKEN"),
		StorePath:     envOr("STORE_PATH", "./database.json"),
		JournalPath:   envOr("JOURNAL_PATH", "./journal.db"),
		CheckInCron:   envOr("CHECK_IN_CRON", "0 9 * * *"),
	}
}

// CompletionKey returns the credential for the configured provider.
// Ollama runs locally and needs none.
func (c *Config) CompletionKey() string {
	switch c.LLMProvider {
	case "anthropic":
		return c.AnthropicKey
	default:
		return c.OpenAIKey
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
