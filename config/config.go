package config

import (
	"time"

	"studybuddy/utils"
)

// AIConfig points the AI proxy at an OpenAI-compatible chat-completions
// endpoint. Token budgets are fixed per capability, so only the
// connection settings live here.
type AIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

func LoadAIConfig() AIConfig {
	return AIConfig{
		BaseURL: utils.GetEnvAsString("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		APIKey:  utils.GetEnvAsString("OPENAI_API_KEY", ""),
		Model:   utils.GetEnvAsString("OPENAI_MODEL", "gpt-4o-mini"),
		Timeout: utils.GetEnvAsDuration("OPENAI_TIMEOUT", 30*time.Second),
	}
}
