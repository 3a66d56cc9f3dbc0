package llm

import "fmt"

const groqBaseURL = "https://api.groq.com/openai/v1"

type ProviderConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

func NewClient(cfg ProviderConfig) (Client, error) {
	switch cfg.Provider {
	case "groq":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("groq: missing API key")
		}
		if cfg.Model == "" {
			cfg.Model = "mixtral-8x7b-32768"
		}
		base := cfg.BaseURL
		if base == "" {
			base = groqBaseURL
		}
		return NewOpenAIClient(cfg.APIKey, cfg.Model, base), nil
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai: missing API key")
		}
		return NewOpenAIClient(cfg.APIKey, cfg.Model, ""), nil
	case "anthropic":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("anthropic: missing API key")
		}
		return NewAnthropicClient(cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", cfg.Provider)
	}
}
