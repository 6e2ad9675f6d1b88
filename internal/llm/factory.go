package llm

import (
	"context"
	"fmt"
	"strings"
)

// NewProvider creates the provider named by config.Provider.
func NewProvider(ctx context.Context, config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "gemini", "vertex", "":
		return NewGeminiProvider(ctx, config)

	case "openai", "ollama":
		return NewOpenAIProvider(config)

	case "anthropic", "claude":
		return NewAnthropicProvider(config)

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: gemini, vertex, openai, ollama, anthropic)", config.Provider)
	}
}
