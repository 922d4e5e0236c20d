package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agenthands/schemagraph/internal/config"
	"go.uber.org/zap"
)

const defaultOllamaURL = "http://localhost:11434"

// NewClient builds the provider client named in cfg, wrapped with call logging
// and, when cfg.Timeout is set, a per-call deadline.
func NewClient(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (LLMClient, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var c LLMClient

	switch strings.ToLower(cfg.Provider) {
	case "openai":
		c = NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL)

	case "gemini":
		gc, err := NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		c = gc

	case "claude":
		c = NewClaudeClient(cfg.APIKey, cfg.Model, cfg.BaseURL)

	case "ollama":
		// Ollama speaks the OpenAI protocol under /v1 and ignores the key.
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = defaultOllamaURL
		}
		if !strings.HasSuffix(baseURL, "/v1") {
			baseURL = strings.TrimRight(baseURL, "/") + "/v1"
		}
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}
		logger.Debug("using ollama through openai-compatible api", zap.String("base_url", baseURL))
		c = NewOpenAIClient(apiKey, cfg.Model, baseURL)

	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownProvider, cfg.Provider)
	}

	if cfg.Timeout > 0 {
		c = WithTimeout(c, time.Duration(cfg.Timeout))
	}
	return WithLogging(c, logger.With(zap.String("provider", cfg.Provider), zap.String("model", cfg.Model))), nil
}
