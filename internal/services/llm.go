package services

import (
	"context"
	"fmt"

	"alfredoptarigan/resume-screener/internal/config"
)

// GenerationRequest is a single system+user exchange with the model.
type GenerationRequest struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float32
}

// TextGenerator is the narrow seam to the external model. Implementations make
// exactly one outbound call per GenerateText and never retry.
type TextGenerator interface {
	GenerateText(ctx context.Context, req GenerationRequest) (string, error)
}

// NewTextGenerator picks the provider named in cfg.LLM.Provider. The gemini
// service is reused when it was already built for embeddings.
func NewTextGenerator(cfg *config.Config, gemini GeminiService) (TextGenerator, error) {
	switch cfg.LLM.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIService(cfg.LLM)
	case config.ProviderGemini:
		if gemini != nil {
			return gemini, nil
		}
		return NewGeminiService(context.Background(), cfg.Gemini)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.LLM.Provider)
	}
}
