package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"alfredoptarigan/resume-screener/internal/config"
)

type openAIService struct {
	client *resty.Client
	model  string
}

// NewOpenAIService talks to any OpenAI-compatible chat completions endpoint.
func NewOpenAIService(cfg config.LLMConfig) (TextGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("LLM API key is not set")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("LLM model name cannot be empty")
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &openAIService{
		client: client,
		model:  cfg.Model,
	}, nil
}

// GenerateText implements TextGenerator.
func (o *openAIService) GenerateText(ctx context.Context, req GenerationRequest) (string, error) {
	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model": o.model,
			"messages": []map[string]string{
				{"role": "system", "content": req.System},
				{"role": "user", "content": req.User},
			},
			"max_tokens":  req.MaxTokens,
			"temperature": req.Temperature,
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("failed to call LLM API: %w", err)
	}

	log.Printf("📡 LLM response status: %d\n", resp.StatusCode())

	if resp.IsError() {
		log.Printf("❌ LLM API error: %s\n", resp.String())
		return "", fmt.Errorf("LLM API error: %d", resp.StatusCode())
	}

	content := gjson.GetBytes(resp.Body(), "choices.0.message.content")
	if !content.Exists() {
		return "", fmt.Errorf("no message content in LLM response")
	}

	return content.String(), nil
}
