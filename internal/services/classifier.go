package services

import (
	"context"
	"fmt"
	"strings"

	"alfredoptarigan/resume-screener/internal/models"
)

type CategoryClassifier interface {
	// Classify returns a single category name as free text.
	Classify(ctx context.Context, skills []string, categories []models.JobCategory) (string, error)
}

type categoryClassifier struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
}

func NewCategoryClassifier(generator TextGenerator) CategoryClassifier {
	return &categoryClassifier{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
	}
}

// Classify implements CategoryClassifier.
func (c *categoryClassifier) Classify(ctx context.Context, skills []string, categories []models.JobCategory) (string, error) {
	reply, err := c.generator.GenerateText(ctx, GenerationRequest{
		System:      c.promptBuilder.BuildClassificationSystemPrompt(categories),
		User:        c.promptBuilder.BuildClassificationUserPrompt(skills),
		MaxTokens:   classificationMaxTokens,
		Temperature: classificationTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to classify resume: %w", err)
	}

	return strings.TrimSpace(reply), nil
}
