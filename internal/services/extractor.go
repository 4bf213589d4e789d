package services

import (
	"context"
	"fmt"
	"log"

	"alfredoptarigan/resume-screener/internal/models"
)

type ProfileExtractor interface {
	// Extract returns the profile and whether the filename fallback was used.
	Extract(ctx context.Context, content []byte, fileName string) (*models.ExtractedProfile, bool, error)
}

type profileExtractor struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
}

func NewProfileExtractor(generator TextGenerator) ProfileExtractor {
	return &profileExtractor{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
	}
}

// Extract implements ProfileExtractor.
func (e *profileExtractor) Extract(ctx context.Context, content []byte, fileName string) (*models.ExtractedProfile, bool, error) {
	payload := BuildFilePayload(content, fileName)
	log.Printf("📝 Extraction payload: %s, %d characters (.%s)\n", payload.Encoding, len(payload.Body), payload.Extension)

	reply, err := e.generator.GenerateText(ctx, GenerationRequest{
		System:      e.promptBuilder.BuildExtractionSystemPrompt(),
		User:        e.promptBuilder.BuildExtractionUserPrompt(payload),
		MaxTokens:   extractionMaxTokens,
		Temperature: extractionTemperature,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to extract resume fields: %w", err)
	}

	profile, fellBack := NormalizeProfile(reply, fileName)
	if fellBack {
		log.Printf("⚠️  Could not parse extraction reply as JSON, using filename fallback for %s\n", fileName)
	}

	return profile, fellBack, nil
}
