package services

import (
	"context"
	"errors"
	"fmt"

	"alfredoptarigan/resume-screener/internal/models"
)

// ErrIndexingDisabled is returned by similarity lookups when no vector index
// is configured.
var ErrIndexingDisabled = errors.New("candidate indexing is not enabled")

type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// CandidateIndexer keeps processed resumes searchable by profile similarity.
type CandidateIndexer interface {
	Index(ctx context.Context, resume *models.Resume, category *models.JobCategory) error
	FindSimilar(ctx context.Context, resume *models.Resume, limit int) ([]models.SimilarCandidate, error)
}

type candidateIndexer struct {
	embedder      Embedder
	index         CandidateIndex
	promptBuilder *PromptBuilder
}

func NewCandidateIndexer(embedder Embedder, index CandidateIndex) CandidateIndexer {
	return &candidateIndexer{
		embedder:      embedder,
		index:         index,
		promptBuilder: NewPromptBuilder(),
	}
}

// Index implements CandidateIndexer.
func (c *candidateIndexer) Index(ctx context.Context, resume *models.Resume, category *models.JobCategory) error {
	categoryName := categoryNameOf(category)
	document := c.promptBuilder.BuildCandidateDocument(resume, categoryName)

	embedding, err := c.embedder.GenerateEmbedding(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to embed candidate: %w", err)
	}

	return c.index.Upsert(ctx, resume.ID.String(), categoryName, document, embedding)
}

// FindSimilar implements CandidateIndexer. The resume itself is excluded.
func (c *candidateIndexer) FindSimilar(ctx context.Context, resume *models.Resume, limit int) ([]models.SimilarCandidate, error) {
	document := c.promptBuilder.BuildCandidateDocument(resume, categoryNameOf(resume.Category))

	embedding, err := c.embedder.GenerateEmbedding(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("failed to embed candidate: %w", err)
	}

	return c.index.SearchSimilar(ctx, embedding, resume.ID.String(), limit)
}

func categoryNameOf(category *models.JobCategory) string {
	if category == nil {
		return ""
	}
	return category.Name
}
