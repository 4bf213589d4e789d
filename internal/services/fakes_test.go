package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
)

type fakeFetcher struct {
	content []byte
	err     error
	calls   int
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string) ([]byte, error) {
	f.calls++
	return f.content, f.err
}

// fakeGenerator answers calls in order from replies. errs[i], when set,
// fails call i instead.
type fakeGenerator struct {
	replies  []string
	errs     []error
	requests []GenerationRequest
}

func (f *fakeGenerator) GenerateText(_ context.Context, req GenerationRequest) (string, error) {
	i := len(f.requests)
	f.requests = append(f.requests, req)
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i >= len(f.replies) {
		return "", errors.New("unexpected call")
	}
	return f.replies[i], nil
}

type fakeResumeRepo struct {
	created []*models.Resume
	err     error
}

func (f *fakeResumeRepo) Create(_ context.Context, resume *models.Resume) error {
	if f.err != nil {
		return f.err
	}
	resume.ID = uuid.New()
	f.created = append(f.created, resume)
	return nil
}

func (f *fakeResumeRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Resume, error) {
	for _, resume := range f.created {
		if resume.ID == id {
			return resume, nil
		}
	}
	return nil, repositories.ErrResumeNotFound
}

func (f *fakeResumeRepo) List(_ context.Context, _ repositories.ResumeFilter) ([]models.Resume, int64, error) {
	list := make([]models.Resume, 0, len(f.created))
	for _, resume := range f.created {
		list = append(list, *resume)
	}
	return list, int64(len(list)), nil
}

type fakeCategoryRepo struct {
	categories []models.JobCategory
	err        error
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]models.JobCategory, error) {
	return f.categories, f.err
}

func (f *fakeCategoryRepo) SeedDefaults(_ context.Context, categories []models.JobCategory) (int, error) {
	if len(f.categories) > 0 {
		return 0, nil
	}
	f.categories = categories
	return len(categories), nil
}

type fakeIndexer struct {
	indexed []*models.Resume
	err     error
}

func (f *fakeIndexer) Index(_ context.Context, resume *models.Resume, _ *models.JobCategory) error {
	f.indexed = append(f.indexed, resume)
	return f.err
}

func (f *fakeIndexer) FindSimilar(_ context.Context, _ *models.Resume, _ int) ([]models.SimilarCandidate, error) {
	return nil, f.err
}

type fakeEmbedder struct {
	texts []string
	err   error
}

func (f *fakeEmbedder) GenerateEmbedding(_ context.Context, text string) ([]float32, error) {
	f.texts = append(f.texts, text)
	if f.err != nil {
		return nil, f.err
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

type fakeIndex struct {
	upserts  []string
	excluded string
	results  []models.SimilarCandidate
}

func (f *fakeIndex) InitCollection(_ context.Context) error {
	return nil
}

func (f *fakeIndex) Upsert(_ context.Context, resumeID, category, _ string, _ []float32) error {
	f.upserts = append(f.upserts, resumeID+"|"+category)
	return nil
}

func (f *fakeIndex) SearchSimilar(_ context.Context, _ []float32, excludeResumeID string, _ int) ([]models.SimilarCandidate, error) {
	f.excluded = excludeResumeID
	return f.results, nil
}
