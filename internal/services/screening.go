package services

import (
	"context"
	"fmt"
	"log"

	"github.com/lib/pq"

	"alfredoptarigan/resume-screener/internal/intake"
	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
)

type ScreeningService interface {
	Process(ctx context.Context, req models.ProcessRequest) (*models.ProcessResult, error)
}

type screeningService struct {
	fetcher      FileFetcher
	extractor    ProfileExtractor
	classifier   CategoryClassifier
	resumeRepo   repositories.ResumeRepository
	categoryRepo repositories.CategoryRepository
	indexer      CandidateIndexer
}

// NewScreeningService wires one sequential screening chain. indexer may be nil,
// in which case processed candidates are not indexed for similarity search.
func NewScreeningService(
	fetcher FileFetcher,
	extractor ProfileExtractor,
	classifier CategoryClassifier,
	resumeRepo repositories.ResumeRepository,
	categoryRepo repositories.CategoryRepository,
	indexer CandidateIndexer,
) ScreeningService {
	return &screeningService{
		fetcher:      fetcher,
		extractor:    extractor,
		classifier:   classifier,
		resumeRepo:   resumeRepo,
		categoryRepo: categoryRepo,
		indexer:      indexer,
	}
}

// Process runs download, extraction, classification, scoring and the single
// insert. Nothing is written unless every earlier step succeeded.
func (s *screeningService) Process(ctx context.Context, req models.ProcessRequest) (*models.ProcessResult, error) {
	log.Printf("🔄 Processing resume: %s\n", req.FileName)

	content, err := s.fetcher.Fetch(ctx, req.FileURL)
	if err != nil {
		return nil, err
	}
	log.Printf("📥 Downloaded %s (%d bytes)\n", req.FileName, len(content))

	profile, usedFallback, err := s.extractor.Extract(ctx, content, req.FileName)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load job categories: %w", err)
	}

	predicted, err := s.classifier.Classify(ctx, profile.ParsedSkills, categories)
	if err != nil {
		return nil, err
	}

	classification := NewClassificationResult(predicted, categories, profile.ParsedSkills)
	log.Printf("🏷️  Classified %s as %q (confidence %d)\n", req.FileName, predicted, classification.ConfidenceScore)

	resume := newResumeRecord(req, content, profile, classification)
	if err := s.resumeRepo.Create(ctx, resume); err != nil {
		return nil, fmt.Errorf("failed to save resume: %w", err)
	}

	log.Printf("✅ Resume saved: %s\n", resume.ID)

	if s.indexer != nil {
		if err := s.indexer.Index(ctx, resume, classification.MatchedCategory); err != nil {
			log.Printf("⚠️  Failed to index candidate %s: %v\n", resume.ID, err)
		}
	}

	return &models.ProcessResult{
		ResumeID:       resume.ID,
		Profile:        profile,
		Classification: classification,
		UsedFallback:   usedFallback,
	}, nil
}

func newResumeRecord(req models.ProcessRequest, content []byte, profile *models.ExtractedProfile, classification models.ClassificationResult) *models.Resume {
	resume := &models.Resume{
		FileName:        req.FileName,
		FileURL:         req.FileURL,
		UploadedBy:      req.UploadedBy,
		RawText:         RawTextMarker(req.FileName, len(content)),
		CandidateName:   profile.CandidateName,
		CandidateEmail:  profile.CandidateEmail,
		PhoneNumber:     profile.PhoneNumber,
		ParsedSkills:    persistedSkills(profile.ParsedSkills),
		ExperienceYears: profile.ExperienceYears,
		EducationLevel:  profile.EducationLevel,
		Summary:         profile.Summary,
		ConfidenceScore: classification.ConfidenceScore,
		Status:          models.StatusProcessed,
	}

	if classification.MatchedCategory != nil {
		id := classification.MatchedCategory.ID
		resume.PredictedCategory = &id
	}

	return resume
}

// persistedSkills stores a missing skill list as an empty array, never NULL.
func persistedSkills(skills []string) pq.StringArray {
	if skills == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(skills)
}

// RawTextMarker records how much content was handed off; the text itself is
// never stored.
func RawTextMarker(fileName string, size int) string {
	return fmt.Sprintf("Processed %s file - %d bytes", intake.Extension(fileName), size)
}
