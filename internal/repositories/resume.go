package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/resume-screener/internal/models"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	Create(ctx context.Context, resume *models.Resume) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Resume, error)
	List(ctx context.Context, filter ResumeFilter) ([]models.Resume, int64, error)
}

// ExperienceLevel buckets mirror the dashboard filter.
type ExperienceLevel string

const (
	ExperienceJunior ExperienceLevel = "junior" // 0-2 years
	ExperienceMid    ExperienceLevel = "mid"    // 3-5 years
	ExperienceSenior ExperienceLevel = "senior" // more than 5 years
)

type ResumeFilter struct {
	Search     string
	CategoryID *uuid.UUID
	Experience ExperienceLevel
	Limit      int
	Offset     int
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Create(ctx context.Context, resume *models.Resume) error {
	if err := r.db.WithContext(ctx).Create(resume).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}
	return nil
}

func (r *resumeRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	if err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&resume).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, fmt.Errorf("failed to find resume: %w", err)
	}
	return &resume, nil
}

func (r *resumeRepository) List(ctx context.Context, filter ResumeFilter) ([]models.Resume, int64, error) {
	var total int64
	if err := applyResumeFilter(r.db.WithContext(ctx).Model(&models.Resume{}), filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count resumes: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var resumes []models.Resume
	err := applyResumeFilter(r.db.WithContext(ctx), filter).
		Preload("Category").
		Order("confidence_score DESC, created_at DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&resumes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list resumes: %w", err)
	}

	return resumes, total, nil
}

func applyResumeFilter(query *gorm.DB, filter ResumeFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + EscapeLikePattern(filter.Search) + "%"
		query = query.Where(
			"candidate_name ILIKE ? OR EXISTS (SELECT 1 FROM unnest(parsed_skills) AS skill WHERE skill ILIKE ?)",
			pattern, pattern,
		)
	}

	if filter.CategoryID != nil {
		query = query.Where("predicted_category = ?", *filter.CategoryID)
	}

	switch filter.Experience {
	case ExperienceJunior:
		query = query.Where("experience_years BETWEEN 0 AND 2")
	case ExperienceMid:
		query = query.Where("experience_years BETWEEN 3 AND 5")
	case ExperienceSenior:
		query = query.Where("experience_years > 5")
	}

	return query
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// EscapeLikePattern makes user text match literally inside an ILIKE pattern.
// Postgres uses backslash as the default LIKE escape character.
func EscapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

// ParseExperienceLevel accepts "", "all", "junior", "mid" or "senior".
func ParseExperienceLevel(value string) (ExperienceLevel, error) {
	switch ExperienceLevel(value) {
	case "", "all":
		return "", nil
	case ExperienceJunior, ExperienceMid, ExperienceSenior:
		return ExperienceLevel(value), nil
	default:
		return "", fmt.Errorf("unknown experience level: %q", value)
	}
}
