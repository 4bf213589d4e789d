package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"alfredoptarigan/resume-screener/internal/models"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]models.JobCategory, error)
	SeedDefaults(ctx context.Context, categories []models.JobCategory) (int, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// FindAll reads the whole catalog; there is no pagination.
func (r *categoryRepository) FindAll(ctx context.Context) ([]models.JobCategory, error) {
	var categories []models.JobCategory
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to find job categories: %w", err)
	}
	return categories, nil
}

// SeedDefaults inserts categories only when the catalog is empty and returns
// the number of rows written.
func (r *categoryRepository) SeedDefaults(ctx context.Context, categories []models.JobCategory) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.JobCategory{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count job categories: %w", err)
	}

	if count > 0 || len(categories) == 0 {
		return 0, nil
	}

	if err := r.db.WithContext(ctx).Create(&categories).Error; err != nil {
		return 0, fmt.Errorf("failed to seed job categories: %w", err)
	}

	return len(categories), nil
}
