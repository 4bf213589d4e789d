package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type JobCategory struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string         `gorm:"type:text;not null;uniqueIndex" json:"name"`
	SkillsKeywords pq.StringArray `gorm:"type:text[]" json:"skills_keywords"`
	CreatedAt      time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (JobCategory) TableName() string {
	return "job_categories"
}

// DefaultJobCategories seeds an empty catalog.
func DefaultJobCategories() []JobCategory {
	return []JobCategory{
		{Name: "Software Engineer", SkillsKeywords: pq.StringArray{"JavaScript", "TypeScript", "React", "Python", "Java", "Go", "Node.js", "SQL"}},
		{Name: "DevOps Engineer", SkillsKeywords: pq.StringArray{"AWS", "Docker", "Kubernetes", "Terraform", "CI/CD", "Linux"}},
		{Name: "UI/UX Designer", SkillsKeywords: pq.StringArray{"Figma", "UI", "UX", "User Research", "Prototyping", "Adobe Creative Suite"}},
		{Name: "Data Scientist", SkillsKeywords: pq.StringArray{"Machine Learning", "TensorFlow", "Statistics", "Data Science", "Pandas", "SQL"}},
		{Name: "Product Manager", SkillsKeywords: pq.StringArray{"Product Management", "Agile", "Roadmap", "Analytics", "Strategy"}},
	}
}
