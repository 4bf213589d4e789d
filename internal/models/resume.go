package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ResumeStatus string

const (
	StatusProcessed ResumeStatus = "processed"
)

// Resume is the persisted outcome of one successful screening run. Rows are
// written once and never updated by the pipeline.
type Resume struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FileName          string         `gorm:"type:text;not null" json:"file_name"`
	FileURL           string         `gorm:"type:text;not null" json:"file_url"`
	UploadedBy        string         `gorm:"type:text" json:"uploaded_by"`
	RawText           string         `gorm:"type:text" json:"raw_text"`
	CandidateName     *string        `gorm:"type:text" json:"candidate_name"`
	CandidateEmail    *string        `gorm:"type:text" json:"candidate_email"`
	PhoneNumber       *string        `gorm:"type:text" json:"phone_number"`
	ParsedSkills      pq.StringArray `gorm:"type:text[]" json:"parsed_skills"`
	ExperienceYears   *int           `gorm:"type:integer" json:"experience_years"`
	EducationLevel    *string        `gorm:"type:text" json:"education_level"`
	Summary           *string        `gorm:"type:text" json:"summary"`
	PredictedCategory *uuid.UUID     `gorm:"type:uuid;index" json:"predicted_category"`
	ConfidenceScore   int            `gorm:"not null;default:0" json:"confidence_score"`
	Status            ResumeStatus   `gorm:"type:text;not null;default:'processed'" json:"status"`
	CreatedAt         time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Category *JobCategory `gorm:"foreignKey:PredictedCategory" json:"category,omitempty"`
}

func (Resume) TableName() string {
	return "resumes"
}
