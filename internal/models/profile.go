package models

import "github.com/google/uuid"

// ExtractedProfile is what the model could read out of a resume. Any field may
// be nil; nothing here is validated.
type ExtractedProfile struct {
	CandidateName   *string  `json:"candidate_name"`
	CandidateEmail  *string  `json:"candidate_email"`
	PhoneNumber     *string  `json:"phone_number"`
	ParsedSkills    []string `json:"parsed_skills"`
	ExperienceYears *int     `json:"experience_years"`
	EducationLevel  *string  `json:"education_level"`
	Summary         *string  `json:"summary"`
}

type ClassificationResult struct {
	PredictedCategoryName string
	MatchedCategory       *JobCategory
	ConfidenceScore       int
}

type ProcessResult struct {
	ResumeID       uuid.UUID
	Profile        *ExtractedProfile
	Classification ClassificationResult
	UsedFallback   bool
}
