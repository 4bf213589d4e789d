package services

import (
	"math"
	"strings"

	"alfredoptarigan/resume-screener/internal/models"
)

const (
	baseConfidence       = 0.7
	skillMatchConfidence = 0.9
	noOverlapConfidence  = 0.6
)

// MatchCategory resolves a classifier answer by case-insensitive exact name
// equality. It returns nil when nothing matches.
func MatchCategory(name string, categories []models.JobCategory) *models.JobCategory {
	for i := range categories {
		if strings.EqualFold(categories[i].Name, name) {
			return &categories[i]
		}
	}
	return nil
}

// ConfidenceScore is a coarse two-tier heuristic: 70 when unmatched or when
// no skill list was extracted at all (nil), 90 when any skill and keyword
// contain one another (case-insensitive), 60 otherwise. An empty but present
// skill list scores 60.
func ConfidenceScore(matched *models.JobCategory, skills []string) int {
	confidence := baseConfidence
	if matched != nil && skills != nil {
		confidence = noOverlapConfidence
		if hasSkillOverlap(skills, matched.SkillsKeywords) {
			confidence = skillMatchConfidence
		}
	}
	return int(math.Round(confidence * 100))
}

func hasSkillOverlap(skills, keywords []string) bool {
	for _, skill := range skills {
		s := strings.ToLower(skill)
		for _, keyword := range keywords {
			k := strings.ToLower(keyword)
			if strings.Contains(s, k) || strings.Contains(k, s) {
				return true
			}
		}
	}
	return false
}

func NewClassificationResult(predicted string, categories []models.JobCategory, skills []string) models.ClassificationResult {
	matched := MatchCategory(predicted, categories)
	return models.ClassificationResult{
		PredictedCategoryName: predicted,
		MatchedCategory:       matched,
		ConfidenceScore:       ConfidenceScore(matched, skills),
	}
}
