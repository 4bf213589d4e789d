package services

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/tidwall/gjson"

	"alfredoptarigan/resume-screener/internal/models"
)

// StripCodeFence removes a Markdown code fence wrapping the reply, with or
// without a language tag. Text without a leading fence is only trimmed.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	// Language tag, e.g. ```json or ```JSON
	text = strings.TrimLeftFunc(text, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")

	return strings.TrimSpace(text)
}

// NormalizeProfile turns a model reply into an ExtractedProfile. When the
// reply is not a JSON object it returns FallbackProfile and true.
func NormalizeProfile(reply, fileName string) (*models.ExtractedProfile, bool) {
	cleaned := StripCodeFence(reply)
	if cleaned == "" || !gjson.Valid(cleaned) {
		return FallbackProfile(fileName), true
	}

	doc := gjson.Parse(cleaned)
	if !doc.IsObject() {
		return FallbackProfile(fileName), true
	}

	return &models.ExtractedProfile{
		CandidateName:   optionalString(doc.Get("candidate_name")),
		CandidateEmail:  optionalString(doc.Get("candidate_email")),
		PhoneNumber:     optionalString(doc.Get("phone_number")),
		ParsedSkills:    stringList(doc.Get("parsed_skills")),
		ExperienceYears: optionalInt(doc.Get("experience_years")),
		EducationLevel:  optionalString(doc.Get("education_level")),
		Summary:         optionalString(doc.Get("summary")),
	}, false
}

// FallbackProfile derives the candidate name from the filename and leaves
// everything else empty apart from a single placeholder skill.
func FallbackProfile(fileName string) *models.ExtractedProfile {
	return &models.ExtractedProfile{
		CandidateName: nameFromFileName(fileName),
		ParsedSkills:  []string{GeneralCategory},
	}
}

func nameFromFileName(fileName string) *string {
	base := filepath.Base(fileName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	name := strings.Join(strings.Fields(base), " ")
	if name == "" || name == "." {
		return nil
	}
	return &name
}

func optionalString(r gjson.Result) *string {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	s := r.String()
	return &s
}

func optionalInt(r gjson.Result) *int {
	if r.Type != gjson.Number {
		return nil
	}
	n := int(r.Int())
	return &n
}

// stringList keeps absent or null lists as nil; an array always yields a
// non-nil slice, even when none of its elements are strings.
func stringList(r gjson.Result) []string {
	if !r.IsArray() {
		return nil
	}
	list := []string{}
	for _, item := range r.Array() {
		if item.Type == gjson.String {
			list = append(list, item.Str)
		}
	}
	return list
}
