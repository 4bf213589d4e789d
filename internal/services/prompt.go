package services

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"alfredoptarigan/resume-screener/internal/intake"
	"alfredoptarigan/resume-screener/internal/models"
)

// maxPayloadChars caps the file content placed into the extraction prompt.
const maxPayloadChars = 50000

const (
	extractionMaxTokens       = 1000
	extractionTemperature     = 0.3
	classificationMaxTokens   = 50
	classificationTemperature = 0.1
)

// GeneralCategory is what the classifier is told to answer when nothing fits.
// It doubles as the placeholder skill of the fallback profile.
const GeneralCategory = "General"

type PayloadEncoding string

const (
	EncodingText     PayloadEncoding = "text"
	EncodingBase64   PayloadEncoding = "base64"
	EncodingFilename PayloadEncoding = "filename"
)

// FilePayload is the best-effort handoff of a resume file to the model. No
// document parsing happens here: plain text is passed through, everything else
// is base64 encoded.
type FilePayload struct {
	Extension string
	Encoding  PayloadEncoding
	Body      string
}

func BuildFilePayload(content []byte, fileName string) FilePayload {
	ext := intake.Extension(fileName)

	switch {
	case len(content) == 0:
		return FilePayload{Extension: ext, Encoding: EncodingFilename, Body: fileName}
	case ext == "txt":
		text := strings.ToValidUTF8(string(content), "�")
		return FilePayload{Extension: ext, Encoding: EncodingText, Body: truncateRunes(text, maxPayloadChars)}
	default:
		encoded := base64.StdEncoding.EncodeToString(content)
		if len(encoded) > maxPayloadChars {
			encoded = encoded[:maxPayloadChars]
		}
		return FilePayload{Extension: ext, Encoding: EncodingBase64, Body: encoded}
	}
}

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildExtractionSystemPrompt returns the fixed resume parser instruction.
func (pb *PromptBuilder) BuildExtractionSystemPrompt() string {
	return `You are an expert resume parser. I will provide you with a resume file (it may be PDF, DOCX, or TXT format). 
            Your task is to extract key information and return it as valid JSON:
            {
              "candidate_name": "Full name of candidate",
              "candidate_email": "email@example.com",
              "phone_number": "+1234567890",
              "parsed_skills": ["skill1", "skill2", "skill3"],
              "experience_years": 5,
              "education_level": "Bachelor's/Master's/PhD/High School",
              "summary": "Brief professional summary"
            }
            
            Rules:
            - Extract skills as an array of strings (technologies, tools, programming languages, frameworks, etc.)
            - Calculate experience_years as total years of professional experience
            - Use null for missing information
            - Be precise and extract only what's clearly stated
            - If the file content is not readable or corrupted, return null values`
}

// BuildExtractionUserPrompt hands the payload to the model.
func (pb *PromptBuilder) BuildExtractionUserPrompt(payload FilePayload) string {
	var content string
	switch payload.Encoding {
	case EncodingText:
		content = fmt.Sprintf("The file content is plain text: %s", payload.Body)
	case EncodingBase64:
		content = fmt.Sprintf("The file content is base64 encoded: %s", payload.Body)
	default:
		content = fmt.Sprintf("The file content could not be read. The file is named: %s", payload.Body)
	}

	return fmt.Sprintf(`Please parse this resume file. File extension: %s. 
            
            %s`, payload.Extension, content)
}

// BuildClassificationSystemPrompt lists the entire catalog in one instruction.
func (pb *PromptBuilder) BuildClassificationSystemPrompt(categories []models.JobCategory) string {
	return fmt.Sprintf(`You are an expert job classifier. Based on the candidate's skills, classify them into the most appropriate job category.
            
            Available categories: %s
            
            Return only the category name that best matches the candidate's skills. If no good match, return "%s".`,
		FormatCategoryCatalog(categories), GeneralCategory)
}

func (pb *PromptBuilder) BuildClassificationUserPrompt(skills []string) string {
	skillList := "No skills listed"
	if len(skills) > 0 {
		skillList = strings.Join(skills, ", ")
	}
	return fmt.Sprintf("Classify this candidate based on their skills: %s", skillList)
}

// BuildCandidateDocument renders a processed resume as the text that gets
// embedded for similarity search.
func (pb *PromptBuilder) BuildCandidateDocument(resume *models.Resume, categoryName string) string {
	var b strings.Builder
	if resume.CandidateName != nil {
		fmt.Fprintf(&b, "Candidate: %s\n", *resume.CandidateName)
	}
	if categoryName != "" {
		fmt.Fprintf(&b, "Category: %s\n", categoryName)
	}
	if len(resume.ParsedSkills) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(resume.ParsedSkills, ", "))
	}
	if resume.ExperienceYears != nil {
		fmt.Fprintf(&b, "Experience: %d years\n", *resume.ExperienceYears)
	}
	if resume.EducationLevel != nil {
		fmt.Fprintf(&b, "Education: %s\n", *resume.EducationLevel)
	}
	if resume.Summary != nil {
		fmt.Fprintf(&b, "Summary: %s\n", *resume.Summary)
	}
	return strings.TrimSpace(b.String())
}

// FormatCategoryCatalog renders "name: kw1, kw2; name2: General".
func FormatCategoryCatalog(categories []models.JobCategory) string {
	parts := make([]string, 0, len(categories))
	for _, category := range categories {
		keywords := GeneralCategory
		if len(category.SkillsKeywords) > 0 {
			keywords = strings.Join(category.SkillsKeywords, ", ")
		}
		parts = append(parts, fmt.Sprintf("%s: %s", category.Name, keywords))
	}
	return strings.Join(parts, "; ")
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
