package services

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-screener/internal/models"
)

func TestBuildFilePayload_Text(t *testing.T) {
	payload := BuildFilePayload([]byte("Jane Doe\nGo, SQL"), "jane.TXT")

	assert.Equal(t, "txt", payload.Extension)
	assert.Equal(t, EncodingText, payload.Encoding)
	assert.Equal(t, "Jane Doe\nGo, SQL", payload.Body)
}

func TestBuildFilePayload_TextReplacesInvalidUTF8(t *testing.T) {
	payload := BuildFilePayload([]byte{'o', 'k', 0xff, '!'}, "notes.txt")

	assert.Equal(t, "ok�!", payload.Body)
}

func TestBuildFilePayload_BinaryIsBase64(t *testing.T) {
	content := []byte("%PDF-1.7 fake")
	payload := BuildFilePayload(content, "jane.pdf")

	assert.Equal(t, "pdf", payload.Extension)
	assert.Equal(t, EncodingBase64, payload.Encoding)
	assert.Equal(t, base64.StdEncoding.EncodeToString(content), payload.Body)
}

func TestBuildFilePayload_TruncatesLargeContent(t *testing.T) {
	content := make([]byte, 60000)

	binary := BuildFilePayload(content, "big.docx")
	assert.Len(t, binary.Body, maxPayloadChars)

	text := BuildFilePayload([]byte(strings.Repeat("é", 60000)), "big.txt")
	assert.Equal(t, maxPayloadChars, len([]rune(text.Body)))
}

func TestBuildFilePayload_EmptyContentUsesFilename(t *testing.T) {
	payload := BuildFilePayload(nil, "jane.pdf")

	assert.Equal(t, EncodingFilename, payload.Encoding)
	assert.Equal(t, "jane.pdf", payload.Body)

	prompt := NewPromptBuilder().BuildExtractionUserPrompt(payload)
	assert.Contains(t, prompt, "File extension: pdf")
	assert.Contains(t, prompt, "jane.pdf")
}

func TestBuildExtractionUserPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	text := pb.BuildExtractionUserPrompt(FilePayload{Extension: "txt", Encoding: EncodingText, Body: "hello"})
	assert.Contains(t, text, "plain text: hello")

	encoded := pb.BuildExtractionUserPrompt(FilePayload{Extension: "pdf", Encoding: EncodingBase64, Body: "aGVsbG8="})
	assert.Contains(t, encoded, "base64 encoded: aGVsbG8=")
}

func TestBuildExtractionSystemPrompt_ListsFields(t *testing.T) {
	prompt := NewPromptBuilder().BuildExtractionSystemPrompt()

	for _, field := range []string{"candidate_name", "candidate_email", "phone_number", "parsed_skills", "experience_years", "education_level", "summary"} {
		assert.Contains(t, prompt, field)
	}
}

func TestFormatCategoryCatalog(t *testing.T) {
	categories := []models.JobCategory{
		{Name: "Software Engineer", SkillsKeywords: pq.StringArray{"Go", "SQL"}},
		{Name: "Misc"},
	}

	assert.Equal(t, "Software Engineer: Go, SQL; Misc: General", FormatCategoryCatalog(categories))
	assert.Equal(t, "", FormatCategoryCatalog(nil))
}

func TestBuildClassificationPrompts(t *testing.T) {
	pb := NewPromptBuilder()

	system := pb.BuildClassificationSystemPrompt([]models.JobCategory{
		{Name: "DevOps Engineer", SkillsKeywords: pq.StringArray{"AWS"}},
	})
	assert.Contains(t, system, "Available categories: DevOps Engineer: AWS")
	assert.Contains(t, system, `return "General"`)

	assert.Equal(t, "Classify this candidate based on their skills: React, AWS", pb.BuildClassificationUserPrompt([]string{"React", "AWS"}))
	assert.Equal(t, "Classify this candidate based on their skills: No skills listed", pb.BuildClassificationUserPrompt(nil))
}

func TestBuildCandidateDocument(t *testing.T) {
	name := "Jane Doe"
	years := 5
	resume := &models.Resume{
		CandidateName:   &name,
		ParsedSkills:    pq.StringArray{"AWS", "Docker"},
		ExperienceYears: &years,
	}

	doc := NewPromptBuilder().BuildCandidateDocument(resume, "DevOps Engineer")

	require.NotEmpty(t, doc)
	assert.Equal(t, "Candidate: Jane Doe\nCategory: DevOps Engineer\nSkills: AWS, Docker\nExperience: 5 years", doc)
}
