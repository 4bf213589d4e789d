package models

type ProcessRequest struct {
	FileURL    string `json:"fileUrl" validate:"required,url"`
	FileName   string `json:"fileName" validate:"required"`
	UploadedBy string `json:"uploadedBy"`
}

type ProcessResponse struct {
	Success  bool          `json:"success"`
	ResumeID string        `json:"resume_id"`
	Analysis *AnalysisData `json:"analysis"`
}

type AnalysisData struct {
	CandidateName     *string `json:"candidate_name"`
	PredictedCategory string  `json:"predicted_category"`
	ConfidenceScore   int     `json:"confidence_score"`
	SkillsCount       int     `json:"skills_count"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type UploadResponse struct {
	FileName   string `json:"file_name"`
	StoredName string `json:"stored_name"`
	FileURL    string `json:"file_url"`
	Size       int64  `json:"size"`
}

type RejectedFile struct {
	FileName string `json:"file_name"`
	Error    string `json:"error"`
}

type UploadResult struct {
	Success   bool             `json:"success"`
	Documents []UploadResponse `json:"documents"`
	Rejected  []RejectedFile   `json:"rejected,omitempty"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company"`
	Message string `json:"message" validate:"required"`
}

type ResumeListResponse struct {
	Success bool     `json:"success"`
	Total   int64    `json:"total"`
	Data    []Resume `json:"data"`
}

type SimilarCandidate struct {
	ResumeID string  `json:"resume_id"`
	Score    float32 `json:"score"`
	Category string  `json:"category,omitempty"`
}
