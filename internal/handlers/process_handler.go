package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/services"
)

type ProcessHandler struct {
	screening services.ScreeningService
}

func NewProcessHandler(screening services.ScreeningService) *ProcessHandler {
	return &ProcessHandler{
		screening: screening,
	}
}

// HandleProcess handles POST /process-resume. It blocks until the resume is
// processed and stored.
func (h *ProcessHandler) HandleProcess(c *fiber.Ctx) error {
	var req models.ProcessRequest

	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	req.FileURL = strings.TrimSpace(req.FileURL)
	req.FileName = strings.TrimSpace(req.FileName)
	req.UploadedBy = strings.TrimSpace(req.UploadedBy)

	if err := validateStruct(req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := h.screening.Process(c.UserContext(), req)
	if err != nil {
		log.Printf("❌ Error processing resume %s: %v\n", req.FileName, err)
		return errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(models.ProcessResponse{
		Success:  true,
		ResumeID: result.ResumeID.String(),
		Analysis: &models.AnalysisData{
			CandidateName:     result.Profile.CandidateName,
			PredictedCategory: result.Classification.PredictedCategoryName,
			ConfidenceScore:   result.Classification.ConfidenceScore,
			SkillsCount:       len(result.Profile.ParsedSkills),
		},
	})
}
