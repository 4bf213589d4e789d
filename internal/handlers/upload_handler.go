package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-screener/internal/intake"
	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/services"
)

const uploadField = "files"

type UploadHandler struct {
	storageService services.StorageService
}

func NewUploadHandler(storageService services.StorageService) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
	}
}

// HandleUpload stores every acceptable file of the "files" field. Rejected
// files are reported next to the stored ones.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "failed to parse multipart form")
	}

	files := form.File[uploadField]
	if len(files) == 0 {
		return errorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("No files uploaded. Please upload one or more resumes as '%s'.", uploadField))
	}

	result := models.UploadResult{
		Documents: []models.UploadResponse{},
	}

	for _, file := range files {
		doc, err := h.storageService.SaveFile(file)
		if err != nil {
			if errors.Is(err, intake.ErrUnsupportedType) || errors.Is(err, intake.ErrFileTooLarge) {
				result.Rejected = append(result.Rejected, models.RejectedFile{
					FileName: file.Filename,
					Error:    err.Error(),
				})
				continue
			}
			return errorResponse(c, fiber.StatusInternalServerError, fmt.Sprintf("failed to save %s: %v", file.Filename, err))
		}

		result.Documents = append(result.Documents, *doc)
	}

	if len(result.Documents) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}

	result.Success = true
	return c.Status(fiber.StatusCreated).JSON(result)
}
