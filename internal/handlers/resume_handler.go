package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
	"alfredoptarigan/resume-screener/internal/services"
)

const defaultSimilarLimit = 5

type ResumeHandler struct {
	resumeRepo   repositories.ResumeRepository
	categoryRepo repositories.CategoryRepository
	indexer      services.CandidateIndexer
}

// NewResumeHandler serves the dashboard reads. indexer may be nil when no
// vector index is configured.
func NewResumeHandler(
	resumeRepo repositories.ResumeRepository,
	categoryRepo repositories.CategoryRepository,
	indexer services.CandidateIndexer,
) *ResumeHandler {
	return &ResumeHandler{
		resumeRepo:   resumeRepo,
		categoryRepo: categoryRepo,
		indexer:      indexer,
	}
}

// HandleList handles GET /resumes?search=&category=&experience=&limit=&offset=
func (h *ResumeHandler) HandleList(c *fiber.Ctx) error {
	experience, err := repositories.ParseExperienceLevel(c.Query("experience"))
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	filter := repositories.ResumeFilter{
		Search:     c.Query("search"),
		Experience: experience,
		Limit:      c.QueryInt("limit", 20),
		Offset:     c.QueryInt("offset", 0),
	}

	if category := c.Query("category"); category != "" && category != "all" {
		categoryID, err := uuid.Parse(category)
		if err != nil {
			return errorResponse(c, fiber.StatusBadRequest, "Invalid category ID format")
		}
		filter.CategoryID = &categoryID
	}

	if filter.Offset < 0 {
		filter.Offset = 0
	}

	resumes, total, err := h.resumeRepo.List(c.UserContext(), filter)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(models.ResumeListResponse{
		Success: true,
		Total:   total,
		Data:    resumes,
	})
}

func (h *ResumeHandler) HandleGet(c *fiber.Ctx) error {
	resume, err := h.findResume(c)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    resume,
	})
}

// HandleSimilar handles GET /resumes/:id/similar?limit=
func (h *ResumeHandler) HandleSimilar(c *fiber.Ctx) error {
	if h.indexer == nil {
		return errorResponse(c, fiber.StatusServiceUnavailable, services.ErrIndexingDisabled.Error())
	}

	resume, err := h.findResume(c)
	if err != nil {
		return err
	}

	limit := c.QueryInt("limit", defaultSimilarLimit)
	if limit <= 0 || limit > 50 {
		limit = defaultSimilarLimit
	}

	candidates, err := h.indexer.FindSimilar(c.UserContext(), resume, limit)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    candidates,
	})
}

func (h *ResumeHandler) HandleCategories(c *fiber.Ctx) error {
	categories, err := h.categoryRepo.FindAll(c.UserContext())
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    categories,
	})
}

// findResume returns *fiber.Error values, rendered by ErrorHandler.
func (h *ResumeHandler) findResume(c *fiber.Ctx) (*models.Resume, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid resume ID format")
	}

	resume, err := h.resumeRepo.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrResumeNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Resume not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return resume, nil
}
