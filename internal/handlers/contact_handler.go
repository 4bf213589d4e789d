package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
)

type ContactHandler struct {
	contactRepo repositories.ContactRepository
}

func NewContactHandler(contactRepo repositories.ContactRepository) *ContactHandler {
	return &ContactHandler{
		contactRepo: contactRepo,
	}
}

// HandleContact handles POST /contact
func (h *ContactHandler) HandleContact(c *fiber.Ctx) error {
	var req models.ContactRequest

	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Company = strings.TrimSpace(req.Company)
	req.Message = strings.TrimSpace(req.Message)

	if err := validateStruct(req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
	}

	if err := h.contactRepo.Create(c.UserContext(), message); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Failed to send message")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Thank you for your message. We'll get back to you soon.",
	})
}
