package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Routes struct {
	Process *ProcessHandler
	Upload  *UploadHandler
	Resume  *ResumeHandler
	Contact *ContactHandler
}

var endpoints = []string{
	"POST /functions/v1/process-resume",
	"POST /api/v1/process-resume",
	"POST /api/v1/upload",
	"GET /api/v1/resumes",
	"GET /api/v1/resumes/:id",
	"GET /api/v1/resumes/:id/similar",
	"GET /api/v1/categories",
	"POST /api/v1/contact",
}

// RegisterRoutes mounts the API. The process endpoint is also exposed under
// /functions/v1 for clients of the hosted function path.
func RegisterRoutes(app *fiber.App, r Routes) {
	app.Post("/functions/v1/process-resume", r.Process.HandleProcess)

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/process-resume", r.Process.HandleProcess)
	api.Post("/upload", r.Upload.HandleUpload)
	api.Get("/resumes", r.Resume.HandleList)
	api.Get("/resumes/:id", r.Resume.HandleGet)
	api.Get("/resumes/:id/similar", r.Resume.HandleSimilar)
	api.Get("/categories", r.Resume.HandleCategories)
	api.Post("/contact", r.Contact.HandleContact)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "Resume Screener API",
			"version":   "1.0.0",
			"endpoints": endpoints,
		})
	})
}
