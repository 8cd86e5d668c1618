package setup

import (
	"mistake-tracker/app"
	"mistake-tracker/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/health", handlers.Health(application))

	api := fiberApp.Group("/api")

	api.Get("/stats", handlers.GetStats(application))
	api.Get("/catalog", handlers.GetCatalog(application))
	api.Get("/tags", handlers.GetTags(application))

	api.Get("/subjects", handlers.GetSubjects(application))
	api.Post("/subjects", handlers.CreateSubject(application))
	api.Post("/subjects/import", handlers.ImportSubjects(application))
	api.Delete("/subjects/:id", handlers.DeleteSubject(application))
	api.Get("/subjects/:name/categories", handlers.GetCategories(application))
	api.Post("/subjects/:id/categories", handlers.CreateCategory(application))

	api.Get("/mistakes", handlers.GetMistakes(application))
	api.Post("/mistakes", handlers.CreateMistake(application))
	api.Get("/mistakes/:id", handlers.GetMistake(application))
	api.Post("/mistakes/:id/review", handlers.ReviewMistake(application))
	api.Post("/mistakes/:id/tags", handlers.ApplyTags(application))
}
