package handlers

import (
	"net/url"

	"mistake-tracker/app"
	"mistake-tracker/models"
	"mistake-tracker/services"

	"github.com/gofiber/fiber/v2"
)

// GetSubjects lists all subjects sorted by name
func GetSubjects(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subjects, err := a.Subjects.List(c.UserContext())
		if err != nil {
			return serviceError(c, err, "Failed to fetch subjects")
		}
		return success(c, fiber.Map{"subjects": subjects})
	}
}

// CreateSubject adds a single subject
func CreateSubject(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateSubjectRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		subject, err := a.Subjects.Create(c.UserContext(), req.Name, req.Description)
		if err != nil {
			return serviceError(c, err, "Failed to create subject")
		}
		return created(c, fiber.Map{"subject": subject})
	}
}

// ImportSubjects adds the given names, or the whole course catalog, skipping
// subjects that already exist
func ImportSubjects(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ImportSubjectsRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if !req.Catalog && len(req.Names) == 0 {
			return badRequest(c, "names or catalog is required")
		}

		names := req.Names
		if req.Catalog {
			names = append(services.CatalogSubjects(), names...)
		}

		result, err := a.Imports.AddSubjectsIfAbsent(c.UserContext(), names)
		if err != nil {
			return serviceError(c, err, "Failed to import subjects")
		}
		return success(c, fiber.Map{
			"added_count":   result.AddedCount,
			"skipped_count": result.SkippedCount,
		})
	}
}

// DeleteSubject removes a subject with its categories and mistakes
func DeleteSubject(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return badRequest(c, "Invalid subject id")
		}

		if err := a.Subjects.Delete(c.UserContext(), id); err != nil {
			return serviceError(c, err, "Failed to delete subject")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetCategories lists the categories of the named subject
func GetCategories(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := url.PathUnescape(c.Params("name"))
		if err != nil {
			return badRequest(c, "Invalid subject name")
		}

		categories, err := a.Subjects.Categories(c.UserContext(), name)
		if err != nil {
			return serviceError(c, err, "Failed to fetch categories")
		}
		return success(c, fiber.Map{"categories": categories})
	}
}

// CreateCategory adds a category to an existing subject
func CreateCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return badRequest(c, "Invalid subject id")
		}

		var req models.CreateCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		category, err := a.Subjects.CreateCategory(c.UserContext(), id, req.Name)
		if err != nil {
			return serviceError(c, err, "Failed to create category")
		}
		return created(c, fiber.Map{"category": category})
	}
}

// GetCatalog returns the predefined course groups
func GetCatalog(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return success(c, fiber.Map{"groups": services.CourseCatalog()})
	}
}
