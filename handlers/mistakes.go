package handlers

import (
	"mistake-tracker/app"
	"mistake-tracker/filter"
	"mistake-tracker/models"

	"github.com/gofiber/fiber/v2"
)

// GetMistakes lists mistakes newest first, optionally narrowed by the
// subject and q query parameters
func GetMistakes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := filter.Query{
			Subject: c.Query("subject"),
			Search:  c.Query("q"),
		}

		mistakes, err := a.Mistakes.Search(c.UserContext(), q)
		if err != nil {
			return serviceError(c, err, "Failed to fetch mistakes")
		}
		return success(c, fiber.Map{"mistakes": mistakes, "count": len(mistakes)})
	}
}

// GetMistake retrieves a single mistake
func GetMistake(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return badRequest(c, "Invalid mistake id")
		}

		mistake, err := a.Mistakes.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err, "Failed to fetch mistake")
		}
		return success(c, fiber.Map{"mistake": mistake})
	}
}

// CreateMistake records a new mistake
func CreateMistake(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateMistakeRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		id, err := a.Mistakes.Create(c.UserContext(), req)
		if err != nil {
			return serviceError(c, err, "Failed to save mistake")
		}
		return created(c, fiber.Map{"id": id})
	}
}

// ReviewMistake marks a mistake as reviewed once more
func ReviewMistake(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return badRequest(c, "Invalid mistake id")
		}

		if err := a.Mistakes.MarkReviewed(c.UserContext(), id); err != nil {
			return serviceError(c, err, "Failed to mark mistake reviewed")
		}

		mistake, err := a.Mistakes.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err, "Failed to fetch mistake")
		}
		return success(c, fiber.Map{"mistake": mistake})
	}
}
