package handlers

import (
	"mistake-tracker/app"
	"mistake-tracker/models"

	"github.com/gofiber/fiber/v2"
)

// GetTags lists every tag in use
func GetTags(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tags, err := a.Tags.List(c.UserContext())
		if err != nil {
			return serviceError(c, err, "Failed to fetch tags")
		}
		return success(c, fiber.Map{"tags": tags})
	}
}

// ApplyTags attaches a comma separated tag list to an existing mistake
func ApplyTags(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return badRequest(c, "Invalid mistake id")
		}

		var req models.ApplyTagsRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Validation failed",
				"fields": err,
			})
		}

		// Tags must not be created for a mistake that is not there
		if _, err := a.Mistakes.Get(c.UserContext(), id); err != nil {
			return serviceError(c, err, "Failed to fetch mistake")
		}

		if err := a.Tags.Apply(c.UserContext(), id, req.Tags); err != nil {
			return serviceError(c, err, "Failed to apply tags")
		}

		mistake, err := a.Mistakes.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, err, "Failed to fetch mistake")
		}
		return success(c, fiber.Map{"mistake": mistake})
	}
}
