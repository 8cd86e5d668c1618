package handlers

import (
	"errors"
	"log/slog"

	"mistake-tracker/services"
	"mistake-tracker/validator"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestID").(string); ok {
		return id
	}
	return ""
}

func serverErrorWithDetails(c *fiber.Ctx, status int, message string, err error) error {
	slog.Error("server error",
		"request_id", requestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError translates a service error kind into an HTTP response
func serviceError(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Validation failed",
				"fields": verrs,
			})
		}
		return badRequest(c, err.Error())
	case errors.Is(err, services.ErrDuplicateName):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrStoreUnavailable):
		return serverErrorWithDetails(c, fiber.StatusServiceUnavailable, message, err)
	default:
		return serverErrorWithDetails(c, fiber.StatusInternalServerError, message, err)
	}
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return int64(id), nil
}
