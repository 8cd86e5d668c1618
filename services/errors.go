package services

import (
	"errors"
	"fmt"
	"log/slog"

	"mistake-tracker/database"
	"mistake-tracker/validator"
)

// Error kinds surfaced by every service operation. Callers match them with
// errors.Is; the underlying cause stays wrapped for logging.
var (
	// A required field is missing or malformed
	ErrValidation = errors.New("validation failed")
	// Subject or category name collision
	ErrDuplicateName = errors.New("name already exists")
	// The target of the operation does not exist
	ErrNotFound = errors.New("not found")
	// The store could not be reached or a statement failed
	ErrStoreUnavailable = errors.New("store unavailable")
)

// storeErr maps a repository error onto one of the error kinds
func storeErr(op string, err error) error {
	switch {
	case errors.Is(err, database.ErrUniqueViolation):
		return fmt.Errorf("%s: %w", op, ErrDuplicateName)
	case errors.Is(err, database.ErrForeignKeyViolation):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	}
}

// logStoreErr is storeErr for callers holding a logger. Infrastructure
// failures are logged at Error; constraint outcomes are not.
func logStoreErr(logger *slog.Logger, op string, err error) error {
	kindErr := storeErr(op, err)
	if errors.Is(kindErr, ErrStoreUnavailable) {
		logger.Error("store failure", "op", op, "error", err)
	}
	return kindErr
}

// validationErr tags err as ErrValidation while keeping the per-field detail
// reachable through errors.As(err, *validator.ValidationErrors)
func validationErr(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// fieldErr builds a validation error for a single field
func fieldErr(field, message string) error {
	return validationErr(validator.ValidationErrors{
		{Field: field, Message: message, Tag: "required"},
	})
}
