package validator

import (
	"fmt"
	"reflect"
	"strings"

	"mistake-tracker/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
	Value   string `json:"value,omitempty"`
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

// Fields lists the offending field names in declaration order
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for _, err := range v {
		fields = append(fields, err.Field)
	}
	return fields
}

// Has reports whether field failed validation
func (v ValidationErrors) Has(field string) bool {
	for _, err := range v {
		if err.Field == field {
			return true
		}
	}
	return false
}

// New creates a new validator instance
func New() *Validator {
	v := validator.New()

	// Register custom tag name function to use JSON tags
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validators
	v.RegisterValidation("difficulty", validateDifficulty)

	return &Validator{validate: v}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Convert validation errors to our custom format
	var validationErrs ValidationErrors
	for _, err := range fieldErrs {
		validationErrs = append(validationErrs, ValidationError{
			Field:   err.Field(),
			Message: msgForTag(err),
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
		})
	}

	return validationErrs
}

// msgForTag returns a human-readable error message for a validation tag
func msgForTag(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "difficulty":
		return fmt.Sprintf("%s must be one of: %s, %s, %s", field,
			models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// Custom validators

// validateDifficulty validates the difficulty level
func validateDifficulty(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		return true
	}
	return false
}
