package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"mistake-tracker/database"
	"mistake-tracker/models"
	"mistake-tracker/validator"
)

// ImportedDescription is stored on every subject added by a bulk import
const ImportedDescription = "Added from course selection"

// ImportService adds batches of subjects
type ImportService struct {
	repo      SubjectRepository
	validator *validator.Validator
	logger    *slog.Logger
}

// NewImportService creates a new import service
func NewImportService(repo SubjectRepository, v *validator.Validator, logger *slog.Logger) *ImportService {
	return &ImportService{
		repo:      repo,
		validator: v,
		logger:    logger,
	}
}

// AddSubjectsIfAbsent inserts, in order, every name not yet present. Names
// that already exist (including repeats within names) and names that would
// fail subject creation, blank ones included, are counted as skipped. Only a store failure stops the batch; the counts up to
// that point are returned with the error.
func (is *ImportService) AddSubjectsIfAbsent(ctx context.Context, names []string) (models.ImportResult, error) {
	var result models.ImportResult

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if err := is.validator.Validate(&models.CreateSubjectRequest{Name: name}); err != nil {
			is.logger.Warn("subject skipped", "name", name, "error", err)
			result.SkippedCount++
			continue
		}

		existing, err := is.repo.GetSubjectByName(ctx, name)
		if err != nil {
			return result, logStoreErr(is.logger, fmt.Sprintf("import subject %q", name), err)
		}
		if existing != nil {
			result.SkippedCount++
			continue
		}

		err = is.repo.CreateSubject(ctx, &models.Subject{Name: name, Description: ImportedDescription})
		if errors.Is(err, database.ErrUniqueViolation) {
			// Created by someone else since the lookup
			result.SkippedCount++
			continue
		}
		if err != nil {
			return result, logStoreErr(is.logger, fmt.Sprintf("import subject %q", name), err)
		}
		result.AddedCount++
	}

	is.logger.Info("subjects imported", "added", result.AddedCount, "skipped", result.SkippedCount)
	return result, nil
}

// ImportCatalog adds every subject of the built-in course catalog
func (is *ImportService) ImportCatalog(ctx context.Context) (models.ImportResult, error) {
	return is.AddSubjectsIfAbsent(ctx, CatalogSubjects())
}
