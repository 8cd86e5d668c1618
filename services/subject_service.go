package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"mistake-tracker/models"
	"mistake-tracker/validator"
)

// SubjectService handles business logic for subjects and their categories
type SubjectService struct {
	repo      SubjectRepository
	validator *validator.Validator
	logger    *slog.Logger
}

// NewSubjectService creates a new subject service
func NewSubjectService(repo SubjectRepository, v *validator.Validator, logger *slog.Logger) *SubjectService {
	return &SubjectService{
		repo:      repo,
		validator: v,
		logger:    logger,
	}
}

// List retrieves all subjects sorted by name
func (ss *SubjectService) List(ctx context.Context) ([]models.Subject, error) {
	subjects, err := ss.repo.GetSubjects(ctx)
	if err != nil {
		return nil, logStoreErr(ss.logger, "list subjects", err)
	}
	return subjects, nil
}

// Categories retrieves the categories of the named subject sorted by name.
// An unknown subject has no categories.
func (ss *SubjectService) Categories(ctx context.Context, subjectName string) ([]models.Category, error) {
	categories, err := ss.repo.GetCategoriesBySubjectName(ctx, subjectName)
	if err != nil {
		return nil, logStoreErr(ss.logger, "list categories", err)
	}
	return categories, nil
}

// Create creates a new subject
func (ss *SubjectService) Create(ctx context.Context, name, description string) (*models.Subject, error) {
	req := models.CreateSubjectRequest{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
	if err := ss.validator.Validate(&req); err != nil {
		return nil, validationErr(err)
	}

	// UNIQUE(name) decides duplicates, so there is no check-then-insert window
	subject := &models.Subject{Name: req.Name, Description: req.Description}
	if err := ss.repo.CreateSubject(ctx, subject); err != nil {
		return nil, logStoreErr(ss.logger, fmt.Sprintf("create subject %q", req.Name), err)
	}

	ss.logger.Info("subject created", "subject_id", subject.ID, "name", subject.Name)
	return subject, nil
}

// Delete deletes a subject together with its categories and mistakes
func (ss *SubjectService) Delete(ctx context.Context, id int64) error {
	deleted, err := ss.repo.DeleteSubject(ctx, id)
	if err != nil {
		return logStoreErr(ss.logger, "delete subject", err)
	}
	if !deleted {
		return fmt.Errorf("subject %d: %w", id, ErrNotFound)
	}

	ss.logger.Info("subject deleted", "subject_id", id)
	return nil
}

// ResolveSubjectID returns the ID of the named subject
func (ss *SubjectService) ResolveSubjectID(ctx context.Context, name string) (int64, error) {
	return resolveSubjectID(ctx, ss.repo, ss.logger, name)
}

// ResolveCategoryID returns the ID of the named category within a subject,
// or nil when there is no such category
func (ss *SubjectService) ResolveCategoryID(ctx context.Context, name string, subjectID int64) (*int64, error) {
	return resolveCategoryID(ctx, ss.repo, ss.logger, name, subjectID)
}

// CreateCategory creates a category under an existing subject
func (ss *SubjectService) CreateCategory(ctx context.Context, subjectID int64, name string) (*models.Category, error) {
	req := models.CreateCategoryRequest{Name: strings.TrimSpace(name)}
	if err := ss.validator.Validate(&req); err != nil {
		return nil, validationErr(err)
	}

	subject, err := ss.repo.GetSubjectByID(ctx, subjectID)
	if err != nil {
		return nil, logStoreErr(ss.logger, "create category", err)
	}
	if subject == nil {
		return nil, fmt.Errorf("subject %d: %w", subjectID, ErrNotFound)
	}

	category := &models.Category{Name: req.Name, SubjectID: subjectID}
	if err := ss.repo.CreateCategory(ctx, category); err != nil {
		return nil, logStoreErr(ss.logger, fmt.Sprintf("create category %q", req.Name), err)
	}

	ss.logger.Info("category created", "category_id", category.ID, "subject_id", subjectID, "name", category.Name)
	return category, nil
}

func resolveSubjectID(ctx context.Context, repo subjectFinder, logger *slog.Logger, name string) (int64, error) {
	subject, err := repo.GetSubjectByName(ctx, name)
	if err != nil {
		return 0, logStoreErr(logger, "resolve subject", err)
	}
	if subject == nil {
		return 0, fmt.Errorf("subject %q: %w", name, ErrNotFound)
	}
	return subject.ID, nil
}

func resolveCategoryID(ctx context.Context, repo subjectFinder, logger *slog.Logger, name string, subjectID int64) (*int64, error) {
	if name == "" {
		return nil, nil
	}
	category, err := repo.GetCategoryByName(ctx, name, subjectID)
	if err != nil {
		return nil, logStoreErr(logger, "resolve category", err)
	}
	if category == nil {
		return nil, nil
	}
	return &category.ID, nil
}
