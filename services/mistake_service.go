package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"mistake-tracker/filter"
	"mistake-tracker/models"
	"mistake-tracker/validator"
)

// MistakeService handles business logic for mistakes
type MistakeService struct {
	repo      MistakeRepository
	validator *validator.Validator
	logger    *slog.Logger
}

// NewMistakeService creates a new mistake service
func NewMistakeService(repo MistakeRepository, v *validator.Validator, logger *slog.Logger) *MistakeService {
	return &MistakeService{
		repo:      repo,
		validator: v,
		logger:    logger,
	}
}

// Create records a new mistake and its tags, returning the new ID.
// Missing title, subject or correct answer each come back as their own
// field in the validation error; nothing is written in that case.
func (ms *MistakeService) Create(ctx context.Context, req models.CreateMistakeRequest) (int64, error) {
	req = normalizeMistake(req)
	if err := ms.validator.Validate(&req); err != nil {
		return 0, validationErr(err)
	}

	subjectID, err := resolveSubjectID(ctx, ms.repo, ms.logger, req.Subject)
	if err != nil {
		return 0, err
	}

	// An unknown category is not an error, the mistake is filed without one
	categoryID, err := resolveCategoryID(ctx, ms.repo, ms.logger, req.Category, subjectID)
	if err != nil {
		return 0, err
	}

	id, err := ms.repo.CreateMistake(ctx, &models.NewMistake{
		Title:           req.Title,
		Description:     req.Description,
		YourAnswer:      req.YourAnswer,
		CorrectAnswer:   req.CorrectAnswer,
		Explanation:     req.Explanation,
		DifficultyLevel: req.DifficultyLevel,
		SubjectID:       subjectID,
		CategoryID:      categoryID,
		Source:          req.Source,
		Tags:            ParseTags(req.Tags),
	})
	if err != nil {
		return 0, logStoreErr(ms.logger, "create mistake", err)
	}

	ms.logger.Info("mistake created", "mistake_id", id, "subject", req.Subject)
	return id, nil
}

func normalizeMistake(req models.CreateMistakeRequest) models.CreateMistakeRequest {
	req.Title = strings.TrimSpace(req.Title)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Category = strings.TrimSpace(req.Category)
	req.DifficultyLevel = strings.TrimSpace(req.DifficultyLevel)
	req.Description = strings.TrimSpace(req.Description)
	req.YourAnswer = strings.TrimSpace(req.YourAnswer)
	req.CorrectAnswer = strings.TrimSpace(req.CorrectAnswer)
	req.Explanation = strings.TrimSpace(req.Explanation)
	req.Source = strings.TrimSpace(req.Source)
	if req.DifficultyLevel == "" {
		req.DifficultyLevel = models.DefaultDifficulty
	}
	return req
}

// List retrieves every mistake, newest first
func (ms *MistakeService) List(ctx context.Context) ([]models.Mistake, error) {
	mistakes, err := ms.repo.GetMistakes(ctx)
	if err != nil {
		return nil, logStoreErr(ms.logger, "list mistakes", err)
	}
	return mistakes, nil
}

// Search loads the full list once and filters it in memory
func (ms *MistakeService) Search(ctx context.Context, q filter.Query) ([]models.Mistake, error) {
	mistakes, err := ms.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(mistakes, q), nil
}

// Get retrieves a single mistake
func (ms *MistakeService) Get(ctx context.Context, id int64) (*models.Mistake, error) {
	m, err := ms.repo.GetMistake(ctx, id)
	if err != nil {
		return nil, logStoreErr(ms.logger, "get mistake", err)
	}
	if m == nil {
		return nil, fmt.Errorf("mistake %d: %w", id, ErrNotFound)
	}
	return m, nil
}

// MarkReviewed records one more review of a mistake
func (ms *MistakeService) MarkReviewed(ctx context.Context, id int64) error {
	found, err := ms.repo.MarkMistakeReviewed(ctx, id)
	if err != nil {
		return logStoreErr(ms.logger, "mark reviewed", err)
	}
	if !found {
		return fmt.Errorf("mistake %d: %w", id, ErrNotFound)
	}

	ms.logger.Info("mistake reviewed", "mistake_id", id)
	return nil
}

// Stats returns the dashboard counters
func (ms *MistakeService) Stats(ctx context.Context) (models.Stats, error) {
	stats, err := ms.repo.GetStats(ctx)
	if err != nil {
		return stats, logStoreErr(ms.logger, "stats", err)
	}
	return stats, nil
}

// CheckConnection reports whether the store is reachable
func (ms *MistakeService) CheckConnection(ctx context.Context) error {
	if err := ms.repo.Ping(ctx); err != nil {
		ms.logger.Error("database connection failed", "error", err)
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}
