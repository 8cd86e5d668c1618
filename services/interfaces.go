package services

import (
	"context"

	"mistake-tracker/models"
)

// subjectFinder is the lookup half shared by subject and mistake repositories
type subjectFinder interface {
	GetSubjectByName(ctx context.Context, name string) (*models.Subject, error)
	GetCategoryByName(ctx context.Context, name string, subjectID int64) (*models.Category, error)
}

// SubjectRepository defines the interface for subject and category data access
type SubjectRepository interface {
	subjectFinder
	GetSubjects(ctx context.Context) ([]models.Subject, error)
	GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error)
	CreateSubject(ctx context.Context, s *models.Subject) error
	DeleteSubject(ctx context.Context, id int64) (bool, error)
	GetCategoriesBySubjectName(ctx context.Context, subjectName string) ([]models.Category, error)
	CreateCategory(ctx context.Context, c *models.Category) error
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	GetOrCreateTag(ctx context.Context, name string) (int64, error)
	LinkMistakeTag(ctx context.Context, mistakeID, tagID int64) error
	GetTags(ctx context.Context) ([]models.Tag, error)
}

// MistakeRepository defines the interface for mistake data access
type MistakeRepository interface {
	subjectFinder
	CreateMistake(ctx context.Context, m *models.NewMistake) (int64, error)
	GetMistakes(ctx context.Context) ([]models.Mistake, error)
	GetMistake(ctx context.Context, id int64) (*models.Mistake, error)
	MarkMistakeReviewed(ctx context.Context, id int64) (bool, error)
	GetStats(ctx context.Context) (models.Stats, error)
	Ping(ctx context.Context) error
}
