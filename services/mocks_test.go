package services

import (
	"context"
	"io"
	"log/slog"

	"mistake-tracker/models"

	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockSubjectRepository is a mock implementation of SubjectRepository interface
type MockSubjectRepository struct {
	mock.Mock
}

// Ensure MockSubjectRepository implements SubjectRepository interface
var _ SubjectRepository = (*MockSubjectRepository)(nil)

func (m *MockSubjectRepository) GetSubjects(ctx context.Context) ([]models.Subject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Subject), args.Error(1)
}

func (m *MockSubjectRepository) GetSubjectByName(ctx context.Context, name string) (*models.Subject, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subject), args.Error(1)
}

func (m *MockSubjectRepository) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subject), args.Error(1)
}

func (m *MockSubjectRepository) CreateSubject(ctx context.Context, s *models.Subject) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSubjectRepository) DeleteSubject(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubjectRepository) GetCategoriesBySubjectName(ctx context.Context, subjectName string) ([]models.Category, error) {
	args := m.Called(ctx, subjectName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockSubjectRepository) GetCategoryByName(ctx context.Context, name string, subjectID int64) (*models.Category, error) {
	args := m.Called(ctx, name, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockSubjectRepository) CreateCategory(ctx context.Context, c *models.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// MockTagRepository is a mock implementation of TagRepository interface
type MockTagRepository struct {
	mock.Mock
}

var _ TagRepository = (*MockTagRepository)(nil)

func (m *MockTagRepository) GetOrCreateTag(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTagRepository) LinkMistakeTag(ctx context.Context, mistakeID, tagID int64) error {
	args := m.Called(ctx, mistakeID, tagID)
	return args.Error(0)
}

func (m *MockTagRepository) GetTags(ctx context.Context) ([]models.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

// MockMistakeRepository is a mock implementation of MistakeRepository interface
type MockMistakeRepository struct {
	mock.Mock
}

var _ MistakeRepository = (*MockMistakeRepository)(nil)

func (m *MockMistakeRepository) GetSubjectByName(ctx context.Context, name string) (*models.Subject, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subject), args.Error(1)
}

func (m *MockMistakeRepository) GetCategoryByName(ctx context.Context, name string, subjectID int64) (*models.Category, error) {
	args := m.Called(ctx, name, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockMistakeRepository) CreateMistake(ctx context.Context, nm *models.NewMistake) (int64, error) {
	args := m.Called(ctx, nm)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMistakeRepository) GetMistakes(ctx context.Context) ([]models.Mistake, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Mistake), args.Error(1)
}

func (m *MockMistakeRepository) GetMistake(ctx context.Context, id int64) (*models.Mistake, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Mistake), args.Error(1)
}

func (m *MockMistakeRepository) MarkMistakeReviewed(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMistakeRepository) GetStats(ctx context.Context) (models.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Stats), args.Error(1)
}

func (m *MockMistakeRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
