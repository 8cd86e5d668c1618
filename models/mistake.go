package models

import "time"

// Difficulty levels accepted for a mistake
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// DefaultDifficulty is used when a mistake is recorded without one
const DefaultDifficulty = DifficultyMedium

type Subject struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Category struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	SubjectID int64  `json:"subject_id"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Mistake is a recorded wrong answer joined with its subject and category names
type Mistake struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	YourAnswer      string     `json:"your_answer,omitempty"`
	CorrectAnswer   string     `json:"correct_answer"`
	Explanation     string     `json:"explanation,omitempty"`
	DifficultyLevel string     `json:"difficulty_level"`
	SubjectID       int64      `json:"subject_id"`
	SubjectName     string     `json:"subject_name"`
	CategoryID      *int64     `json:"category_id,omitempty"`
	CategoryName    *string    `json:"category_name,omitempty"`
	Source          string     `json:"source,omitempty"`
	IsReviewed      bool       `json:"is_reviewed"`
	ReviewCount     int        `json:"review_count"`
	Tags            []string   `json:"tags"`
	CreatedAt       time.Time  `json:"created_at"`
	LastReviewedAt  *time.Time `json:"last_reviewed_at,omitempty"`
}

// NewMistake is a validated mistake ready to be inserted
type NewMistake struct {
	Title           string
	Description     string
	YourAnswer      string
	CorrectAnswer   string
	Explanation     string
	DifficultyLevel string
	SubjectID       int64
	CategoryID      *int64
	Source          string
	Tags            []string
}

type CreateMistakeRequest struct {
	Title           string `json:"title" validate:"required,max=255"`
	Subject         string `json:"subject" validate:"required"`
	Category        string `json:"category"`
	DifficultyLevel string `json:"difficulty_level" validate:"required,difficulty"`
	Description     string `json:"description"`
	YourAnswer      string `json:"your_answer"`
	CorrectAnswer   string `json:"correct_answer" validate:"required"`
	Explanation     string `json:"explanation"`
	Source          string `json:"source"`
	Tags            string `json:"tags"`
}

type CreateSubjectRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type ApplyTagsRequest struct {
	Tags string `json:"tags" validate:"required"`
}

type ImportSubjectsRequest struct {
	Names   []string `json:"names"`
	Catalog bool     `json:"catalog"`
}

// ImportResult reports the outcome of a bulk subject import
type ImportResult struct {
	AddedCount   int `json:"added_count"`
	SkippedCount int `json:"skipped_count"`
}

// Stats is the dashboard summary
type Stats struct {
	TotalMistakes    int `json:"total_mistakes"`
	TotalSubjects    int `json:"total_subjects"`
	ReviewedMistakes int `json:"reviewed_mistakes"`
}
