package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mistake-tracker/models"
)

// ==================== MISTAKE OPERATIONS ====================

const mistakeColumns = `
	m.id, m.title, m.description, m.correct_answer, m.your_answer,
	m.explanation, m.difficulty_level, m.subject_id, s.name,
	m.category_id, c.name, m.source, m.is_reviewed, m.review_count,
	m.created_at, m.last_reviewed_at
`

// CreateMistake inserts a mistake together with its tag links in a single
// transaction and returns the generated ID
func (r *Repository) CreateMistake(ctx context.Context, m *models.NewMistake) (int64, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, wrap("begin create mistake", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO mistakes (title, description, correct_answer, your_answer,
			explanation, difficulty_level, subject_id, category_id, source,
			is_reviewed, review_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0, 0, ?)
	`,
		m.Title, nullString(m.Description), m.CorrectAnswer, nullString(m.YourAnswer),
		nullString(m.Explanation), m.DifficultyLevel, m.SubjectID, nullInt64(m.CategoryID),
		nullString(m.Source), time.Now().UTC(),
	)
	if err != nil {
		return 0, wrap("create mistake", err)
	}

	// The key belongs to this insert statement, not to whatever ran last
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrap("create mistake", err)
	}

	for _, name := range m.Tags {
		tagID, err := getOrCreateTag(ctx, tx, name)
		if err != nil {
			return 0, err
		}
		if err := linkMistakeTag(ctx, tx, id, tagID); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, wrap("commit create mistake", err)
	}
	return id, nil
}

// GetMistakes retrieves every mistake with its subject, optional category and
// tags, newest first
func (r *Repository) GetMistakes(ctx context.Context) ([]models.Mistake, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, `
		SELECT `+mistakeColumns+`
		FROM mistakes m
		JOIN subjects s ON m.subject_id = s.id
		LEFT JOIN categories c ON m.category_id = c.id
		ORDER BY m.created_at DESC, m.id DESC
	`)
	if err != nil {
		return nil, wrap("get mistakes", err)
	}
	defer rows.Close()

	mistakes := make([]models.Mistake, 0)
	for rows.Next() {
		m, err := scanMistake(rows)
		if err != nil {
			return nil, err
		}
		mistakes = append(mistakes, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("get mistakes", err)
	}
	rows.Close()

	tags, err := tagNamesByMistake(ctx, conn, 0)
	if err != nil {
		return nil, err
	}
	for i := range mistakes {
		mistakes[i].Tags = orEmpty(tags[mistakes[i].ID])
	}

	return mistakes, nil
}

// GetMistake retrieves a single mistake, or nil if absent
func (r *Repository) GetMistake(ctx context.Context, id int64) (*models.Mistake, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	row := conn.QueryRowContext(ctx, `
		SELECT `+mistakeColumns+`
		FROM mistakes m
		JOIN subjects s ON m.subject_id = s.id
		LEFT JOIN categories c ON m.category_id = c.id
		WHERE m.id = ?
	`, id)

	m, err := scanMistake(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	tags, err := tagNamesByMistake(ctx, conn, id)
	if err != nil {
		return nil, err
	}
	m.Tags = orEmpty(tags[id])

	return m, nil
}

// MarkMistakeReviewed flips the review flag, bumps the counter and stamps
// the review time in one statement. Reports whether the mistake exists.
func (r *Repository) MarkMistakeReviewed(ctx context.Context, id int64) (bool, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, `
		UPDATE mistakes SET
			is_reviewed = 1,
			review_count = review_count + 1,
			last_reviewed_at = ?
		WHERE id = ?
	`, time.Now().UTC(), id)
	if err != nil {
		return false, wrap("mark mistake reviewed", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, wrap("mark mistake reviewed", err)
	}
	return n > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMistake(row scanner) (*models.Mistake, error) {
	var m models.Mistake
	var description, yourAnswer, explanation, source, categoryName sql.NullString
	var categoryID sql.NullInt64
	var lastReviewedAt sql.NullTime

	err := row.Scan(
		&m.ID, &m.Title, &description, &m.CorrectAnswer, &yourAnswer,
		&explanation, &m.DifficultyLevel, &m.SubjectID, &m.SubjectName,
		&categoryID, &categoryName, &source, &m.IsReviewed, &m.ReviewCount,
		&m.CreatedAt, &lastReviewedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, wrap("scan mistake", err)
	}

	m.Description = description.String
	m.YourAnswer = yourAnswer.String
	m.Explanation = explanation.String
	m.Source = source.String
	if categoryID.Valid {
		m.CategoryID = &categoryID.Int64
	}
	if categoryName.Valid {
		m.CategoryName = &categoryName.String
	}
	if lastReviewedAt.Valid {
		m.LastReviewedAt = &lastReviewedAt.Time
	}

	return &m, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
