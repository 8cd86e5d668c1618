package database

import (
	"context"
	"database/sql"
	"errors"

	"mistake-tracker/models"
)

// ==================== CATEGORY OPERATIONS ====================

// GetCategoriesBySubjectName retrieves the categories of a subject sorted by
// name. An unknown subject yields an empty slice.
func (r *Repository) GetCategoriesBySubjectName(ctx context.Context, subjectName string) ([]models.Category, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, `
		SELECT c.id, c.name, c.subject_id
		FROM categories c
		JOIN subjects s ON c.subject_id = s.id
		WHERE s.name = ?
		ORDER BY c.name
	`, subjectName)
	if err != nil {
		return nil, wrap("get categories", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.SubjectID); err != nil {
			return nil, wrap("scan category", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// GetCategoryByName retrieves a category within a subject, or nil if absent
func (r *Repository) GetCategoryByName(ctx context.Context, name string, subjectID int64) (*models.Category, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var c models.Category
	err = conn.QueryRowContext(ctx, `
		SELECT id, name, subject_id
		FROM categories
		WHERE name = ? AND subject_id = ?
	`, name, subjectID).Scan(&c.ID, &c.Name, &c.SubjectID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("get category", err)
	}

	return &c, nil
}

// CreateCategory inserts a category under its subject and sets its ID.
// A duplicate name within the subject fails with ErrUniqueViolation, a
// missing subject with ErrForeignKeyViolation.
func (r *Repository) CreateCategory(ctx context.Context, c *models.Category) error {
	conn, err := r.conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, `
		INSERT INTO categories (name, subject_id)
		VALUES (?, ?)
	`, c.Name, c.SubjectID)
	if err != nil {
		return wrap("create category", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return wrap("create category", err)
	}
	c.ID = id
	return nil
}
