package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mistake-tracker/models"
)

// ==================== SUBJECT OPERATIONS ====================

// GetSubjects retrieves all subjects sorted by name
func (r *Repository) GetSubjects(ctx context.Context) ([]models.Subject, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, `
		SELECT id, name, description
		FROM subjects
		ORDER BY name
	`)
	if err != nil {
		return nil, wrap("get subjects", err)
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	subjects := make([]models.Subject, 0)
	for rows.Next() {
		var s models.Subject
		var description sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &description); err != nil {
			return nil, wrap("scan subject", err)
		}
		s.Description = description.String
		subjects = append(subjects, s)
	}

	return subjects, rows.Err()
}

// GetSubjectByName retrieves a subject by its exact name, or nil if absent
func (r *Repository) GetSubjectByName(ctx context.Context, name string) (*models.Subject, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return scanSubject(conn.QueryRowContext(ctx, `
		SELECT id, name, description
		FROM subjects
		WHERE name = ?
	`, name))
}

// GetSubjectByID retrieves a subject by ID, or nil if absent
func (r *Repository) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return scanSubject(conn.QueryRowContext(ctx, `
		SELECT id, name, description
		FROM subjects
		WHERE id = ?
	`, id))
}

func scanSubject(row *sql.Row) (*models.Subject, error) {
	var s models.Subject
	var description sql.NullString
	err := row.Scan(&s.ID, &s.Name, &description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("get subject", err)
	}
	s.Description = description.String
	return &s, nil
}

// CreateSubject inserts a subject and sets its generated ID.
// A name collision fails with ErrUniqueViolation.
func (r *Repository) CreateSubject(ctx context.Context, s *models.Subject) error {
	conn, err := r.conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, `
		INSERT INTO subjects (name, description, created_at)
		VALUES (?, ?, ?)
	`, s.Name, nullString(s.Description), time.Now().UTC())
	if err != nil {
		return wrap("create subject", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return wrap("create subject", err)
	}
	s.ID = id
	return nil
}

// DeleteSubject removes a subject; categories and mistakes go with it through
// the schema's ON DELETE CASCADE. Reports whether a row was removed.
func (r *Repository) DeleteSubject(ctx context.Context, id int64) (bool, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, "DELETE FROM subjects WHERE id = ?", id)
	if err != nil {
		return false, wrap("delete subject", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, wrap("delete subject", err)
	}
	return n > 0, nil
}
