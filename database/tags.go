package database

import (
	"context"

	"mistake-tracker/models"
)

// ==================== TAG OPERATIONS ====================

// GetOrCreateTag returns the ID of the tag with the given name, inserting it
// first if it does not exist yet
func (r *Repository) GetOrCreateTag(ctx context.Context, name string) (int64, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	return getOrCreateTag(ctx, conn, name)
}

// getOrCreateTag relies on UNIQUE(name): the insert is a no-op when the tag
// already exists, and only then is the existing ID read back
func getOrCreateTag(ctx context.Context, q querier, name string) (int64, error) {
	res, err := q.ExecContext(ctx, `
		INSERT INTO tags (name) VALUES (?)
		ON CONFLICT(name) DO NOTHING
	`, name)
	if err != nil {
		return 0, wrap("insert tag", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, wrap("insert tag", err)
	}
	if n == 1 {
		id, err := res.LastInsertId()
		if err != nil {
			return 0, wrap("insert tag", err)
		}
		return id, nil
	}

	var id int64
	if err := q.QueryRowContext(ctx, "SELECT id FROM tags WHERE name = ?", name).Scan(&id); err != nil {
		return 0, wrap("find tag", err)
	}
	return id, nil
}

// LinkMistakeTag associates a tag with a mistake. Linking an existing pair
// again is a no-op; a missing mistake or tag fails with ErrForeignKeyViolation.
func (r *Repository) LinkMistakeTag(ctx context.Context, mistakeID, tagID int64) error {
	conn, err := r.conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return linkMistakeTag(ctx, conn, mistakeID, tagID)
}

func linkMistakeTag(ctx context.Context, q querier, mistakeID, tagID int64) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO mistake_tags (mistake_id, tag_id) VALUES (?, ?)
		ON CONFLICT(mistake_id, tag_id) DO NOTHING
	`, mistakeID, tagID)
	if err != nil {
		return wrap("link mistake tag", err)
	}
	return nil
}

// GetTags retrieves all tags sorted by name
func (r *Repository) GetTags(ctx context.Context) ([]models.Tag, error) {
	conn, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, "SELECT id, name FROM tags ORDER BY name")
	if err != nil {
		return nil, wrap("get tags", err)
	}
	defer rows.Close()

	tags := make([]models.Tag, 0)
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, wrap("scan tag", err)
		}
		tags = append(tags, t)
	}

	return tags, rows.Err()
}

// tagNamesByMistake loads every mistake's tag names in one pass.
// When mistakeID is non-zero only that mistake is loaded.
func tagNamesByMistake(ctx context.Context, q querier, mistakeID int64) (map[int64][]string, error) {
	query := `
		SELECT mt.mistake_id, t.name
		FROM mistake_tags mt
		JOIN tags t ON t.id = mt.tag_id
	`
	var args []any
	if mistakeID != 0 {
		query += " WHERE mt.mistake_id = ?"
		args = append(args, mistakeID)
	}
	query += " ORDER BY t.name"

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap("get mistake tags", err)
	}
	defer rows.Close()

	tags := make(map[int64][]string)
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, wrap("scan mistake tag", err)
		}
		tags[id] = append(tags[id], name)
	}

	return tags, rows.Err()
}
