package database

import (
	"context"

	"mistake-tracker/models"
)

// ==================== STATS ====================

// GetStats counts mistakes, subjects and reviewed mistakes
func (r *Repository) GetStats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats

	conn, err := r.conn(ctx)
	if err != nil {
		return stats, err
	}
	defer conn.Close()

	err = conn.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM mistakes),
			(SELECT COUNT(*) FROM subjects),
			(SELECT COUNT(*) FROM mistakes WHERE is_reviewed = 1)
	`).Scan(&stats.TotalMistakes, &stats.TotalSubjects, &stats.ReviewedMistakes)
	if err != nil {
		return stats, wrap("get stats", err)
	}

	return stats, nil
}
