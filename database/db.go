package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// ConnProvider hands out a dedicated connection per repository call.
// *DB satisfies it; tests may substitute their own.
type ConnProvider interface {
	Conn(ctx context.Context) (*sql.Conn, error)
	PingContext(ctx context.Context) error
}

type DB struct {
	*sql.DB
}

var _ ConnProvider = (*DB)(nil)

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Foreign keys are a per-connection setting in SQLite, so they go in the DSN
	// to apply to every connection the pool opens.
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS subjects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			description TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			subject_id INTEGER NOT NULL,
			FOREIGN KEY (subject_id) REFERENCES subjects(id) ON DELETE CASCADE,
			UNIQUE(name, subject_id)
		)`,

		`CREATE TABLE IF NOT EXISTS tags (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		)`,

		`CREATE TABLE IF NOT EXISTS mistakes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			correct_answer TEXT NOT NULL,
			your_answer TEXT,
			explanation TEXT,
			difficulty_level TEXT NOT NULL DEFAULT 'Medium'
				CHECK (difficulty_level IN ('Easy', 'Medium', 'Hard')),
			subject_id INTEGER NOT NULL,
			category_id INTEGER,
			source TEXT,
			is_reviewed BOOLEAN NOT NULL DEFAULT 0,
			review_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			last_reviewed_at DATETIME,
			FOREIGN KEY (subject_id) REFERENCES subjects(id) ON DELETE CASCADE,
			FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE SET NULL
		)`,

		`CREATE TABLE IF NOT EXISTS mistake_tags (
			mistake_id INTEGER NOT NULL,
			tag_id INTEGER NOT NULL,
			PRIMARY KEY (mistake_id, tag_id),
			FOREIGN KEY (mistake_id) REFERENCES mistakes(id) ON DELETE CASCADE,
			FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE
		)`,

		// Indexes for performance
		`CREATE INDEX IF NOT EXISTS idx_categories_subject ON categories(subject_id)`,
		`CREATE INDEX IF NOT EXISTS idx_mistakes_subject ON mistakes(subject_id)`,
		`CREATE INDEX IF NOT EXISTS idx_mistakes_created ON mistakes(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_mistake_tags_tag ON mistake_tags(tag_id)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
