package services

import (
	"path/filepath"
	"testing"

	"mistake-tracker/database"

	"github.com/stretchr/testify/require"
)

// setupStore opens a migrated database in a temp directory for integration tests
func setupStore(t *testing.T) *database.Repository {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })

	return database.NewRepository(db)
}
