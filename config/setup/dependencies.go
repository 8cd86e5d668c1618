package setup

import (
	"log/slog"

	"mistake-tracker/app"
	"mistake-tracker/database"
)

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)

	application := app.New(repo, logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// Shutdown releases everything InitDatabase acquired
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
