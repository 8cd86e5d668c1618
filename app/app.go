package app

import (
	"log/slog"

	"mistake-tracker/database"
	"mistake-tracker/services"
	"mistake-tracker/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo      *database.Repository
	Subjects  *services.SubjectService
	Tags      *services.TagService
	Mistakes  *services.MistakeService
	Imports   *services.ImportService
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance, wiring every service to the same repository
func New(repo *database.Repository, logger *slog.Logger) *App {
	v := validator.New()
	return &App{
		Repo:      repo,
		Subjects:  services.NewSubjectService(repo, v, logger),
		Tags:      services.NewTagService(repo, logger),
		Mistakes:  services.NewMistakeService(repo, v, logger),
		Imports:   services.NewImportService(repo, v, logger),
		Validator: v,
		Logger:    logger,
	}
}
