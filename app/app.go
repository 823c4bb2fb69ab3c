package app

import (
	"log/slog"
	"tierra-media/database"
	"tierra-media/services"
	"tierra-media/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo              *database.Repository
	InhabitantService *services.InhabitantService
	Validator         *validator.Validator
	Logger            *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, logger *slog.Logger) *App {
	return &App{
		Repo:              repo,
		InhabitantService: services.NewInhabitantService(repo),
		Validator:         validator.New(),
		Logger:            logger,
	}
}
