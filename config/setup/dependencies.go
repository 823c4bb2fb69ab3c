package setup

import (
	"log/slog"
	"tierra-media/app"
	"tierra-media/catalog"
	"tierra-media/database"
)

// InitDatabase opens the SQLite database and runs migrations
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

// InitApp builds the application around an open database
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)
	return app.New(repo, logger)
}

// SeedCatalog loads the embedded catalog into an empty database
func SeedCatalog(application *app.App) (int, error) {
	entries, err := catalog.Default()
	if err != nil {
		return 0, err
	}

	n, err := catalog.Seed(application.Repo, entries)
	if err != nil {
		return n, err
	}

	if n > 0 {
		application.Logger.Info("catalog seeded", "inhabitants", n)
	} else {
		application.Logger.Debug("catalog seed skipped, database not empty")
	}
	return n, nil
}

// Shutdown releases resources held by the application
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
