// main.go
package main

import (
	"log"

	"movie-reviews/cmd"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/wire"
	"movie-reviews/pkg/cache"
	"movie-reviews/pkg/database"
	"movie-reviews/pkg/tmdb"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Apply schema migrations
	if err := database.Migrate(config.Database); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Optional metadata cache
	var metadataCache *cache.Cache
	if config.Redis.Addr != "" {
		metadataCache, err = cache.New(config.Redis, logger)
		if err != nil {
			logger.Warn("Cache disabled", zap.Error(err))
			metadataCache = nil
		} else {
			defer metadataCache.Close()
			logger.Info("Cache connected", zap.String("addr", config.Redis.Addr))
		}
	}

	// Movie metadata API client
	if config.Movies.APIKey == "" {
		logger.Warn("MOVIE_API_KEY is not set; movie metadata endpoints will fail")
	}
	metadata := tmdb.NewClient(config.Movies, logger)

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, metadata, metadataCache, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
