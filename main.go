// main.go
package main

import (
	"context"
	"log"

	"art-market/cmd"
	"art-market/internal/data/repository"
	"art-market/internal/wire"
	"art-market/pkg/database"
	"art-market/pkg/media"
	"art-market/pkg/utils"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/zap"
	"google.golang.org/api/option"
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

	// Run pending migrations before serving traffic
	if err := database.RunMigrations(config.Database); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Firebase auth client for token verification
	ctx := context.Background()
	var opts []option.ClientOption
	if config.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.Firebase.CredentialsFile))
	}
	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: config.Firebase.ProjectID}, opts...)
	if err != nil {
		logger.Fatal("Failed to init Firebase app", zap.Error(err))
	}
	fbAuth, err := fbApp.Auth(ctx)
	if err != nil {
		logger.Fatal("Failed to init Firebase auth client", zap.Error(err))
	}

	// Cloudinary uploader for profile, product, and reference images
	uploader, err := media.NewCloudinaryUploader(config.Cloudinary.URL, logger)
	if err != nil {
		logger.Fatal("Failed to init Cloudinary uploader", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, fbAuth, uploader, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
