package main

import (
	"log"

	"github.com/Baaaki/trainergo/internal/config"
	"github.com/Baaaki/trainergo/internal/database"
	"github.com/Baaaki/trainergo/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logger.Log.Fatal("Missing environment variables: ADMIN_EMAIL, ADMIN_PASSWORD")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Failed to migrate database", zap.Error(err))
	}

	admin, created, err := database.SeedAdmin(db, database.AdminSeed{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Name:     cfg.AdminName,
	})
	if err != nil {
		logger.Log.Fatal("Failed to seed admin", zap.Error(err))
	}

	if !created {
		logger.Log.Info("Admin user already exists", zap.String("email", admin.Email))
		return
	}
	logger.Log.Info("Admin user created successfully", zap.String("email", admin.Email))
}
