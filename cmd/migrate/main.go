package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"animalovers-backend/internal/config"
	"animalovers-backend/internal/migrate"
	"animalovers-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.App.Environment)

	dsn := fmt.Sprintf(
		"postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Database.AdminUser, cfg.Database.AdminPassword,
		cfg.Database.Host, cfg.Database.Port,
		cfg.Database.Database, cfg.Database.SSLMode,
	)

	if err := migrate.Apply(context.Background(), dsn); err != nil {
		logger.Error("failed to apply migrations", err)
		os.Exit(1)
	}

	logger.Info("migrations applied", nil)
}
