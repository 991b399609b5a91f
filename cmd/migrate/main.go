package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/levelupbd/LevelBoost_Go/internal/config"
	"github.com/levelupbd/LevelBoost_Go/internal/database"
	"github.com/levelupbd/LevelBoost_Go/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(context.Background(), cfg.GetDBConnString(), migrations.FS, "."); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}
}
