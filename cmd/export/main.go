// Command export runs the Google Sheets export once and exits. Useful for
// backfills and for checking credentials outside the cron schedule.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"lawncare/internal/config"
	"lawncare/internal/database"
	"lawncare/internal/notify"
	"lawncare/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if cfg.DatabaseURL == "memory" {
		logger.Fatal("export needs a durable store, set DATABASE_URL")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	if err := repository.Migrate(db); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}
	store := repository.NewGormStore(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	exporter, err := notify.NewExporter(ctx, store, cfg.SpreadsheetID, cfg.GoogleCredentialsFile, logger)
	if err != nil {
		logger.Fatal("sheets exporter init failed", zap.Error(err))
	}
	if !exporter.Configured() {
		logger.Fatal("sheets export not configured, set GOOGLE_SPREADSHEET_ID and GOOGLE_SERVICE_ACCOUNT_KEY_FILE")
	}

	if err := exporter.ExportAll(ctx); err != nil {
		logger.Fatal("export failed", zap.Error(err))
	}
	logger.Info("export complete")
}
