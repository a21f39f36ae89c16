package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"

	"presensi/pkg/logger"
	"presensi/pkg/session"
	"presensi/pkg/storage"
)

func main() {
	// Auto-load ./.env if present before reading vars
	loadDotEnv()
	cfg := loadConfig()

	logger.SetLevel(cfg.LogLevel)
	if cfg.LogDir != "" {
		if err := logger.SetupFileOutput(cfg.LogDir); err != nil {
			logger.Warnf("file logging disabled: %v", err)
		}
	}

	db, err := openDB(cfg)
	if err != nil {
		logger.Fatalf("failed to connect database: %v", err)
	}

	// Support a lightweight migrate command: `./presensi migrate`
	// runs AutoMigrate and seeding then exits. Useful for CI or manual setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		logger.Info("migration and seeding completed")
		return
	}

	store := storage.New(cfg.PublicDir, cfg.BaseURL)
	sessions := session.New(db, cfg.SessTTL)
	srv := NewServer(cfg, db, store, sessions)

	if err := sessions.PurgeExpired(); err != nil {
		logger.Warnf("session purge: %v", err)
	}

	rec := storage.NewReconciler(store, srv.fileReferenced)
	go func() {
		if err := rec.Run(context.Background(), "images", "absen", "geolocation", "signature"); err != nil && err != context.Canceled {
			logger.Errorf("storage reconciler stopped: %v", err)
		}
	}()

	r := gin.Default()
	setupRoutes(r, srv)

	logger.Infof("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
