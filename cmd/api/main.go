package main

import (
	"net/http"
	"os"
	"time"

	"med-notebook/internal/adapters/storage/postgres"
	"med-notebook/internal/config"
	"med-notebook/internal/platform/logger"
	"med-notebook/internal/router"

	"github.com/joho/godotenv"
)

// @title Medication Notebook API
// @version 0.1
// @description Registro personal de medicación: tomas diarias, efectos adversos, libreta imprimible y reporte de consulta.
// @BasePath /
func main() {
	// .env es opcional (dev)
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		App:    cfg.Logger.App,
	})

	opts := router.Options{
		DocKey: cfg.DB.DocKey,
		Log:    log,
	}

	if cfg.DB.DSN != "" {
		db, err := postgres.Open(cfg.DB.DSN)
		if err != nil {
			log.Error("postgres connection failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
		opts.DB = db
	}

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
