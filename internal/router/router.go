package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "med-notebook/docs"
	mem "med-notebook/internal/adapters/storage/memory"
	pg "med-notebook/internal/adapters/storage/postgres"
	"med-notebook/internal/domain/meds"
	"med-notebook/internal/domain/reports"
	"med-notebook/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene DB, persiste en Postgres. Si no, in-memory.
	DB *sql.DB
	// DocKey identifica el documento persistido (default en el adapter).
	DocKey string

	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory", map[string]any{"error": err.Error()})
			}
		}
	}

	var store meds.DocumentStore
	if db != nil {
		ds := pg.NewDocStore(db, opts.DocKey)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := ds.EnsureSchema(ctx); err != nil {
			log.Error("ensure schema failed", map[string]any{"error": err.Error()})
		}

		store = ds
	} else {
		store = mem.NewDocStore()
	}

	medsSvc := meds.NewService(store, log)
	reportsSvc := reports.NewService(medsSvc)

	meds.RegisterRoutes(r, medsSvc)
	reports.RegisterRoutes(r, reportsSvc)

	return r
}
