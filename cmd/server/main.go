package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tkarolak/dinesplit/internal/catalog"
	"github.com/tkarolak/dinesplit/internal/middleware"
	"github.com/tkarolak/dinesplit/internal/service"
	"github.com/tkarolak/dinesplit/internal/storage/sqlite"
	"github.com/tkarolak/dinesplit/pkg/logging"
)

type config struct {
	Port        int    `conf:"default:8080,env:PORT"`
	DBPath      string `conf:"default:./data/parties.db,env:DB_PATH"`
	CatalogPath string `conf:"default:,env:CATALOG_PATH"`
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
}

func main() {
	var cfg config
	_ = godotenv.Load()
	if help, err := conf.Parse("", &cfg); err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return
		}
		fmt.Fprintln(os.Stderr, "failed to parse config:", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	// Presets ship embedded; CATALOG_PATH overrides them. A bad catalog is
	// not fatal: the app keeps running with custom restaurants only.
	var cat *catalog.Catalog
	var err error
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		slog.Warn("Restaurant catalog unavailable, per-item pricing only", "error", err)
	} else {
		slog.Info("Restaurant catalog loaded", "presets", cat.Len())
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	r := chi.NewRouter()
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(120, time.Minute))
		r.Mount("/api", service.NewPartyService(store, cat).Routes())
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
