package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ontapquiz/backend/internal/api"
	"github.com/ontapquiz/backend/internal/domain/questionbank"
	"github.com/ontapquiz/backend/internal/domain/source"
	"github.com/ontapquiz/backend/internal/infrastructure/config"
	"github.com/ontapquiz/backend/internal/loader"
	"github.com/ontapquiz/backend/internal/service"
	"github.com/ontapquiz/backend/internal/store"

	_ "github.com/ontapquiz/backend/docs" // generated swagger docs
)

// @title           Ôn Tập Quiz API
// @version         1.0
// @description     Multiple-choice revision tool — practice with instant feedback or take a randomized exam over CSV question banks.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewMemory()
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// All sources load before the server comes up. A single failed source
	// fails the whole load; there is no serving of partial banks.
	banks, err := loader.New(questionbank.DefaultMapping(), logger).
		LoadAll(context.Background(), cfg.Sources)
	if err != nil {
		logger.Error("failed to load question sources", "error", err)
		os.Exit(1)
	}
	for i, src := range cfg.Sources {
		if err := db.SaveBank(context.Background(), banks[src.Key], i); err != nil {
			logger.Error("failed to index bank", "bank", src.Key, "error", err)
			os.Exit(1)
		}
	}

	registry := source.NewRegistry(cfg.Sources)
	sessions := service.NewSessionService(db, registry, logger)
	handler := api.NewHandler(db, sessions, cfg.Locale, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Browser view layer, when bundled alongside the binary.
	if _, err := os.Stat("web"); err == nil {
		mux.Handle("GET /", http.FileServer(http.Dir("web")))
	}

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "banks", len(banks))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
