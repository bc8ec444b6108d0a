package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"nbaweb/internal/config"
	"nbaweb/internal/projections"
	"nbaweb/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// Initialize Services
	loader := projections.NewLoader(cfg.DataDir)
	handler, err := web.NewHandler(loader)
	if err != nil {
		log.Fatalf("Handler setup failed: %v", err)
	}

	// Router Setup
	r := chi.NewRouter()

	// Middleware
	if cfg.Debug {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(web.AllowedHosts(cfg.AllowedHosts))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	handler.RegisterRoutes(r)

	log.Printf("🏀 Projections dashboard on http://localhost%s", cfg.Addr)
	log.Printf("📁 Data feed: %s", loader.Path())

	srv := &http.Server{Addr: cfg.Addr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shCtx); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}
}
