package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/v2"
	"github.com/page-cms-api/internal/api"
	"github.com/page-cms-api/internal/config"
	"github.com/page-cms-api/internal/database"
	"github.com/page-cms-api/internal/repository"
	"github.com/page-cms-api/internal/service"
	"github.com/page-cms-api/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting page CMS API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Verify connectivity before accepting traffic
	if err := db.HealthCheck(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Database health check failed")
	}

	// Initialize repositories
	repos := repository.New(db)

	// Initialize services
	services := service.NewServices(repos, log)

	// Session manager backed by the sessions table
	sessions := scs.New()
	sessions.Store = postgresstore.New(db.DB)
	sessions.IdleTimeout = cfg.Session.IdleTimeout
	sessions.Lifetime = cfg.Session.Lifetime
	sessions.Cookie.Name = cfg.Session.CookieName
	sessions.Cookie.SameSite = http.SameSiteLaxMode
	sessions.Cookie.Secure = cfg.Session.SecureCookie
	sessions.Cookie.HttpOnly = true

	// Initialize router
	router := api.NewRouter(services, sessions, cfg, log)

	// Create HTTP server; the session middleware wraps the router so
	// every handler sees a loaded session context.
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      sessions.LoadAndSave(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
