package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	authhandler "github.com/painel/painel-backend/internal/auth/handler"
	"github.com/painel/painel-backend/internal/auth/jwt"
	authrepo "github.com/painel/painel-backend/internal/auth/repository"
	authservice "github.com/painel/painel-backend/internal/auth/service"
	"github.com/painel/painel-backend/internal/dashboard/events"
	"github.com/painel/painel-backend/internal/dashboard/handler"
	"github.com/painel/painel-backend/internal/dashboard/pipeline"
	"github.com/painel/painel-backend/internal/dashboard/repository"
	"github.com/painel/painel-backend/internal/dashboard/service"
	"github.com/painel/painel-backend/internal/dashboard/session"
	"github.com/painel/painel-backend/pkg/config"
	"github.com/painel/painel-backend/pkg/httputil"
	"github.com/painel/painel-backend/pkg/i18n"
	"github.com/painel/painel-backend/pkg/logger"
	"github.com/painel/painel-backend/pkg/messaging"
)

func main() {
	// Load configuration with validation (fails fast in production if required config is missing)
	cfg, err := config.LoadWithValidation("dashboard-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("dashboard-service", cfg.Server.Environment)
	log.Info().Msg("starting Dashboard Service")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts, err := pipeline.OptionsFromConfig(&cfg.Dataset)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid dataset configuration")
	}

	store, closeStore, err := repository.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open snapshot store")
	}
	defer closeStore()

	cache := repository.NewSnapshotCache(store, pipeline.New(opts, log), log)

	// Snapshot events are optional
	var rmq *messaging.RabbitMQ
	if cfg.RabbitMQ.Enabled {
		rmq, err = messaging.New(&cfg.RabbitMQ, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
		}
		defer rmq.Close()

		publisher, err := events.NewSnapshotEventPublisher(rmq, opts.Seed, cfg.Snapshot.Backend, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create event publisher")
		}
		cache.WithNotifier(publisher)
	}

	dataset, err := cache.LoadOrGenerate(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dataset")
	}

	dashboardService := service.NewDashboardService(dataset, opts.Catalog, cache, log)

	// Sessions and login
	sessions := session.NewStore(cfg.Auth.SessionTTL)
	go sessions.Run(ctx)

	users, err := authrepo.NewUserRepository(cfg.Auth.UsersFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Auth.UsersFile).Msg("failed to load users, add one with useradd")
	}
	log.Info().Int("users", users.Count()).Msg("users loaded")

	authService := authservice.NewAuthService(users, sessions, jwt.NewManager(&cfg.Auth), log)
	authHandler := authhandler.NewAuthHandler(authService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, sessions, log)

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RealIP)
	r.Use(httputil.RequestID)
	r.Use(httputil.Logger(log))
	r.Use(httputil.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "Accept-Language"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(i18n.Middleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		health := map[string]interface{}{
			"status":   "healthy",
			"service":  "dashboard-service",
			"backend":  cfg.Snapshot.Backend,
			"sessions": sessions.Len(),
		}
		if hc, ok := store.(repository.HealthChecker); ok {
			health["store"] = hc.Health(r.Context())
		}
		if rmq != nil {
			health["rabbitmq"] = rmq.Health()
		}
		httputil.JSON(w, http.StatusOK, health)
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Group(func(r chi.Router) {
				r.Use(authHandler.RequireSession)
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})
		})

		r.Mount("/dashboard", dashboardHandler.Routes(authHandler.RequireSession))
	})

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Stop the session sweeper
	cancel()

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
