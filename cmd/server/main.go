// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"lingo_progress/internal/cache"
	"lingo_progress/internal/config"
	"lingo_progress/internal/handlers"
	"lingo_progress/internal/middleware"
	"lingo_progress/internal/repository"
	"lingo_progress/internal/scheduler"
	"lingo_progress/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Temporary logger until the configured one exists.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	db, err := repository.NewDB(config.Cfg, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := repository.Migrate(db); err != nil {
		slog.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency Injection
	game := config.Cfg.Game
	userRepo := repository.NewGormUserProgressRepository()
	courseRepo := repository.NewGormCourseProgressRepository()
	challengeRepo := repository.NewGormChallengeProgressRepository()
	contentRepo := repository.NewGormContentRepository()

	var leaderboardCache service.LeaderboardCache
	if config.Cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedisLeaderboardCache(config.Cfg)
		if err != nil {
			slog.Error("Error connecting to redis", slog.Any("error", err))
			os.Exit(1)
		}
		defer redisCache.Close()
		leaderboardCache = redisCache
		slog.Info("Leaderboard cache enabled", slog.String("redis_addr", config.Cfg.Redis.Addr))
	}

	leaderboardService := service.NewLeaderboardService(db, userRepo, leaderboardCache, config.Cfg.Redis.LeaderboardTTL, game)
	progressService := service.NewProgressService(db, userRepo, courseRepo, challengeRepo, contentRepo, game)
	challengeService := service.NewChallengeService(db, userRepo, courseRepo, challengeRepo, contentRepo, game, leaderboardService)
	economyService := service.NewEconomyService(db, userRepo, courseRepo, game, leaderboardService)

	if leaderboardCache != nil {
		jobs := scheduler.New(leaderboardService, config.Cfg.Scheduler.LeaderboardRefresh, logger)
		if err := jobs.Start(); err != nil {
			slog.Error("Error starting scheduler", slog.Any("error", err))
			os.Exit(1)
		}
		defer jobs.Stop()
	}

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger, config.Cfg.Log.HTTPDetail))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	authMiddleware := middleware.JWTAuthMiddleware(&config.Cfg)
	if config.Cfg.Auth.Enabled {
		slog.Info("Applying JWT authentication middleware")
	} else {
		slog.Warn("Authentication disabled: trusting the X-User-ID header")
		authMiddleware = middleware.DevUserContextMiddleware
	}

	handlers.RegisterRoutes(r, handlers.Handlers{
		Progress:    handlers.NewProgressHandler(progressService, logger),
		Challenge:   handlers.NewChallengeHandler(challengeService, logger),
		Economy:     handlers.NewEconomyHandler(economyService, logger),
		Leaderboard: handlers.NewLeaderboardHandler(leaderboardService, logger),
	}, authMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger builds the application logger from config.Cfg.Log and APP_ENV.
func newLogger(tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}
