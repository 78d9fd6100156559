// cmd/main.go
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

	"go_5_care_plan/internal/capability"
	"go_5_care_plan/internal/config"
	"go_5_care_plan/internal/handlers"
	"go_5_care_plan/internal/middleware"
	"go_5_care_plan/internal/repository"
	"go_5_care_plan/internal/service"
	"go_5_care_plan/internal/storage"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
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
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
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

	// 3. 外部能力・メディアストア・メーラーの初期化
	transcriber := capability.NewHTTPTranscriber(config.Cfg.Capabilities.Transcribe)
	summarizer := capability.NewHTTPSummarizer(config.Cfg.Capabilities.Summarize)
	suggester := capability.NewHTTPSuggester(config.Cfg.Capabilities.Suggest)
	chatAssistant := capability.NewHTTPChatAssistant(config.Cfg.Capabilities.Chat)

	mediaStore, err := storage.NewS3MediaStore(context.Background(), &config.Cfg)
	if err != nil {
		slog.Error("Error initializing media store", slog.Any("error", err))
		os.Exit(1)
	}
	mailer := service.NewMailer(&config.Cfg)

	// 4. Dependency Injection
	userRepo := repository.NewGormUserRepository()
	childRepo := repository.NewGormChildRepository()
	planRepo := repository.NewGormPlanRepository()
	feedbackRepo := repository.NewGormFeedbackRepository()

	authService := service.NewAuthService(db, userRepo, &config.Cfg)
	childService := service.NewChildService(db, childRepo)
	planService := service.NewPlanService(db, planRepo, childRepo, userRepo, transcriber, summarizer, suggester, mediaStore, mailer, &config.Cfg)
	feedbackService := service.NewFeedbackService(db, feedbackRepo)
	analyticsService := service.NewAnalyticsService(db, feedbackRepo, planRepo, &config.Cfg)
	chatService := service.NewChatService(db, planRepo, childService, chatAssistant, &config.Cfg)

	authHandler := handlers.NewAuthHandler(authService)
	childHandler := handlers.NewChildHandler(childService, logger)
	planHandler := handlers.NewPlanHandler(planService, childService, logger)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, childService, logger)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, childService, logger)
	calendarHandler := handlers.NewCalendarHandler(planService, childService, logger)
	chatHandler := handlers.NewChatHandler(chatService, logger)

	// 5. Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	// プラン生成は外部能力を複数回呼ぶため、長めのタイムアウトにしている
	r.Use(chimiddleware.Timeout(5 * time.Minute))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			if config.Cfg.Auth.Enabled {
				slog.Info("Applying JWT authentication middleware")
				r.Use(middleware.JWTAuthMiddleware(&config.Cfg))
			} else {
				slog.Warn("Auth disabled: applying DEV user context middleware (X-User-ID / X-User-Role headers)")
				r.Use(middleware.DevUserContextMiddleware)
			}

			r.Route("/children", func(r chi.Router) {
				r.Post("/", childHandler.PostChild)
				r.Get("/", childHandler.GetChildren)
				r.Post("/link", childHandler.LinkChild)

				r.Route("/{child_id}", func(r chi.Router) {
					r.Post("/plans", planHandler.GeneratePlan)
					r.Get("/plans", planHandler.GetPlans)
					r.Get("/plans/current", planHandler.GetCurrentPlan)
					r.Get("/calendar", calendarHandler.GetCalendar)

					r.Post("/feedback", feedbackHandler.PostFeedback)
					r.Get("/feedback", feedbackHandler.GetFeedback)

					r.Get("/progress", analyticsHandler.GetProgress)
					r.Get("/skills", analyticsHandler.GetSkills)
				})
			})

			r.Patch("/plans/{plan_id}/tasks/{task_id}/video", planHandler.AttachDemoVideo)

			r.Post("/chat", chatHandler.PostChat)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err = sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 6. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
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
