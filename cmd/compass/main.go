package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/900robman/competitor-compass/internal/config"
	dbRedis "github.com/900robman/competitor-compass/internal/db/redis"
	"github.com/900robman/competitor-compass/internal/domain"
	logpkg "github.com/900robman/competitor-compass/internal/logger"
	"github.com/900robman/competitor-compass/internal/metrics"
	companytyperepo "github.com/900robman/competitor-compass/internal/repository/companytype"
	competitorrepo "github.com/900robman/competitor-compass/internal/repository/competitor"
	interviewrepo "github.com/900robman/competitor-compass/internal/repository/interview"
	pagerepo "github.com/900robman/competitor-compass/internal/repository/page"
	projectrepo "github.com/900robman/competitor-compass/internal/repository/project"
	savedsearchrepo "github.com/900robman/competitor-compass/internal/repository/savedsearch"
	chiTransport "github.com/900robman/competitor-compass/internal/transport/chi"
	openaiTransport "github.com/900robman/competitor-compass/internal/transport/openai"
	"github.com/900robman/competitor-compass/internal/transport/workflow"
	companytypeuc "github.com/900robman/competitor-compass/internal/usecase/companytype"
	competitoruc "github.com/900robman/competitor-compass/internal/usecase/competitor"
	healthuc "github.com/900robman/competitor-compass/internal/usecase/health"
	interviewuc "github.com/900robman/competitor-compass/internal/usecase/interview"
	pageuc "github.com/900robman/competitor-compass/internal/usecase/page"
	projectuc "github.com/900robman/competitor-compass/internal/usecase/project"
	savedsearchuc "github.com/900robman/competitor-compass/internal/usecase/savedsearch"
	searchuc "github.com/900robman/competitor-compass/internal/usecase/search"
	"github.com/900robman/competitor-compass/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting compass API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	// Key prefix is set once, before any repository is constructed.
	domain.KeyPrefix = cfg.Storage.KeyPrefix

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register domain metrics explicitly (no init())
	metrics.RegisterDomainMetrics()

	// Repositories
	projectRepo := projectrepo.New(store)
	competitorRepo := competitorrepo.New(store)
	pageRepo := pagerepo.New(store)
	savedRepo := savedsearchrepo.New(store)
	companyTypeRepo := companytyperepo.New(store)
	interviewRepo := interviewrepo.New(store)

	// Outbound clients
	workflowClient := workflow.NewClient(workflow.Config{
		WebhookURL: cfg.Workflow.WebhookURL,
		Token:      cfg.Workflow.Token,
		Timeout:    time.Duration(cfg.Workflow.TimeoutSec) * time.Second,
	}, logger)

	var interviewer *openaiTransport.Interviewer
	if cfg.Interview.APIKey != "" {
		interviewer = openaiTransport.NewInterviewer(&openaiTransport.Config{
			APIKey:  cfg.Interview.APIKey,
			BaseURL: cfg.Interview.BaseURL,
			Model:   cfg.Interview.Model,
			Logger:  logger,
		})
		logger.Info("Interview provider configured", zap.String("model", cfg.Interview.Model))
	}

	// Use case services
	competitorSvc := competitoruc.New(competitorRepo, projectRepo, pageRepo, workflowClient)
	projectSvc := projectuc.New(projectRepo, competitorSvc)
	pageSvc := pageuc.New(pageRepo, competitorRepo)
	searchSvc := searchuc.New(pageRepo)
	savedSvc := savedsearchuc.New(savedRepo)
	companyTypeSvc := companytypeuc.New(companyTypeRepo)

	// Pass nil interface (not typed nil pointer!) for the health check when
	// the provider is off; the interview service gets a disabled fallback.
	var questions interviewuc.QuestionGenerator = interviewuc.DisabledProvider{}
	var insights interviewuc.InsightExtractor = interviewuc.DisabledProvider{}
	var providerChecker healthuc.ProviderChecker
	if interviewer != nil {
		questions = interviewer
		insights = interviewer
		providerChecker = interviewer
	}
	interviewSvc := interviewuc.New(interviewRepo, projectRepo, questions, insights)

	healthSvc := healthuc.New(store, providerChecker)

	// HTTP server
	server := chiTransport.NewServer(projectSvc, competitorSvc, pageSvc, searchSvc,
		savedSvc, companyTypeSvc, interviewSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
