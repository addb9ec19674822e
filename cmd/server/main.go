package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpAdapter "github.com/khoahotran/resume-builder/adapters/http"
	"github.com/khoahotran/resume-builder/adapters/persistence"
	resumeUC "github.com/khoahotran/resume-builder/internal/application/usecase/resume"
	"github.com/khoahotran/resume-builder/internal/config"
	"github.com/khoahotran/resume-builder/pkg/logger"
	"github.com/khoahotran/resume-builder/pkg/metrics"
	"github.com/khoahotran/resume-builder/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env,
		logger.WithLevel(cfg.App.LogLevel),
		logger.WithService("resume-builder-api"),
	)
	defer appLogger.Sync()
	appLogger.Info("Starting Resume Builder API Server...", zap.String("env", cfg.App.Env))

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "resume-builder-api")
	if err != nil {
		appLogger.Fatal("Failed to initialize tracer provider", err)
	}
	if tp != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				appLogger.Error("Failed to shutdown tracer provider", err)
			}
		}()
	}

	// Store
	resumeRepo, closeStore, err := persistence.NewResumeRepository(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open resume store", err, zap.String("driver", cfg.Store.Driver))
	}
	defer closeStore()

	// Use Cases
	createResumeUseCase := resumeUC.NewCreateResumeUseCase(resumeRepo, appLogger)
	listResumesUseCase := resumeUC.NewListResumesUseCase(resumeRepo, appLogger)
	getResumeUseCase := resumeUC.NewGetResumeUseCase(resumeRepo, appLogger)
	updateResumeUseCase := resumeUC.NewUpdateResumeUseCase(resumeRepo, appLogger)
	deleteResumeUseCase := resumeUC.NewDeleteResumeUseCase(resumeRepo, appLogger)

	// HTTP Handlers
	resumeHandler := httpAdapter.NewResumeHandler(
		createResumeUseCase,
		listResumesUseCase,
		getResumeUseCase,
		updateResumeUseCase,
		deleteResumeUseCase,
		appLogger,
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(resumeHandler, metrics.NewCollector("resume_builder"), appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
	appLogger.Info("Server exited")
}
