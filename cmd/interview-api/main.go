package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/hireloop/interview-api/api/swagger"
	"github.com/hireloop/interview-api/internal/handler"
	"github.com/hireloop/interview-api/internal/middleware"
	"github.com/hireloop/interview-api/internal/repository"
	"github.com/hireloop/interview-api/internal/service"
	"github.com/hireloop/interview-api/pkg/cache"
	"github.com/hireloop/interview-api/pkg/config"
	"github.com/hireloop/interview-api/pkg/database"
	"github.com/hireloop/interview-api/pkg/jobs"
	"github.com/hireloop/interview-api/pkg/logger"
	"github.com/hireloop/interview-api/pkg/middleware/cors"
	"github.com/hireloop/interview-api/pkg/middleware/requestid"
	"github.com/hireloop/interview-api/pkg/storage"
)

// @title        Interview Scheduling API
// @version      1.0
// @description  Interview slot allocation and roster management service.
// @BasePath     /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	var redisCache *cache.Cache
	if cfg.Redis.Enabled {
		redisCache, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			log.Warn("redis unavailable, report caching disabled", zap.Error(err))
			redisCache = nil
		} else {
			defer redisCache.Close()
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := service.NewMetrics(registry)

	applicantRepo := repository.NewApplicantRepository(db)
	interviewerRepo := repository.NewInterviewerRepository(db)
	interviewRepo := repository.NewInterviewRepository(db)
	configRepo := repository.NewSchedulingConfigRepository(db)
	cacheRepo := repository.NewCacheRepository(redisCache, cfg.Scheduler.ReportTTL)

	schedulerSvc := service.NewSchedulerService(
		applicantRepo, interviewerRepo, interviewRepo, configRepo, cacheRepo,
		cfg.Scheduler.ProposalTTL, log,
	)
	applicantSvc := service.NewApplicantService(applicantRepo, log)
	interviewerSvc := service.NewInterviewerService(interviewerRepo, log)
	interviewSvc := service.NewInterviewService(interviewRepo, cacheRepo, log)

	var exportSvc *service.ExportService
	var queue *jobs.Queue
	if cfg.Exports.Enabled {
		artifacts, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
		if err != nil {
			return err
		}
		signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)
		exportRepo := repository.NewExportRepository(db)
		queue = jobs.NewQueue(cfg.Exports.QueueSize, log)
		queue.Start(cfg.Exports.WorkerConcurrency)
		defer queue.Stop()
		exportSvc = service.NewExportService(exportRepo, interviewRepo, artifacts, signer, queue, log)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(middleware.Logging(log))
	r.Use(middleware.Metrics(metrics))
	r.Use(cors.New(cfg.CORS.AllowedOrigins))

	handler.NewHealthHandler(db).RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	r.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))

	api := r.Group(cfg.APIPrefix)
	handler.NewSchedulerHandler(schedulerSvc, metrics).RegisterRoutes(api)
	handler.NewApplicantHandler(applicantSvc).RegisterRoutes(api)
	handler.NewInterviewerHandler(interviewerSvc).RegisterRoutes(api)
	handler.NewInterviewHandler(interviewSvc).RegisterRoutes(api)
	if exportSvc != nil {
		handler.NewExportHandler(exportSvc, metrics).RegisterRoutes(api)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.Int("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
