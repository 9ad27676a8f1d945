package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/jadvalhub/jadval-api/api/swagger"
	"github.com/jadvalhub/jadval-api/internal/handler"
	"github.com/jadvalhub/jadval-api/internal/middleware"
	"github.com/jadvalhub/jadval-api/internal/models"
	"github.com/jadvalhub/jadval-api/internal/service"
	"github.com/jadvalhub/jadval-api/internal/store"
	"github.com/jadvalhub/jadval-api/pkg/cache"
	"github.com/jadvalhub/jadval-api/pkg/config"
	"github.com/jadvalhub/jadval-api/pkg/database"
	"github.com/jadvalhub/jadval-api/pkg/logger"
	corsmiddleware "github.com/jadvalhub/jadval-api/pkg/middleware/cors"
	reqidmiddleware "github.com/jadvalhub/jadval-api/pkg/middleware/requestid"
)

// @title Jadval API
// @version 0.1.0
// @description School timetable management service
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()
	snapshots := buildSnapshotStore(cfg, logr, metricsSvc)

	st := store.New(seedFromConfig(cfg), snapshots, logr)

	svcs := handler.Services{
		Auth:       service.NewAuthService(cfg.Auth, nil, logr),
		Teachers:   service.NewTeacherService(st, nil, logr),
		Groups:     service.NewGroupService(st, nil, logr),
		Classrooms: service.NewClassroomService(st, nil, logr),
		Lessons:    service.NewLessonService(st, nil, logr),
		Slots:      service.NewSlotService(st, logr),
		Settings:   service.NewSettingsService(st, nil, logr),
		Imports:    service.NewImportService(st, metricsSvc, logr),
		Exports:    service.NewExportService(st, logr),
		State:      service.NewStateService(st, logr),
		Metrics:    metricsSvc,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.Register(r, cfg.APIPrefix, svcs)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "mirror", cfg.Mirror.Backend)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// buildSnapshotStore wires the configured mirror backend. The server runs
// fine without one; snapshots are then dropped.
func buildSnapshotStore(cfg *config.Config, logr *zap.Logger, metricsSvc *service.MetricsService) store.SnapshotStore {
	switch cfg.Mirror.Backend {
	case "redis":
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			log.Fatalf("failed to connect redis mirror: %v", err)
		}
		return store.WithMetrics(store.NewRedisSnapshotStore(client), "redis", metricsSvc)
	case "postgres":
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect postgres mirror: %v", err)
		}
		return store.WithMetrics(store.NewPostgresSnapshotStore(db), "postgres", metricsSvc)
	default:
		logr.Info("state mirror disabled")
		return store.NopSnapshotStore{}
	}
}

// seedFromConfig starts from the bundled dataset and lets environment
// configuration override the school settings.
func seedFromConfig(cfg *config.Config) models.State {
	state := store.SeedState()
	if cfg.Timetable.SchoolName != "" {
		state.Settings.SchoolName = cfg.Timetable.SchoolName
	}
	if cfg.Timetable.WorkdayStart != "" {
		state.Settings.WorkingHours.Start = cfg.Timetable.WorkdayStart
	}
	if cfg.Timetable.WorkdayEnd != "" {
		state.Settings.WorkingHours.End = cfg.Timetable.WorkdayEnd
	}
	if cfg.Timetable.LessonDuration > 0 {
		state.Settings.LessonDuration = cfg.Timetable.LessonDuration
	}
	if cfg.Timetable.WorkingDays > 0 {
		state.Settings.WorkingDays = cfg.Timetable.WorkingDays
	}
	return state
}
