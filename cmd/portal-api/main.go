package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/ituna-edu/portal-api/api/swagger"
	"github.com/ituna-edu/portal-api/internal/handler"
	"github.com/ituna-edu/portal-api/internal/middleware"
	"github.com/ituna-edu/portal-api/internal/routes"
	"github.com/ituna-edu/portal-api/internal/service"
	"github.com/ituna-edu/portal-api/internal/store"
	"github.com/ituna-edu/portal-api/pkg/cache"
	"github.com/ituna-edu/portal-api/pkg/config"
	"github.com/ituna-edu/portal-api/pkg/export"
	"github.com/ituna-edu/portal-api/pkg/jobs"
	"github.com/ituna-edu/portal-api/pkg/logger"
	corsmiddleware "github.com/ituna-edu/portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/ituna-edu/portal-api/pkg/middleware/requestid"
	"github.com/ituna-edu/portal-api/pkg/storage"
)

// @title Ituna School Portal API
// @version 1.0.0
// @description Backend for the Ituna secondary school web portal
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

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

	ctx := context.Background()

	var backend store.Backend
	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Fatal("failed to connect to redis", zap.Error(err))
		}
		backend = store.NewRedisBackend(client, cfg.Store.Key)
	case config.StoreBackendMemory:
		backend = store.NewMemoryBackend()
	default:
		fileBackend, err := store.NewFileBackend(cfg.Store.Path)
		if err != nil {
			logr.Fatal("failed to open store file", zap.Error(err))
		}
		backend = fileBackend
	}

	metricsSvc := service.NewMetricsService()

	st := store.New(backend, logr).WithObserver(metricsSvc.ObserveStoreOperation)
	if err := st.Initialize(ctx); err != nil {
		logr.Fatal("failed to initialize store", zap.Error(err))
	}

	validate := validator.New()

	authSvc, err := service.NewAuthService(st, validate, logr, service.AuthConfig{
		TokenSecret:  cfg.JWT.Secret,
		TokenExpiry:  cfg.JWT.Expiration,
		Issuer:       "portal-api",
		DemoPassword: cfg.Auth.DemoPassword,
	})
	if err != nil {
		logr.Fatal("failed to init auth service", zap.Error(err))
	}

	studentSvc := service.NewStudentService(st, validate, logr)
	teacherSvc := service.NewTeacherService(st, logr)
	articleSvc := service.NewArticleService(st, logr)
	resourceSvc := service.NewResourceService(st, logr)
	notificationSvc := service.NewNotificationService(st, logr)
	searchSvc := service.NewSearchService(st, cfg.Search, logr)

	navigationHandler := handler.NewNavigationHandler(routes.NewResolver())
	authHandler := handler.NewAuthHandler(authSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	teacherHandler := handler.NewTeacherHandler(teacherSvc)
	articleHandler := handler.NewArticleHandler(articleSvc)
	resourceHandler := handler.NewResourceHandler(resourceSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)
	searchHandler := handler.NewSearchHandler(searchSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/navigation/resolve", navigationHandler.Resolve)

	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/students", studentHandler.List)
	api.GET("/students/:id", studentHandler.Get)
	api.PUT("/students/:id", middleware.JWT(authSvc), studentHandler.Update)

	api.GET("/teachers", teacherHandler.List)
	api.GET("/teachers/:id", teacherHandler.Get)

	api.GET("/news", articleHandler.List)
	api.GET("/news/:id", articleHandler.Get)

	api.GET("/resources", resourceHandler.List)
	api.GET("/resources/subjects", resourceHandler.Subjects)
	api.DELETE("/resources/:id", middleware.JWT(authSvc), resourceHandler.Delete)

	api.GET("/notifications", notificationHandler.List)
	api.POST("/notifications/read-all", notificationHandler.MarkAllRead)

	api.GET("/search", searchHandler.Query)

	admin := api.Group("/admin", middleware.JWT(authSvc))
	admin.GET("/metrics", metricsHandler.Snapshot)

	if cfg.Reports.Enabled {
		files, err := storage.NewLocalStorage(cfg.Reports.StorageDir)
		if err != nil {
			logr.Fatal("failed to init report storage", zap.Error(err))
		}
		signer := storage.NewSignedURLSigner(cfg.Reports.SignedURLSecret, cfg.Reports.SignedURLTTL)

		var reportSvc *service.ReportService
		queue := jobs.NewQueue("reports", func(ctx context.Context, job jobs.Job) error {
			if err := reportSvc.Process(ctx, job); err != nil {
				return err
			}
			metricsSvc.RecordReportGenerated()
			return nil
		}, jobs.QueueConfig{
			Workers:    cfg.Reports.WorkerConcurrency,
			MaxRetries: cfg.Reports.WorkerRetries,
			Logger:     logr,
		})
		reportSvc = service.NewReportService(st, queue, export.NewPDFExporter(""), files, signer, logr)
		queue.Start(ctx)
		defer queue.Stop()
		reportSvc.StartCleanup(ctx, cfg.Reports.CleanupInterval, cfg.Reports.SignedURLTTL)

		reportHandler := handler.NewReportHandler(reportSvc)
		api.POST("/reports", middleware.JWT(authSvc), reportHandler.Create)
		api.GET("/reports/:id", reportHandler.Status)
		// Download links are signed and self-contained, so they live at the
		// root to match the URL embedded in job status responses.
		r.GET("/reports/download/:token", reportHandler.Download)
	}

	if cfg.Assistant.Enabled {
		assistantSvc, err := service.NewAssistantService(ctx, cfg.Assistant, logr)
		if err != nil {
			logr.Fatal("failed to init assistant", zap.Error(err))
		}
		assistantHandler := handler.NewAssistantHandler(assistantSvc, metricsSvc)
		assistant := api.Group("/assistant")
		assistant.POST("/chat", assistantHandler.Chat)
		assistant.DELETE("/chat/:id", assistantHandler.EndChat)
		assistant.POST("/image", assistantHandler.AnalyzeImage)
		assistant.POST("/transcribe", assistantHandler.Transcribe)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store", cfg.Store.Backend)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
