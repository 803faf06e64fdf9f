package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/drnayak/Supplier-KPI-Scorecard/internal/config"
	"github.com/drnayak/Supplier-KPI-Scorecard/internal/middleware"
	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/entity"
	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/handler"
	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/repository"
	"github.com/drnayak/Supplier-KPI-Scorecard/internal/srm/service"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting supplier KPI scorecard service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	// 初始化数据库
	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&entity.Supplier{},
		&entity.PerformanceEvaluation{},
		&entity.ScoringConfig{},
		&entity.SupplierKpi{},
	); err != nil {
		zapLogger.Fatal("Failed to migrate tables", zap.Error(err))
	}

	// 初始化Redis
	rdb := initRedis(cfg.Redis)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		zapLogger.Warn("Redis unavailable, KPI cache disabled", zap.Error(err))
		rdb = nil
	}

	// 装配
	repos := repository.NewRepositories(db)
	svcs := service.NewServices(repos, rdb, cfg)
	handlers := handler.NewHandlers(svcs)

	// 路由
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": Version})
	})

	registerRoutes(router, handlers, cfg.JWT.Secret)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 启动服务器
	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func registerRoutes(router *gin.Engine, h *handler.Handlers, jwtSecret string) {
	api := router.Group("/api/v1")
	srmGroup := api.Group("/srm", middleware.JWTAuth(jwtSecret))
	{
		// 供应商
		suppliers := srmGroup.Group("/suppliers")
		{
			suppliers.GET("", h.Supplier.ListSuppliers)
			suppliers.POST("", h.Supplier.CreateSupplier)
			suppliers.GET("/:id", h.Supplier.GetSupplier)
			suppliers.PUT("/:id", h.Supplier.UpdateSupplier)
		}

		// 绩效评估
		evals := srmGroup.Group("/evaluations")
		{
			evals.GET("", h.Evaluation.ListEvaluations)
			evals.GET("/export", h.Evaluation.ExportEvaluations)
			evals.POST("/price", h.Evaluation.CreatePriceEvaluation)
			evals.POST("/quantity", h.Evaluation.CreateQuantityEvaluation)
			evals.POST("/delivery", h.Evaluation.CreateDeliveryEvaluation)
			evals.POST("/quality", h.Evaluation.CreateQualityEvaluation)
			evals.POST("/defect-rate", h.Evaluation.CreateDefectRateEvaluation)
			evals.GET("/supplier/:supplierId", h.Evaluation.GetSupplierHistory)
			evals.GET("/:id", h.Evaluation.GetEvaluation)
			evals.POST("/:id/attachments", h.Evaluation.UploadAttachment)
		}

		// 评分配置
		configs := srmGroup.Group("/scoring-configs")
		{
			configs.GET("", h.ScoringConfig.ListConfigs)
			configs.POST("", h.ScoringConfig.CreateConfig)
			configs.POST("/preview", h.ScoringConfig.PreviewConfig)
			configs.GET("/:id", h.ScoringConfig.GetConfig)
			configs.PUT("/:id", h.ScoringConfig.UpdateConfig)
			configs.POST("/:id/activate", h.ScoringConfig.ActivateConfig)
		}

		// 供应商KPI
		kpis := srmGroup.Group("/kpis")
		{
			kpis.GET("", h.Kpi.ListKpis)
			kpis.GET("/:supplierId", h.Kpi.GetKpi)
			kpis.POST("/:supplierId/recompute", h.Kpi.RecomputeKpi)
		}
	}
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}
