package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	contenthttp "github.com/vividmgmt/vividbackend/internal/content/interfaces/http"
	langapp "github.com/vividmgmt/vividbackend/internal/language/application"
	langredis "github.com/vividmgmt/vividbackend/internal/language/infrastructure/persistence/redis"
	langhttp "github.com/vividmgmt/vividbackend/internal/language/interfaces/http"
	subapp "github.com/vividmgmt/vividbackend/internal/submission/application"
	subdomain "github.com/vividmgmt/vividbackend/internal/submission/domain"
	"github.com/vividmgmt/vividbackend/internal/submission/infrastructure/messaging"
	submysql "github.com/vividmgmt/vividbackend/internal/submission/infrastructure/persistence/mysql"
	"github.com/vividmgmt/vividbackend/internal/submission/infrastructure/storage"
	subhttp "github.com/vividmgmt/vividbackend/internal/submission/interfaces/http"
	"github.com/vividmgmt/vividbackend/pkg/config"
	"github.com/vividmgmt/vividbackend/pkg/db"
	"github.com/vividmgmt/vividbackend/pkg/geoip"
	"github.com/vividmgmt/vividbackend/pkg/i18n"
	"github.com/vividmgmt/vividbackend/pkg/logger"
	"github.com/vividmgmt/vividbackend/pkg/metrics"
	"github.com/vividmgmt/vividbackend/pkg/middleware"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "configs/intake/config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("load config failed: %v", err))
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
		WithCaller: cfg.Logger.WithCaller,
	}); err != nil {
		panic(fmt.Sprintf("init logger failed: %v", err))
	}

	ctx := context.Background()
	logger.Info(ctx, "Starting intake service", "environment", cfg.Environment)

	database, err := db.Init(db.Config{
		Driver:             cfg.Database.Driver,
		DSN:                cfg.Database.DSN,
		MaxOpenConns:       cfg.Database.MaxOpenConns,
		MaxIdleConns:       cfg.Database.MaxIdleConns,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		LogEnabled:         cfg.Database.LogEnabled,
		SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
	})
	if err != nil {
		panic(fmt.Sprintf("connect db failed: %v", err))
	}
	if err := database.AutoMigrate(&subdomain.Submission{}); err != nil {
		panic(fmt.Sprintf("migrate db failed: %v", err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.MaxPoolSize,
		ReadTimeout:  time.Duration(cfg.Redis.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Redis.WriteTimeout) * time.Second,
	})

	var publisher subdomain.EventPublisher
	var kafkaPublisher *messaging.KafkaPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher = messaging.NewKafkaPublisher(cfg.Kafka)
		publisher = kafkaPublisher
	}

	catalog := i18n.NewCatalog()
	m := metrics.New(cfg.ServiceName)

	store := storage.NewClient(storage.Config{
		Endpoint:   cfg.Storage.Endpoint,
		ServiceKey: cfg.Storage.ServiceKey,
		Timeout:    time.Duration(cfg.Storage.UploadTimeout) * time.Second,
	})

	submissionSvc := subapp.NewSubmissionService(
		submysql.NewSubmissionRepository(database.DB),
		subapp.NewUploader(store, cfg.Storage.Bucket),
		subapp.NewValidator(catalog),
		publisher,
		catalog,
		m,
		cfg.Kafka.SubmissionTopic,
		cfg.Intake.MinPhotos,
	)

	geoClient := geoip.New(geoip.Config{
		Endpoint: cfg.GeoIP.Endpoint,
		Timeout:  time.Duration(cfg.GeoIP.Timeout) * time.Second,
	})
	languageSvc := langapp.NewLanguageService(langredis.NewPreferenceRedisRepository(redisClient), geoClient)

	if cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		middleware.GinRecoveryMiddleware(),
		middleware.GinLoggingMiddleware(),
		middleware.GinCORSMiddleware(),
		middleware.GinRateLimitMiddleware(middleware.NewRateLimiter(100, 50)),
	)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, m.Handler())
	}

	subhttp.NewSubmissionHandler(submissionSvc, catalog, cfg.HTTP.MaxUploadSizeMB).RegisterRoutes(router)
	langhttp.NewLanguageHandler(languageSvc).RegisterRoutes(router)
	contenthttp.NewContentHandler(catalog).RegisterRoutes(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info(ctx, "Starting HTTP server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "Shutting down intake service")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "HTTP server shutdown failed", "error", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Error(ctx, "Kafka publisher close failed", "error", err)
		}
	}
	if err := redisClient.Close(); err != nil {
		logger.Error(ctx, "Redis close failed", "error", err)
	}
	logger.Info(ctx, "Intake service stopped")
}
