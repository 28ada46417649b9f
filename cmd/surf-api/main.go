// @title Surf API
// @version 1.0
// @description Surf score calculation service.
// @BasePath /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"surf-api/configs"
	_ "surf-api/docs"
	"surf-api/internal/application/controller"
	"surf-api/internal/application/middleware"
	"surf-api/internal/application/schedule"
	"surf-api/internal/domain/gateway/api"
	"surf-api/internal/domain/gateway/cache"
	"surf-api/internal/domain/gateway/queue"
	"surf-api/internal/domain/scoring"
	"surf-api/internal/domain/usecase/health"
	"surf-api/internal/domain/usecase/score"
	"surf-api/internal/domain/usecase/spot"
	infraaws "surf-api/internal/infra/aws"
	httpclient "surf-api/pkg/http"
	"surf-api/pkg/log"
	"surf-api/pkg/metrics"
	"surf-api/pkg/msg"
	"surf-api/pkg/redis"
	"surf-api/pkg/resource"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log.SetName(configs.Env.ApplicationName)
	if err := resource.Init(resource.Path()); err != nil {
		log.Fatal("Failed to load properties", zap.Error(err))
	}
	if err := msg.Init(msg.Path()); err != nil {
		log.Fatal("Failed to load messages", zap.Error(err))
	}
	if err := log.SetLevel(configs.Env.LogLevel); err != nil {
		log.Warn("Invalid log level, keeping info", zap.Error(err))
	}
	defer log.Sync()

	appName := resource.GetString("app.name")
	log.Info(msg.GetMessage("app.start", appName))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupCORS(e, resource.GetStringSlice("app.cors.allow-origins"))
	middleware.SetupRequestLogger(e)
	middleware.SetupMetrics(e)
	router := e.Group(resource.GetString("app.server.context-path"))

	// Init optional components
	redisClient := initRedis()
	spotWatch, err := configs.LoadSpotWatch()
	if err != nil {
		log.Fatal("Failed to load spot watch configuration", zap.Error(err))
	}

	var cacheHealth cache.HealthGateway
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
		cacheHealth = cache.NewRedisHealthGateway(redisClient)
	}

	// Init UseCase
	scoreUseCase := score.NewScoreUseCase(scoring.NewCalculator(), score.SourceAPI)

	var queueHealth queue.HealthGateway
	if spotWatch.Enabled {
		scheduler, queueGateway := initSpotWatch(ctx, spotWatch, redisClient)
		defer func() { _ = scheduler.Stop() }()
		queueHealth = queueGateway
	} else {
		log.Info(msg.GetMessage("spot-watch.disabled"))
	}
	healthUseCase := health.NewHealthUseCase(cacheHealth, queueHealth)

	// Init Controller and Routes
	controller.NewScoreController(router, scoreUseCase).InitScoreRoutes()
	controller.NewHealthController(router, healthUseCase).InitHealthRoutes()
	router.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	router.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", appName, port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stop", appName))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
}

// initRedis connects when app.redis.enabled is set; nil means no cache and no lock
func initRedis() *redis.Client {
	if !resource.GetBool("app.redis.enabled") {
		return nil
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithCacheTTL(cache.CacheName, resource.GetDuration("app.redis.cache-ttl.conditions"))

	client, err := redis.NewClient(config)
	if err != nil {
		log.Fatal("Failed to connect to redis", zap.Error(err))
	}
	return client
}

// initSpotWatch wires open-meteo, the conditions cache, SQS and the scheduler
func initSpotWatch(ctx context.Context, cfg *configs.SpotWatchConfig, redisClient *redis.Client) (*schedule.SpotScheduler, queue.HealthGateway) {
	clientOptions := httpclient.ClientOptions{
		ReadTimeout: resource.GetDuration("app.open-meteo.read-timeout"),
		Backoff:     httpclient.NewBackoffConfig(resource.GetInt("app.open-meteo.max-retries")),
	}
	conditionsGateway := api.NewOpenMeteoGateway(
		resource.GetString("app.open-meteo.marine-url"),
		resource.GetString("app.open-meteo.forecast-url"),
		clientOptions,
	)

	var locker gocron.Locker
	if redisClient != nil {
		store := redis.NewCache(redisClient, redis.NewCacheOptions().WithCacheName(cache.CacheName))
		conditionsGateway = cache.NewCachedConditionsGateway(conditionsGateway, store)
		locker = schedule.NewRedisLocker(redisClient, cfg.LockTTL)
	}

	awsSettings := infraaws.SettingsFromProperties()
	awsConfig, err := infraaws.LoadConfig(ctx, awsSettings)
	if err != nil {
		log.Fatal("Failed to configure AWS", zap.Error(err))
	}
	sender := infraaws.NewSQSSenderAdapter(infraaws.NewSqsClient(awsConfig, awsSettings.Endpoint))

	spotScores := score.NewScoreUseCase(scoring.NewCalculator(), spot.SourceSpotWatch)
	spotUseCase := spot.NewSpotUseCase(cfg.Spots, cfg.QueueName, conditionsGateway, spotScores, sender)

	scheduler, err := schedule.NewSpotScheduler(spotUseCase, cfg.Cron, len(cfg.Spots), locker)
	if err != nil {
		log.Fatal("Failed to create spot watch scheduler", zap.Error(err))
	}
	if err := scheduler.InitSpotScheduleTasks(); err != nil {
		log.Fatal("Failed to schedule spot watch", zap.Error(err))
	}

	return scheduler, queue.NewQueueHealthGateway(sender, cfg.QueueName)
}
