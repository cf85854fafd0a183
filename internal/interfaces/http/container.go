package http

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	notificationUsecases "github.com/orris-inc/estatehub/internal/application/notification/usecases"
	settingUsecases "github.com/orris-inc/estatehub/internal/application/setting/usecases"
	"github.com/orris-inc/estatehub/internal/infrastructure/config"
	"github.com/orris-inc/estatehub/internal/infrastructure/delivery"
	"github.com/orris-inc/estatehub/internal/infrastructure/pubsub"
	"github.com/orris-inc/estatehub/internal/infrastructure/scheduler"
	"github.com/orris-inc/estatehub/internal/interfaces/http/middleware"
	shareddb "github.com/orris-inc/estatehub/internal/shared/db"
	"github.com/orris-inc/estatehub/internal/shared/goroutine"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases, handlers,
// and background services. It is responsible for wiring everything together and
// providing a Shutdown() method for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	identityMiddleware *middleware.IdentityMiddleware
	inquiryLimiter     *middleware.RateLimiter

	settingsStore *settingUsecases.SettingsStore
	dispatcher    *notificationUsecases.Dispatcher

	// Settings invalidation bus, nil without Redis
	settingsBus         *pubsub.RedisSettingsEventBus
	settingsBusCancel   context.CancelFunc
	settingsBusCancelMu sync.Mutex

	schedulerManager *scheduler.SchedulerManager
}

// NewContainer wires the engine. Nothing runs in the background until
// StartBackground is called.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}
	if err := c.initUseCases(ctx); err != nil {
		c.closeRedis()
		return nil, err
	}
	c.initHandlers()

	return c, nil
}

// initInfrastructure connects Redis when enabled and builds the repositories,
// the settings store and the notification dispatcher.
func (c *Container) initInfrastructure(ctx context.Context) error {
	cfg := c.cfg
	log := c.log

	if cfg.Redis.Enabled {
		client, err := initRedis(ctx, cfg, log)
		if err != nil {
			return err
		}
		c.redis = client
	}

	c.repos = newRepositories(c.db, log)

	c.settingsStore = settingUsecases.NewSettingsStore(c.repos.settingRepo, shareddb.NewTransactionManager(c.db), cfg.Settings.CacheTTL, log.Named("settings"))
	if c.redis != nil {
		c.settingsBus = pubsub.NewRedisSettingsEventBus(c.redis, uuid.NewString(), log.Named("settings-bus"))
		c.settingsStore.SetPublisher(c.settingsBus)
	}

	c.dispatcher = notificationUsecases.NewDispatcher(
		c.repos.notificationRepo,
		c.repos.accountRepo,
		notificationUsecases.DispatcherConfig{
			MaxRetries:  cfg.Notification.Dispatch.MaxRetries,
			BaseBackoff: cfg.Notification.Dispatch.BaseBackoff,
			MaxBackoff:  cfg.Notification.Dispatch.MaxBackoff,
		},
		log.Named("dispatcher"),
	)
	if cfg.Notification.SNS.Enabled {
		deliverer, err := delivery.NewSNSDelivererFromConfig(ctx, cfg.Notification.SNS.Region, cfg.Notification.SNS.TopicARN)
		if err != nil {
			c.closeRedis()
			return fmt.Errorf("failed to initialize SNS delivery: %w", err)
		}
		c.dispatcher.SetDeliverer(deliverer)
		log.Infow("SNS notification delivery enabled", "topic_arn", cfg.Notification.SNS.TopicARN)
	}

	c.identityMiddleware = middleware.NewIdentityMiddleware(c.repos.accountRepo, log.Named("identity"))
	c.inquiryLimiter = middleware.NewRateLimiter(c.redis, "inquiries", cfg.Server.InquiryRateLimit, time.Minute, log.Named("ratelimit"))
	return nil
}

// initRedis creates and tests the Redis client connection.
func initRedis(ctx context.Context, cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}

// StartBackground starts the settings invalidation subscriber and the SLA sweep
// scheduler.
func (c *Container) StartBackground() error {
	if err := c.schedulerManager.RegisterSLASweepJob(c.ucs.sweepInquiriesUC, c.cfg.Engine.SLA.SweepInterval); err != nil {
		return fmt.Errorf("failed to register SLA sweep job: %w", err)
	}

	if c.settingsBus != nil {
		busCtx, cancel := context.WithCancel(context.Background())
		c.settingsBusCancelMu.Lock()
		c.settingsBusCancel = cancel
		c.settingsBusCancelMu.Unlock()

		ready := make(chan struct{})
		exited := make(chan struct{})
		goroutine.SafeGo(c.log, "settings-change-subscriber", func() {
			defer close(exited)
			err := c.settingsBus.Subscribe(busCtx, func(ctx context.Context, event pubsub.SettingsChangedEvent) {
				c.settingsStore.Invalidate(event.Keys)
			}, ready)
			if err != nil && busCtx.Err() == nil {
				c.log.Errorw("settings change subscriber exited", "error", err)
			}
		})
		select {
		case <-ready:
		case <-exited:
			c.log.Warnw("settings change subscriber did not start, relying on cache TTL")
		}
	}

	c.schedulerManager.Start()
	return nil
}

// SettingsStore exposes the store for administrative commands.
func (c *Container) SettingsStore() *settingUsecases.SettingsStore {
	return c.settingsStore
}

// RunSweep runs one SLA sweep cycle in the foreground.
func (c *Container) RunSweep(ctx context.Context) (int, error) {
	return c.ucs.sweepInquiriesUC.Execute(ctx)
}

// Shutdown stops background work and releases the Redis connection.
// The database is owned by the caller.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil && c.schedulerManager.IsStarted() {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
	}

	c.settingsBusCancelMu.Lock()
	if c.settingsBusCancel != nil {
		c.settingsBusCancel()
		c.settingsBusCancel = nil
	}
	c.settingsBusCancelMu.Unlock()

	c.closeRedis()
}

func (c *Container) closeRedis() {
	if c.redis == nil {
		return
	}
	if err := c.redis.Close(); err != nil {
		c.log.Warnw("failed to close Redis client", "error", err)
	}
	c.redis = nil
}
