package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/orris-inc/estatehub/internal/shared/config"
)

type Config struct {
	Server       sharedConfig.ServerConfig       `mapstructure:"server"`
	Database     sharedConfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Redis        sharedConfig.RedisConfig        `mapstructure:"redis"`
	Engine       sharedConfig.EngineConfig       `mapstructure:"engine"`
	Settings     sharedConfig.SettingsConfig     `mapstructure:"settings"`
	Notification sharedConfig.NotificationConfig `mapstructure:"notification"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
// A missing config file is not an error; defaults and ESTATEHUB_* variables apply.
func Load(env string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("ESTATEHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func validate(c *Config) error {
	switch c.Database.Type {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database.type %q", c.Database.Type)
	}
	switch c.Engine.ListingAllocator {
	case "database", "memory":
	default:
		return fmt.Errorf("unsupported engine.listing_allocator %q", c.Engine.ListingAllocator)
	}
	if c.Engine.SLA.SweepWorkers < 1 {
		return fmt.Errorf("engine.sla.sweep_workers must be at least 1")
	}
	if c.Engine.SLA.BatchSize < 1 {
		return fmt.Errorf("engine.sla.batch_size must be at least 1")
	}
	if len(c.Engine.Bonus.QualifyingStatuses) == 0 {
		return fmt.Errorf("engine.bonus.qualifying_statuses must not be empty")
	}
	if c.Notification.SNS.Enabled && c.Notification.SNS.TopicARN == "" {
		return fmt.Errorf("notification.sns.topic_arn is required when sns is enabled")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.inquiry_rate_limit", 30)

	// Database defaults
	v.SetDefault("database.type", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "estatehub_dev")
	v.SetDefault("database.sqlite_path", "estatehub.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)
	v.SetDefault("database.migration_strategy", "auto")
	v.SetDefault("database.migrations_path", "./internal/infrastructure/migration/scripts")

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Engine defaults
	v.SetDefault("engine.listing_number_floor", 240226)
	v.SetDefault("engine.listing_allocator", "database")
	v.SetDefault("engine.bonus.qualifying_statuses", []string{"sold", "rented"})
	v.SetDefault("engine.sla.sweep_interval", "5m")
	v.SetDefault("engine.sla.sweep_workers", 8)
	v.SetDefault("engine.sla.batch_size", 200)
	v.SetDefault("engine.sla.lock_ttl", "1m")

	v.SetDefault("settings.cache_ttl", "30s")

	// Notification defaults
	v.SetDefault("notification.dispatch.max_retries", 3)
	v.SetDefault("notification.dispatch.base_backoff", "200ms")
	v.SetDefault("notification.dispatch.max_backoff", "5s")
	v.SetDefault("notification.sns.enabled", false)
	v.SetDefault("notification.sns.region", "us-east-1")
	v.SetDefault("notification.sns.topic_arn", "")
}
