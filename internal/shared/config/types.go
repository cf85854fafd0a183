package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// InquiryRateLimit caps POST /inquiries per client IP per minute; 0 disables it.
	InquiryRateLimit int `mapstructure:"inquiry_rate_limit"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	// Type is "mysql" or "sqlite".
	Type              string `mapstructure:"type"`
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	Username          string `mapstructure:"username"`
	Password          string `mapstructure:"password"`
	Database          string `mapstructure:"database"`
	SQLitePath        string `mapstructure:"sqlite_path"`
	MaxIdleConns      int    `mapstructure:"max_idle_conns"`
	MaxOpenConns      int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime   int    `mapstructure:"conn_max_lifetime"`
	MigrationStrategy string `mapstructure:"migration_strategy"`
	MigrationsPath    string `mapstructure:"migrations_path"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type BonusConfig struct {
	QualifyingStatuses []string `mapstructure:"qualifying_statuses"`
}

type SLAConfig struct {
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	SweepWorkers  int           `mapstructure:"sweep_workers"`
	BatchSize     int           `mapstructure:"batch_size"`
	LockTTL       time.Duration `mapstructure:"lock_ttl"`
}

type EngineConfig struct {
	ListingNumberFloor int64 `mapstructure:"listing_number_floor"`
	// ListingAllocator is "database" (shared sequence row) or "memory" (single node only)
	ListingAllocator string      `mapstructure:"listing_allocator"`
	Bonus            BonusConfig `mapstructure:"bonus"`
	SLA              SLAConfig   `mapstructure:"sla"`
}

type SettingsConfig struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type DispatchConfig struct {
	MaxRetries  uint64        `mapstructure:"max_retries"`
	BaseBackoff time.Duration `mapstructure:"base_backoff"`
	MaxBackoff  time.Duration `mapstructure:"max_backoff"`
}

type SNSConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Region   string `mapstructure:"region"`
	TopicARN string `mapstructure:"topic_arn"`
}

type NotificationConfig struct {
	Dispatch DispatchConfig `mapstructure:"dispatch"`
	SNS      SNSConfig      `mapstructure:"sns"`
}
