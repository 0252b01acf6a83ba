// Package config provides configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	WhatsApp   WhatsAppConfig   `mapstructure:"whatsapp"`
	Broadcast  BroadcastConfig  `mapstructure:"broadcast"`
	Dispatcher DispatcherConfig `mapstructure:"dispatcher"`
	Scheduler  SchedulerConfig  `mapstructure:"scheduler"`
	Reconcile  ReconcileConfig  `mapstructure:"reconcile"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	DBName         string `mapstructure:"dbname"`
	SSLMode        string `mapstructure:"sslmode"`
	AutoMigrate    bool   `mapstructure:"auto_migrate"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// WhatsAppConfig configures the Cloud API wire client.
type WhatsAppConfig struct {
	BaseURL         string               `mapstructure:"base_url"`
	APIVersion      string               `mapstructure:"api_version"`
	Token           string               `mapstructure:"token"`
	PhoneNumberID   string               `mapstructure:"phone_number_id"`
	CountryCode     string               `mapstructure:"country_code"`
	Timeout         int                  `mapstructure:"timeout"`
	MaxAttempts     int                  `mapstructure:"max_attempts"`
	BackoffBaseMs   int                  `mapstructure:"backoff_base_ms"`
	BackoffJitterMs int                  `mapstructure:"backoff_jitter_ms"`
	CircuitBreaker  CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

// BroadcastConfig tunes fan-out strategy and pacing.
type BroadcastConfig struct {
	BatchSize          int  `mapstructure:"batch_size"`
	BatchThreshold     int  `mapstructure:"batch_threshold"`
	BatchDelayMs       int  `mapstructure:"batch_delay_ms"`
	SequentialDelayMs  int  `mapstructure:"sequential_delay_ms"`
	DefaultBlastRadius int  `mapstructure:"default_blast_radius"`
	FilterByCategory   bool `mapstructure:"filter_by_category"`
	MaxMessageLength   int  `mapstructure:"max_message_length"`
}

type DispatcherConfig struct {
	Workers   int `mapstructure:"workers"`
	QueueSize int `mapstructure:"queue_size"`
}

type SchedulerConfig struct {
	IntervalSeconds int `mapstructure:"interval_seconds"`
	BatchSize       int `mapstructure:"batch_size"`
}

type ReconcileConfig struct {
	Schedule          string `mapstructure:"schedule"`
	StaleAfterMinutes int    `mapstructure:"stale_after_minutes"`
}

type CacheConfig struct {
	AuthorityTTLSeconds int `mapstructure:"authority_ttl_seconds"`
	DeliveryTTLHours    int `mapstructure:"delivery_ttl_hours"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	RequestTimeout int      `mapstructure:"request_timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("database.migrations_path", "./migrations")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("whatsapp.base_url", "https://graph.facebook.com")
	v.SetDefault("whatsapp.api_version", "v18.0")
	v.SetDefault("whatsapp.token", "")
	v.SetDefault("whatsapp.phone_number_id", "")
	v.SetDefault("whatsapp.country_code", "27")
	v.SetDefault("whatsapp.timeout", 15)
	v.SetDefault("whatsapp.max_attempts", 3)
	v.SetDefault("whatsapp.backoff_base_ms", 1000)
	v.SetDefault("whatsapp.backoff_jitter_ms", 1000)
	v.SetDefault("whatsapp.circuit_breaker.max_requests", 3)
	v.SetDefault("whatsapp.circuit_breaker.interval", 60)
	v.SetDefault("whatsapp.circuit_breaker.timeout", 30)
	v.SetDefault("whatsapp.circuit_breaker.failure_ratio", 0.6)
	v.SetDefault("whatsapp.circuit_breaker.consecutive_fails", 10)
	v.SetDefault("broadcast.batch_size", 50)
	v.SetDefault("broadcast.batch_threshold", 50)
	v.SetDefault("broadcast.batch_delay_ms", 200)
	v.SetDefault("broadcast.sequential_delay_ms", 1000)
	v.SetDefault("broadcast.default_blast_radius", 100)
	v.SetDefault("broadcast.filter_by_category", false)
	v.SetDefault("broadcast.max_message_length", 4096)
	v.SetDefault("dispatcher.workers", 2)
	v.SetDefault("dispatcher.queue_size", 64)
	v.SetDefault("scheduler.interval_seconds", 60)
	v.SetDefault("scheduler.batch_size", 10)
	v.SetDefault("reconcile.schedule", "@every 10m")
	v.SetDefault("reconcile.stale_after_minutes", 30)
	v.SetDefault("cache.authority_ttl_seconds", 300)
	v.SetDefault("cache.delivery_ttl_hours", 24)
	v.SetDefault("middleware.rate_limit", 100)
	v.SetDefault("middleware.rate_limit_burst", 1000)
	v.SetDefault("middleware.enable_cors", true)
	v.SetDefault("middleware.allowed_origins", []string{"*"})
	v.SetDefault("middleware.request_timeout", 30)
}

// LoadConfig reads the YAML file at configPath. Values from a .env file in the
// working directory and from the environment (WHATSAPP_TOKEN for
// whatsapp.token, and so on) override the file.
func LoadConfig(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks values that would otherwise break the broadcast engine at
// runtime. Provider credentials are not checked here: their absence is a
// pre-flight error reported per broadcast.
func (c *Config) Validate() error {
	if c.Broadcast.BatchSize <= 0 {
		return fmt.Errorf("invalid config: broadcast.batch_size must be > 0")
	}
	if c.Broadcast.BatchThreshold <= 0 {
		return fmt.Errorf("invalid config: broadcast.batch_threshold must be > 0")
	}
	if c.Broadcast.MaxMessageLength <= 0 {
		return fmt.Errorf("invalid config: broadcast.max_message_length must be > 0")
	}
	if c.WhatsApp.MaxAttempts <= 0 {
		return fmt.Errorf("invalid config: whatsapp.max_attempts must be > 0")
	}
	if c.Scheduler.IntervalSeconds <= 1 {
		return fmt.Errorf("invalid config: scheduler.interval_seconds must be > 1")
	}
	return nil
}

// GetDSN returns PostgreSQL connection string.
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// GetURL returns the PostgreSQL connection URL used by golang-migrate.
func (d *DatabaseConfig) GetURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode)
}

func (w *WhatsAppConfig) BackoffBase() time.Duration {
	return time.Duration(w.BackoffBaseMs) * time.Millisecond
}

func (w *WhatsAppConfig) BackoffJitter() time.Duration {
	return time.Duration(w.BackoffJitterMs) * time.Millisecond
}

func (b *BroadcastConfig) BatchDelay() time.Duration {
	return time.Duration(b.BatchDelayMs) * time.Millisecond
}

func (b *BroadcastConfig) SequentialDelay() time.Duration {
	return time.Duration(b.SequentialDelayMs) * time.Millisecond
}

func (c *CacheConfig) AuthorityTTL() time.Duration {
	return time.Duration(c.AuthorityTTLSeconds) * time.Second
}

func (c *CacheConfig) DeliveryTTL() time.Duration {
	return time.Duration(c.DeliveryTTLHours) * time.Hour
}
