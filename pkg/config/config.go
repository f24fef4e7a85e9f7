package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreJSON     = "json"
	StorePostgres = "postgres"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	RateLimit RateLimitConfig
	Store     StoreConfig
	Breaker   BreakerConfig
	Database  DatabaseConfig
	Recommend RecommendConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
	LogLevel    string
}

type ServerConfig struct {
	Port           string
	PublicDir      string
	RequestTimeout time.Duration
}

// RateLimitConfig limits requests per client; RPS 0 disables the limiter.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type BreakerConfig struct {
	Enabled             bool
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
}

type StoreConfig struct {
	Driver  string
	DataDir string
}

type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

type RecommendConfig struct {
	DefaultTop int
}

// DSN is the PostgreSQL connection string for the configured database.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	defaultTop, err := strconv.Atoi(getEnv("RECOMMEND_DEFAULT_TOP", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECOMMEND_DEFAULT_TOP: %w", err)
	}

	autoMigrate, err := strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_AUTO_MIGRATE: %w", err)
	}

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}

	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}

	breakerEnabled, err := strconv.ParseBool(getEnv("STORE_BREAKER_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_BREAKER_ENABLED: %w", err)
	}

	breakerFailures, err := strconv.ParseUint(getEnv("STORE_BREAKER_FAILURES", "5"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_BREAKER_FAILURES: %w", err)
	}

	breakerTimeout, err := time.ParseDuration(getEnv("STORE_BREAKER_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_BREAKER_TIMEOUT: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Product Recommendation API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", ""),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			PublicDir:      getEnv("PUBLIC_DIR", "public"),
			RequestTimeout: timeout,
		},
		RateLimit: RateLimitConfig{
			RPS:   rps,
			Burst: burst,
		},
		Breaker: BreakerConfig{
			Enabled:             breakerEnabled,
			ConsecutiveFailures: uint32(breakerFailures),
			OpenTimeout:         breakerTimeout,
		},
		Store: StoreConfig{
			Driver:  getEnv("STORE_DRIVER", StoreJSON),
			DataDir: getEnv("DATA_DIR", "data"),
		},
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", ""),
			Name:        getEnv("DB_NAME", "product_reco"),
			SSLMode:     getEnv("DB_SSL_MODE", "disable"),
			AutoMigrate: autoMigrate,
		},
		Recommend: RecommendConfig{
			DefaultTop: defaultTop,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreJSON:
		if c.Store.DataDir == "" {
			return errors.New("missing data dir")
		}
	case StorePostgres:
		if c.Database.Password == "" {
			return errors.New("missing database password")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	if c.Server.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}

	if c.RateLimit.RPS < 0 {
		return errors.New("rate limit must not be negative")
	}

	if c.Recommend.DefaultTop <= 0 {
		return errors.New("default top must be positive")
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
