package config

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Store drivers
const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

// Cache drivers
const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
	CacheDriverNone   = "none"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Storage  StorageConfig
	Analysis AnalysisConfig
	Demo     DemoConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	// BodyLimit caps request bodies, uploads included (echo size syntax)
	BodyLimit string `envconfig:"BODY_LIMIT" default:"32M"`
}

// StoreConfig selects the storage backend
type StoreConfig struct {
	Driver       string `envconfig:"STORE_DRIVER" default:"memory"`
	SeedDemoData bool   `envconfig:"SEED_DEMO_DATA" default:"true"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"meeting_insights"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns int    `envconfig:"DB_MIN_CONNS" default:"5"`
	// AutoMigrate applies embedded migrations at startup; refused in production
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// CacheConfig configures the meeting projection cache
type CacheConfig struct {
	Driver string        `envconfig:"CACHE_DRIVER" default:"memory"`
	TTL    time.Duration `envconfig:"CACHE_TTL" default:"5m"`
}

// StorageConfig holds object storage configuration
type StorageConfig struct {
	Enabled         bool          `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string        `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string        `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string        `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string        `envconfig:"STORAGE_BUCKET" default:"meeting-insights"`
	UseSSL          bool          `envconfig:"STORAGE_USE_SSL" default:"false"`
	URLExpiry       time.Duration `envconfig:"STORAGE_URL_EXPIRY" default:"24h"`
}

// AnalysisConfig configures transcript analysis
type AnalysisConfig struct {
	// DueDateSeed seeds generated due dates; 0 seeds from the clock
	DueDateSeed     int64  `envconfig:"ANALYSIS_DUE_DATE_SEED" default:"0"`
	DefaultDuration string `envconfig:"ANALYSIS_DEFAULT_DURATION" default:"25 minutes"`
}

// DemoConfig identifies the single demo user the API acts for
type DemoConfig struct {
	UserID int `envconfig:"DEMO_USER_ID" default:"1"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	sections := []interface{}{
		&config.Server,
		&config.Store,
		&config.Database,
		&config.Redis,
		&config.Cache,
		&config.Storage,
		&config.Analysis,
		&config.Demo,
	}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to process environment variables: %w", err)
		}
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Server.Port)
	}
	switch c.Store.Driver {
	case StoreDriverMemory, StoreDriverPostgres:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.Store.Driver)
	}
	switch c.Cache.Driver {
	case CacheDriverMemory, CacheDriverRedis, CacheDriverNone:
	default:
		return fmt.Errorf("unsupported CACHE_DRIVER: %s", c.Cache.Driver)
	}
	// Memory store ids restart at 1 on every boot while Redis entries outlive the process
	if c.Cache.Driver == CacheDriverRedis && c.Store.Driver != StoreDriverPostgres {
		return fmt.Errorf("CACHE_DRIVER=redis requires STORE_DRIVER=postgres, got %s", c.Store.Driver)
	}
	if c.Demo.UserID <= 0 {
		return fmt.Errorf("DEMO_USER_ID must be positive")
	}
	return nil
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
