package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Import   ImportConfig
	Features FeatureConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	CORSOrigins  string
	BodyLimitMB  int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	StatsCacheTTL      time.Duration
	TypePointsCacheTTL time.Duration
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// ImportConfig - настройки загрузки CSV
type ImportConfig struct {
	// Strict отклоняет всю загрузку, если хотя бы одно значение не удалось разобрать.
	// По умолчанию такие значения приводятся к нулю и попадают в список issues.
	Strict bool
}

// FeatureConfig - опциональные возможности
type FeatureConfig struct {
	CustomerStationLinks bool
	EventsStream         string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	ConsumerName      string
	StreamReadTimeout time.Duration
}

func setDefaults() {
	viper.SetDefault("API_HOST", "0.0.0.0")
	viper.SetDefault("API_PORT", 8080)
	viper.SetDefault("API_ENV", "development")
	viper.SetDefault("API_CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("API_BODY_LIMIT_MB", 16)
	viper.SetDefault("API_READ_TIMEOUT", 10)
	viper.SetDefault("API_WRITE_TIMEOUT", 10)

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_NAME", "fleet")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	viper.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", 6379)
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("STATS_CACHE_TTL", 3600)
	viper.SetDefault("TYPE_POINTS_CACHE_TTL", 600)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_MAX_SIZE_MB", 10)
	viper.SetDefault("LOG_MAX_BACKUPS", 7)
	viper.SetDefault("LOG_MAX_AGE_DAYS", 7)

	viper.SetDefault("IMPORT_STRICT", false)
	viper.SetDefault("CUSTOMER_STATION_LINKS_ENABLED", false)
	viper.SetDefault("EVENTS_STREAM", "stream:fleet:events")

	viper.SetDefault("WORKER_ENABLED", true)
	viper.SetDefault("WORKER_CONSUMER_GROUP", "fleet-stats-workers")
	viper.SetDefault("WORKER_CONSUMER_NAME", "stats-worker-1")
	viper.SetDefault("WORKER_STREAM_READ_TIMEOUT", 5000)
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	setDefaults()
	viper.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host:         viper.GetString("API_HOST"),
			Port:         viper.GetInt("API_PORT"),
			Env:          viper.GetString("API_ENV"),
			CORSOrigins:  viper.GetString("API_CORS_ORIGINS"),
			BodyLimitMB:  viper.GetInt("API_BODY_LIMIT_MB"),
			ReadTimeout:  time.Duration(viper.GetInt("API_READ_TIMEOUT")) * time.Second,
			WriteTimeout: time.Duration(viper.GetInt("API_WRITE_TIMEOUT")) * time.Second,
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			StatsCacheTTL:      time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
			TypePointsCacheTTL: time.Duration(viper.GetInt("TYPE_POINTS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level:      viper.GetString("LOG_LEVEL"),
			File:       viper.GetString("LOG_FILE"),
			MaxSizeMB:  viper.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: viper.GetInt("LOG_MAX_BACKUPS"),
			MaxAgeDays: viper.GetInt("LOG_MAX_AGE_DAYS"),
		},
		Import: ImportConfig{
			Strict: viper.GetBool("IMPORT_STRICT"),
		},
		Features: FeatureConfig{
			CustomerStationLinks: viper.GetBool("CUSTOMER_STATION_LINKS_ENABLED"),
			EventsStream:         viper.GetString("EVENTS_STREAM"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			ConsumerName:      viper.GetString("WORKER_CONSUMER_NAME"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
		},
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid API_PORT: %d", cfg.Server.Port)
	}
	cfg.Server.CORSOrigins = normalizeOrigins(cfg.Server.CORSOrigins)

	return cfg, nil
}

func normalizeOrigins(s string) string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return strings.Join(result, ",")
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
