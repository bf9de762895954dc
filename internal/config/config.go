package config

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	APIKey   string         `json:"api_key,omitempty"`
	Geo      GeoConfig      `json:"geo"`
	Sync     SyncConfig     `json:"sync"`
	Dispatch DispatchConfig `json:"dispatch"`
	Advisory AdvisoryConfig `json:"advisory"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

// GeoConfig bounds the proximity queries behind nearby search and dispatch.
type GeoConfig struct {
	RadiusMeters    float64       `json:"radius_meters"`
	Limit           int           `json:"limit"`
	StalenessWindow time.Duration `json:"staleness_window"`
}

// SyncConfig picks the live-sync transport. Mode "memory" keeps the hub in
// process, "redis" fans events out over Pub/Sub so several instances share
// one stream, "poll" disables push entirely and clients poll snapshots.
type SyncConfig struct {
	Mode         string        `json:"mode"`
	PollInterval time.Duration `json:"poll_interval"`
	SnapshotTTL  time.Duration `json:"snapshot_ttl"`
}

type DispatchConfig struct {
	Workers int `json:"workers"`
}

type AdvisoryConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
}

func Load(ctx context.Context) (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "cookie_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		APIKey: getEnv("API_KEY", "super-secret-key"),
		Geo: GeoConfig{
			RadiusMeters:    float64(getEnvInt("GEO_RADIUS_METERS", 10_000)),
			Limit:           getEnvInt("GEO_LIMIT", 20),
			StalenessWindow: getEnvDuration("GEO_STALENESS_WINDOW", 60*time.Second),
		},
		Sync: SyncConfig{
			Mode:         getEnv("SYNC_MODE", "memory"),
			PollInterval: getEnvDuration("SYNC_POLL_INTERVAL", 2*time.Second),
			SnapshotTTL:  getEnvDuration("SYNC_SNAPSHOT_TTL", 30*time.Second),
		},
		Dispatch: DispatchConfig{
			Workers: getEnvInt("DISPATCH_WORKERS", 4),
		},
		Advisory: AdvisoryConfig{
			URL:      getEnv("ADVISORY_URL", ""),
			Disabled: getEnvBool("ADVISORY_DISABLED", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.String("sync_mode", cfg.Sync.Mode))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	switch c.Sync.Mode {
	case "memory", "redis", "poll":
	default:
		return errors.New("SYNC_MODE must be one of memory, redis, poll")
	}

	if c.Geo.RadiusMeters <= 0 {
		return errors.New("GEO_RADIUS_METERS must be positive")
	}
	if c.Geo.Limit <= 0 {
		return errors.New("GEO_LIMIT must be positive")
	}
	if c.Geo.StalenessWindow <= 0 {
		return errors.New("GEO_STALENESS_WINDOW must be positive")
	}

	if c.Dispatch.Workers <= 0 {
		return errors.New("DISPATCH_WORKERS must be positive")
	}

	if !c.Advisory.Disabled && c.Advisory.URL == "" {
		log.Println("WARN: ADVISORY_URL empty, advisory scoring disabled")
		c.Advisory.Disabled = true
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
