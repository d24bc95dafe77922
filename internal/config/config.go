package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Spigel00/work-force-matchup/internal/session"
)

// Storage drivers.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Notification drivers.
const (
	NotifyLog   = "log"
	NotifyRedis = "redis"
	NotifyNATS  = "nats"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port             string
	StorageDriver    string
	DatabaseURL      string
	RedisURL         string
	StorageNamespace string
	JWTSecret        string
	JWTIssuer        string
	JWTTTL           time.Duration
	CORSOrigins      []string
	ProfilePolicy    session.ProfilePolicy
	NotifyDrivers    []string
	NotifyChannel    string
	NATSURL          string
	BackupSchedule   string
	BackupDir        string
	LogLevel         slog.Level
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		Port:             fallback(os.Getenv("PORT"), "8080"),
		StorageDriver:    strings.ToLower(fallback(os.Getenv("STORAGE_DRIVER"), StorageMemory)),
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisURL:         strings.TrimSpace(os.Getenv("REDIS_URL")),
		StorageNamespace: fallback(os.Getenv("STORAGE_NAMESPACE"), "workforce"),
		JWTSecret:        strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer:        fallback(os.Getenv("JWT_ISSUER"), "work-force-matchup"),
		CORSOrigins:      parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		NotifyDrivers:    parseCSV(fallback(os.Getenv("NOTIFY_DRIVERS"), NotifyLog)),
		NotifyChannel:    fallback(os.Getenv("NOTIFY_CHANNEL"), "workforce.notifications"),
		NATSURL:          fallback(os.Getenv("NATS_URL"), "nats://127.0.0.1:4222"),
		BackupSchedule:   strings.TrimSpace(os.Getenv("BACKUP_SCHEDULE")),
		BackupDir:        fallback(os.Getenv("BACKUP_DIR"), "backups"),
	}

	minutes := fallback(os.Getenv("JWT_TTL_MINUTES"), "60")
	if ttlMinutes, err := strconv.Atoi(minutes); err == nil && ttlMinutes > 0 {
		cfg.JWTTTL = time.Duration(ttlMinutes) * time.Minute
	} else {
		cfg.JWTTTL = 60 * time.Minute
	}

	policy, err := session.ParseProfilePolicy(fallback(os.Getenv("PROFILE_ON_REGISTER"), string(session.ProfileNone)))
	if err != nil {
		return Config{}, fmt.Errorf("PROFILE_ON_REGISTER: %w", err)
	}
	cfg.ProfilePolicy = policy

	if err := cfg.LogLevel.UnmarshalText([]byte(fallback(os.Getenv("LOG_LEVEL"), "info"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	switch cfg.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("DATABASE_URL is required for the postgres storage driver")
		}
	case StorageRedis:
		if cfg.RedisURL == "" {
			return Config{}, errors.New("REDIS_URL is required for the redis storage driver")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	for i, d := range cfg.NotifyDrivers {
		d = strings.ToLower(d)
		cfg.NotifyDrivers[i] = d
		switch d {
		case NotifyLog, NotifyNATS:
		case NotifyRedis:
			if cfg.RedisURL == "" {
				return Config{}, errors.New("REDIS_URL is required for the redis notify driver")
			}
		default:
			return Config{}, fmt.Errorf("unknown notify driver %q", d)
		}
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// NeedsRedis reports whether any component uses REDIS_URL.
func (c Config) NeedsRedis() bool {
	if c.StorageDriver == StorageRedis {
		return true
	}
	for _, d := range c.NotifyDrivers {
		if d == NotifyRedis {
			return true
		}
	}
	return false
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
