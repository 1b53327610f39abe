package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Database DatabaseConfig
	Redis    RedisConfig
	Telegram TelegramConfig
	Session  SessionConfig
	Ops      OpsConfig
	Log      LogConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	Bootstrap    bool
	Seed         bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// TelegramConfig holds bot API credentials and polling behaviour.
type TelegramConfig struct {
	Token       string
	PollTimeout time.Duration
	RetryDelay  time.Duration
	MaxRetries  int
}

// SessionConfig selects the backend for per-chat pending-form state.
type SessionConfig struct {
	Backend string // "memory" or "redis"
}

// OpsConfig configures the side HTTP server exposing health and metrics.
type OpsConfig struct {
	Enabled bool
	Port    int
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		Bootstrap:    v.GetBool("DB_BOOTSTRAP"),
		Seed:         v.GetBool("DB_SEED"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Telegram = TelegramConfig{
		Token:       v.GetString("TELEGRAM_TOKEN"),
		PollTimeout: parseDuration(v.GetString("TELEGRAM_POLL_TIMEOUT"), 20*time.Second),
		RetryDelay:  parseDuration(v.GetString("TELEGRAM_RETRY_DELAY"), 10*time.Second),
		MaxRetries:  v.GetInt("TELEGRAM_MAX_RETRIES"),
	}

	cfg.Session = SessionConfig{
		Backend: v.GetString("SESSION_BACKEND"),
	}

	cfg.Ops = OpsConfig{
		Enabled: v.GetBool("OPS_ENABLED"),
		Port:    v.GetInt("OPS_PORT"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "college_db")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_BOOTSTRAP", true)
	v.SetDefault("DB_SEED", false)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("TELEGRAM_TOKEN", "")
	v.SetDefault("TELEGRAM_POLL_TIMEOUT", "20s")
	v.SetDefault("TELEGRAM_RETRY_DELAY", "10s")
	v.SetDefault("TELEGRAM_MAX_RETRIES", 5)

	v.SetDefault("SESSION_BACKEND", "memory")

	v.SetDefault("OPS_ENABLED", true)
	v.SetDefault("OPS_PORT", 8081)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}
