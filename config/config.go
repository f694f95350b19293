package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig
	Logger      LoggerConfig

	// ERP API - Request core
	API APIConfig

	// Session - Login state between runs
	Session SessionConfig

	// Redis - Session and profile cache backend (optional)
	Redis RedisConfig

	// Cache - Profile snapshot
	Cache CacheConfig

	// Locale - Failure toasts and prompts
	Locale LocaleConfig

	// MockERP - Local fake server for development
	MockERP MockERPConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// APIConfig is the configuration for the request core.
type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
	UserAgent string
}

// SessionConfig selects where the session lives between runs.
type SessionConfig struct {
	Backend   string
	FilePath  string
	Secret    string
	KeyPrefix string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CacheConfig configures the profile snapshot cache.
type CacheConfig struct {
	Backend    string
	ProfileTTL time.Duration
}

// LocaleConfig is the configuration for user-facing messages.
type LocaleConfig struct {
	Lang string
}

// MockERPConfig is the configuration for the fake ERP server.
type MockERPConfig struct {
	Host      string
	Port      int
	Mode      string
	JWTSecret string
	TokenTTL  time.Duration
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("orderdesk-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".orderdesk"))
	}

	// Enable environment variable override
	viper.SetEnvPrefix("ORDERDESK")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Logger
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// ERP API
	cfg.API.BaseURL = strings.TrimRight(viper.GetString("api.base_url"), "/")
	cfg.API.Timeout = viper.GetDuration("api.timeout")
	cfg.API.Retries = viper.GetInt("api.retries")
	cfg.API.RetryWait = viper.GetDuration("api.retry_wait")
	cfg.API.UserAgent = viper.GetString("api.user_agent")

	// Session
	cfg.Session.Backend = viper.GetString("session.backend")
	cfg.Session.FilePath = expandHome(viper.GetString("session.file_path"))
	cfg.Session.Secret = viper.GetString("session.secret")
	if cfg.Session.Secret == "" {
		cfg.Session.Secret = machineSecret()
	}
	cfg.Session.KeyPrefix = viper.GetString("session.key_prefix")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Cache
	cfg.Cache.Backend = viper.GetString("cache.backend")
	cfg.Cache.ProfileTTL = viper.GetDuration("cache.profile_ttl")

	// Locale
	cfg.Locale.Lang = viper.GetString("locale.lang")

	// MockERP
	cfg.MockERP.Host = viper.GetString("mockerp.host")
	cfg.MockERP.Port = viper.GetInt("mockerp.port")
	cfg.MockERP.Mode = viper.GetString("mockerp.mode")
	cfg.MockERP.JWTSecret = viper.GetString("mockerp.jwt_secret")
	cfg.MockERP.TokenTTL = viper.GetDuration("mockerp.token_ttl")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// Logger
	viper.SetDefault("logger.level", "warn")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. ERP API (10s per attempt, 3 retries, 1s linear backoff)
	viper.SetDefault("api.base_url", "http://localhost:8088")
	viper.SetDefault("api.timeout", 10*time.Second)
	viper.SetDefault("api.retries", 3)
	viper.SetDefault("api.retry_wait", time.Second)
	viper.SetDefault("api.user_agent", "orderdesk-cli")

	// 2. Session
	viper.SetDefault("session.backend", "file")
	viper.SetDefault("session.file_path", "~/.orderdesk/session.json.enc")
	viper.SetDefault("session.key_prefix", "orderdesk:")

	// 3. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 4. Cache
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.profile_ttl", 5*time.Minute)

	// 5. Locale
	viper.SetDefault("locale.lang", "zh")

	// 6. MockERP
	viper.SetDefault("mockerp.host", "")
	viper.SetDefault("mockerp.port", 8088)
	viper.SetDefault("mockerp.mode", "debug")
	viper.SetDefault("mockerp.token_ttl", 2*time.Hour)
}

func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if !strings.HasPrefix(cfg.API.BaseURL, "http") {
		return fmt.Errorf("api.base_url must start with http:// or https://")
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	if cfg.API.Retries < 0 {
		return fmt.Errorf("api.retries must not be negative")
	}
	if cfg.API.RetryWait < 0 {
		return fmt.Errorf("api.retry_wait must not be negative")
	}

	switch cfg.Session.Backend {
	case "memory":
	case "file":
		if cfg.Session.FilePath == "" {
			return fmt.Errorf("session.file_path is required for the file backend")
		}
		if len(cfg.Session.Secret) < 16 {
			return fmt.Errorf("session.secret must be at least 16 characters for the file backend")
		}
	case "redis":
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required for the redis session backend")
		}
	default:
		return fmt.Errorf("session.backend must be one of memory, file, redis")
	}

	switch cfg.Cache.Backend {
	case "memory", "none":
	case "redis":
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required for the redis cache backend")
		}
	default:
		return fmt.Errorf("cache.backend must be one of memory, redis, none")
	}

	return nil
}

// ValidateMockERP checks the settings only the fake server needs.
func (cfg *Config) ValidateMockERP() error {
	if cfg.MockERP.Port <= 0 {
		return fmt.Errorf("mockerp.port must be positive")
	}
	if len(cfg.MockERP.JWTSecret) < 32 {
		return fmt.Errorf("mockerp.jwt_secret must be at least 32 characters")
	}
	return nil
}

// UsesRedis reports whether any configured backend needs a Redis connection.
func (cfg *Config) UsesRedis() bool {
	return cfg.Session.Backend == "redis" || cfg.Cache.Backend == "redis"
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}

// machineSecret is the fallback key material for the file session store. It only keeps the
// file unreadable when copied to another account or host.
func machineSecret() string {
	host, _ := os.Hostname()
	home, _ := os.UserHomeDir()
	return "orderdesk:" + host + ":" + home
}
