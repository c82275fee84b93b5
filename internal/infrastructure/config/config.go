package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const AppName = "geoloc"

// Version is overridden at build time with -ldflags "-X".
var Version = "0.3.0"

type Config struct {
	Nominatim NominatimConfig
	Server    ServerConfig
	Redis     RedisConfig
	Log       LogConfig
	RateLimit RateLimitConfig
}

type NominatimConfig struct {
	BaseURL   string        `envconfig:"NOMINATIM_URL" default:"https://nominatim.openstreetmap.org"`
	UserAgent string        `envconfig:"NOMINATIM_USER_AGENT"`
	Timeout   time.Duration `envconfig:"NOMINATIM_TIMEOUT" default:"10s"`
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	MetricsEnabled  bool          `envconfig:"METRICS_ENABLED" default:"true"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"warn"`
	Format string `envconfig:"LOG_FORMAT" default:"console"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	// Timeout bounds dialing and every command of the rate limiter.
	Timeout time.Duration `envconfig:"REDIS_TIMEOUT" default:"2s"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RateLimitConfig struct {
	Enabled        bool `envconfig:"RATE_LIMIT_ENABLED" default:"false"`
	RequestsPerMin int  `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"60"`
}

func DefaultUserAgent() string {
	return fmt.Sprintf("%s v%s", AppName, Version)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cfg.Nominatim.UserAgent == "" {
		cfg.Nominatim.UserAgent = DefaultUserAgent()
	}

	return &cfg, nil
}
