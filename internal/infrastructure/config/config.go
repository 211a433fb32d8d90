package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/orris-inc/photobooth/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Media     sharedConfig.MediaConfig     `mapstructure:"media"`
	Session   sharedConfig.SessionConfig   `mapstructure:"session"`
	Settings  sharedConfig.SettingsConfig  `mapstructure:"settings"`
	Retention sharedConfig.RetentionConfig `mapstructure:"retention"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"ratelimit"`
	Gallery   sharedConfig.GalleryConfig   `mapstructure:"gallery"`
	Cache     sharedConfig.CacheConfig     `mapstructure:"cache"`
}

// DefaultJWTSecret is the placeholder admin token secret shipped in the
// defaults and the sample config.
const DefaultJWTSecret = "change-me-in-production"

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml (or the explicit file when configFile is
// set) and overlays PHOTOBOOTH_* environment variables. A missing config
// file falls back to defaults.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix("PHOTOBOOTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:8000")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173", "http://localhost:3000"})
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")

	// Database defaults
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./photobooth.db")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Media defaults
	v.SetDefault("media.default_root", "./media")
	v.SetDefault("media.max_upload_mb", 25)
	v.SetDefault("media.thumbnails_enabled", true)
	v.SetDefault("media.thumbnail_size", 400)

	v.SetDefault("session.expiry", "1h")

	v.SetDefault("settings.file", "./settings.json")
	v.SetDefault("settings.default_password", "1234")

	// Retention defaults
	v.SetDefault("retention.window", "720h")
	v.SetDefault("retention.schedule_enabled", false)
	v.SetDefault("retention.interval", "6h")

	// Auth defaults
	v.SetDefault("auth.require_admin_token", true)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.jwt.secret", DefaultJWTSecret)
	v.SetDefault("auth.jwt.expiry", "12h")

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("ratelimit.requests", 120)
	v.SetDefault("ratelimit.window", "1m")

	v.SetDefault("gallery.title", "Your Photobooth Photos")
	v.SetDefault("gallery.footer_markdown", "")

	v.SetDefault("cache.events_size", 256)
	v.SetDefault("cache.events_ttl", "10m")
}

// UsesDefaultJWTSecret reports whether admin tokens are required but signed
// with the shipped placeholder (or an empty) secret.
func (c *Config) UsesDefaultJWTSecret() bool {
	if !c.Auth.RequireAdminToken {
		return false
	}
	secret := strings.TrimSpace(c.Auth.JWT.Secret)
	return secret == "" || secret == DefaultJWTSecret
}

// ValidateServe checks settings that must not reach a release server.
func (c *Config) ValidateServe() error {
	if c.Server.Mode == "release" && c.UsesDefaultJWTSecret() {
		return errors.New("auth.jwt.secret must be changed from its default when auth.require_admin_token is enabled in release mode (set PHOTOBOOTH_AUTH_JWT_SECRET)")
	}
	return nil
}
