package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	Mode           string        `mapstructure:"mode"`
	BaseURL        string        `mapstructure:"base_url"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig selects the gorm dialector. Driver is one of "sqlite"
// (cgo), "sqlite-pure" (modernc) or "mysql".
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Path            string `mapstructure:"path"`
	DSN             string `mapstructure:"dsn"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// IsSQLite reports whether the configured driver is one of the embedded ones.
func (d *DatabaseConfig) IsSQLite() bool {
	return d.Driver == "" || d.Driver == "sqlite" || d.Driver == "sqlite-pure"
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type MediaConfig struct {
	DefaultRoot       string `mapstructure:"default_root"`
	MaxUploadMB       int    `mapstructure:"max_upload_mb"`
	ThumbnailsEnabled bool   `mapstructure:"thumbnails_enabled"`
	ThumbnailSize     uint   `mapstructure:"thumbnail_size"`
}

// MaxUploadBytes returns the upload limit in bytes; zero disables the limit.
func (m *MediaConfig) MaxUploadBytes() int64 {
	if m.MaxUploadMB <= 0 {
		return 0
	}
	return int64(m.MaxUploadMB) << 20
}

type SessionConfig struct {
	Expiry time.Duration `mapstructure:"expiry"`
}

type SettingsConfig struct {
	File            string `mapstructure:"file"`
	DefaultPassword string `mapstructure:"default_password"`
}

type RetentionConfig struct {
	Window          time.Duration `mapstructure:"window"`
	ScheduleEnabled bool          `mapstructure:"schedule_enabled"`
	Interval        time.Duration `mapstructure:"interval"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
}

type AuthConfig struct {
	RequireAdminToken bool      `mapstructure:"require_admin_token"`
	BcryptCost        int       `mapstructure:"bcrypt_cost"`
	JWT               JWTConfig `mapstructure:"jwt"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

type GalleryConfig struct {
	Title          string `mapstructure:"title"`
	FooterMarkdown string `mapstructure:"footer_markdown"`
}

type CacheConfig struct {
	EventsSize int           `mapstructure:"events_size"`
	EventsTTL  time.Duration `mapstructure:"events_ttl"`
}
