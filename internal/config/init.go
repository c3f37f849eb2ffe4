package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config تنظیمات برنامه که از .env و متغیرهای محیطی خوانده می‌شود
type Config struct {
	Env           string        `mapstructure:"APP_ENV"`
	Port          string        `mapstructure:"APP_PORT"`
	DBDSN         string        `mapstructure:"DB_DSN"`
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	PostsPerPage  int           `mapstructure:"POSTS_PER_PAGE"`
	IndexCacheTTL time.Duration `mapstructure:"INDEX_CACHE_TTL"`
	MediaBackend  string        `mapstructure:"MEDIA_BACKEND"`
	MediaRoot     string        `mapstructure:"MEDIA_ROOT"`
	MediaURL      string        `mapstructure:"MEDIA_URL"`
	AWSRegion     string        `mapstructure:"AWS_REGION"`
	AWSBucket     string        `mapstructure:"AWS_BUCKET_NAME"`
	AWSAccessKey  string        `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretKey  string        `mapstructure:"AWS_SECRET_ACCESS_KEY"`
}

var keys = []string{
	"APP_ENV", "APP_PORT", "DB_DSN", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"JWT_SECRET", "POSTS_PER_PAGE", "INDEX_CACHE_TTL", "MEDIA_BACKEND", "MEDIA_ROOT",
	"MEDIA_URL", "AWS_REGION", "AWS_BUCKET_NAME", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	// بارگذاری .env
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("POSTS_PER_PAGE", 10)
	v.SetDefault("INDEX_CACHE_TTL", "20s")
	v.SetDefault("MEDIA_BACKEND", "local")
	v.SetDefault("MEDIA_ROOT", "media")
	v.SetDefault("MEDIA_URL", "/media/")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.MediaBackend = strings.ToLower(strings.TrimSpace(cfg.MediaBackend))
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks required keys and value ranges.
func (c *Config) Validate() error {
	if c.DBDSN == "" {
		return errors.New("DB_DSN is not set")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if c.PostsPerPage <= 0 {
		return errors.New("POSTS_PER_PAGE must be positive")
	}
	if c.IndexCacheTTL < 0 {
		return errors.New("INDEX_CACHE_TTL must not be negative")
	}
	switch c.MediaBackend {
	case "local":
	case "s3":
		if c.AWSBucket == "" || c.AWSRegion == "" {
			return errors.New("AWS_BUCKET_NAME and AWS_REGION are required for the s3 media backend")
		}
	default:
		return fmt.Errorf("unknown MEDIA_BACKEND %q", c.MediaBackend)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
