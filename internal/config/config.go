package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Content  ContentConfig  `mapstructure:"content"`
	Site     SiteConfig     `mapstructure:"site"`
	Mail     MailConfig     `mapstructure:"mail"`
	Database DatabaseConfig `mapstructure:"database"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// ContentConfig holds the content-store connection details. The
// client is constructed from this struct at startup; nothing in the
// content package reads the environment on its own.
type ContentConfig struct {
	Endpoint   string `mapstructure:"endpoint"`
	Dataset    string `mapstructure:"dataset"`
	APIVersion string `mapstructure:"api_version"`
	AuthToken  string `mapstructure:"auth_token"`
	Timeout    int    `mapstructure:"timeout"`
}

// SiteConfig holds site-wide rendering settings
type SiteConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	DefaultOGImage string `mapstructure:"default_og_image"`

	// FollowPolicy selects where a page-level noFollow is enforced:
	// "page" gates the robots meta tag, "link" defers to per-link
	// rel="nofollow" handling and always emits follow at page level.
	FollowPolicy string `mapstructure:"follow_policy"`
}

// MailConfig holds the outbound notification settings
type MailConfig struct {
	APIURL      string `mapstructure:"api_url"`
	APIKey      string `mapstructure:"api_key"`
	FromEmail   string `mapstructure:"from_email"`
	NotifyEmail string `mapstructure:"notify_email"`
}

// DatabaseConfig holds the submission journal settings
type DatabaseConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver string `mapstructure:"driver"`
	// Path is the SQLite file location.
	Path string `mapstructure:"path"`
	// URL is the PostgreSQL connection string.
	URL string `mapstructure:"url"`
}

// Load loads configuration from YAML file with environment variable overrides
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults plus environment
		// variables cover local runs.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)

	viper.SetDefault("content.endpoint", "https://8udeaunz.api.sanity.io")
	viper.SetDefault("content.dataset", "production")
	viper.SetDefault("content.api_version", "2023-12-01")
	viper.SetDefault("content.auth_token", "")
	viper.SetDefault("content.timeout", 15)

	viper.SetDefault("site.base_url", "https://cie-igcse-notes.vercel.app")
	viper.SetDefault("site.default_og_image", "/images/default-og-image.jpg")
	viper.SetDefault("site.follow_policy", "page")

	viper.SetDefault("mail.api_url", "https://api.resend.com")
	viper.SetDefault("mail.api_key", "")
	viper.SetDefault("mail.from_email", "notifications@cie-igcse-notes.vercel.app")
	viper.SetDefault("mail.notify_email", "")

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "./submissions.db")
	viper.SetDefault("database.url", "")
}
