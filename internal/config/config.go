package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string        `mapstructure:"env"`              // current application environment (local, dev, production etc)
	TelegramAPIToken string        `mapstructure:"-"`                // Telegram API token loaded from environment
	StatementsPath   string        `mapstructure:"statements_path"`  // optional JSON bank overriding the embedded one
	ShareURL         string        `mapstructure:"share_url"`        // link appended to the share text
	TransitionDelay  time.Duration `mapstructure:"transition_delay"` // pause between "Next" and the next statement
	HTTP             HTTP          `mapstructure:"http"`             // share API configuration section
	DB               DB            `mapstructure:"database"`         // database configuration section
	Analytics        Analytics     `mapstructure:"analytics"`        // analytics sink configuration section
	Story            Story         `mapstructure:"story"`            // story image configuration section
}

// HTTP contains share API parameters.
type HTTP struct {
	Addr string `mapstructure:"addr"` // listen address, empty disables the server
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Analytics configures the buffered event sink and its retention job.
type Analytics struct {
	BufferSize        int           `mapstructure:"buffer_size"`        // events queued before new ones are dropped
	BatchSize         int           `mapstructure:"batch_size"`         // events written per insert batch
	FlushInterval     time.Duration `mapstructure:"flush_interval"`     // maximum time an event waits in the buffer
	Retention         time.Duration `mapstructure:"retention"`          // age after which events are purged
	RetentionSchedule string        `mapstructure:"retention_schedule"` // cron expression for the purge job
}

// Story holds asset locations for the shareable story image.
type Story struct {
	MDNLogoPath     string `mapstructure:"mdn_logo_path"`
	MozFestLogoPath string `mapstructure:"mozfest_logo_path"`
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from .env, config files and environment variables.
func Load() (*Config, error) {
	// A missing .env file is fine, real environments set variables directly.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("statements_path", "")
	v.SetDefault("share_url", "")
	v.SetDefault("transition_delay", "300ms")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("analytics.buffer_size", 1024)
	v.SetDefault("analytics.batch_size", 50)
	v.SetDefault("analytics.flush_interval", "5s")
	v.SetDefault("analytics.retention", "2160h")
	v.SetDefault("analytics.retention_schedule", "@daily")
	v.SetDefault("story.mdn_logo_path", "assets/images/mdn-logo.png")
	v.SetDefault("story.mozfest_logo_path", "assets/images/mozfest-logo.png")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("share_url", "SHARE_URL")
	_ = v.BindEnv("http.addr", "HTTP_ADDR")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.DB.URL = v.GetString("database_url")
	if cfg.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	return &cfg, nil
}
