package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	BaseURL     string `mapstructure:"BASE_URL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Redis configuration; empty URL selects in-memory fallbacks
	RedisURL string `mapstructure:"REDIS_URL"`

	// Object storage configuration
	StorageTransport          string `mapstructure:"STORAGE_TRANSPORT"`
	StorageEndpoint           string `mapstructure:"STORAGE_ENDPOINT"`
	StorageRegion             string `mapstructure:"STORAGE_REGION"`
	StorageBucket             string `mapstructure:"STORAGE_BUCKET"`
	StorageAccessKey          string `mapstructure:"STORAGE_ACCESS_KEY"`
	StorageSecretKey          string `mapstructure:"STORAGE_SECRET_KEY"`
	StorageUseSSL             bool   `mapstructure:"STORAGE_USE_SSL"`
	StoragePathStyle          bool   `mapstructure:"STORAGE_PATH_STYLE"`
	StoragePresignTTLMinutes  int    `mapstructure:"STORAGE_PRESIGN_TTL_MINUTES"`
	StorageMaxUploadSizeBytes int64  `mapstructure:"STORAGE_MAX_UPLOAD_SIZE_BYTES"`

	// Email configuration; empty host disables sending
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	EmailFrom    string `mapstructure:"EMAIL_FROM"`

	// Stripe configuration
	StripeSecretKey      string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret  string `mapstructure:"STRIPE_WEBHOOK_SECRET"`
	StripePricePro       string `mapstructure:"STRIPE_PRICE_PRO"`
	StripePriceBusiness  string `mapstructure:"STRIPE_PRICE_BUSINESS"`
	StripePriceDatarooms string `mapstructure:"STRIPE_PRICE_DATAROOMS"`

	// Google OAuth configuration
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`

	// Rate limiting
	RateLimitEnabled       bool    `mapstructure:"RATE_LIMIT_ENABLED"`
	RateLimitRPS           float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst         int     `mapstructure:"RATE_LIMIT_BURST"`
	RateLimitWindowSeconds int     `mapstructure:"RATE_LIMIT_WINDOW_SECONDS"`

	// Background jobs
	JobsEnabled           bool `mapstructure:"JOBS_ENABLED"`
	JobWorkers            int  `mapstructure:"JOB_WORKERS"`
	TrashRetentionDays    int  `mapstructure:"TRASH_RETENTION_DAYS"`
	WebhookMaxRetries     int  `mapstructure:"WEBHOOK_MAX_RETRIES"`
	WebhookTimeoutSeconds int  `mapstructure:"WEBHOOK_TIMEOUT_SECONDS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// ALLOWED_ORIGINS from the environment arrives as a single comma separated value
	if len(config.AllowedOrigins) == 1 && strings.Contains(config.AllowedOrigins[0], ",") {
		config.AllowedOrigins = splitAndTrim(config.AllowedOrigins[0])
	}

	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("BASE_URL", "http://localhost:3000")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "papermark")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	viper.SetDefault("REDIS_URL", "")

	// Storage defaults
	viper.SetDefault("STORAGE_TRANSPORT", "s3")
	viper.SetDefault("STORAGE_ENDPOINT", "")
	viper.SetDefault("STORAGE_REGION", "us-east-1")
	viper.SetDefault("STORAGE_BUCKET", "papermark")
	viper.SetDefault("STORAGE_ACCESS_KEY", "")
	viper.SetDefault("STORAGE_SECRET_KEY", "")
	viper.SetDefault("STORAGE_USE_SSL", true)
	viper.SetDefault("STORAGE_PATH_STYLE", false)
	viper.SetDefault("STORAGE_PRESIGN_TTL_MINUTES", 60)
	viper.SetDefault("STORAGE_MAX_UPLOAD_SIZE_BYTES", 350*1024*1024)

	// Email defaults
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("EMAIL_FROM", "Papermark <system@papermark.io>")

	// Stripe defaults
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("STRIPE_WEBHOOK_SECRET", "")
	viper.SetDefault("STRIPE_PRICE_PRO", "")
	viper.SetDefault("STRIPE_PRICE_BUSINESS", "")
	viper.SetDefault("STRIPE_PRICE_DATAROOMS", "")

	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")

	// Rate limit defaults
	viper.SetDefault("RATE_LIMIT_ENABLED", true)
	viper.SetDefault("RATE_LIMIT_RPS", 2.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)

	// Job defaults
	viper.SetDefault("JOBS_ENABLED", true)
	viper.SetDefault("JOB_WORKERS", 3)
	viper.SetDefault("TRASH_RETENTION_DAYS", 30)
	viper.SetDefault("WEBHOOK_MAX_RETRIES", 3)
	viper.SetDefault("WEBHOOK_TIMEOUT_SECONDS", 10)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" && config.DatabaseURL == "" {
		return fmt.Errorf("database name is required")
	}

	switch config.StorageTransport {
	case "s3", "minio":
		if config.StorageBucket == "" {
			return fmt.Errorf("STORAGE_BUCKET is required for %s transport", config.StorageTransport)
		}
	default:
		return fmt.Errorf("unsupported STORAGE_TRANSPORT %q", config.StorageTransport)
	}

	if config.TrashRetentionDays <= 0 {
		return fmt.Errorf("TRASH_RETENTION_DAYS must be positive")
	}

	return nil
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// StripeEnabled reports whether billing calls can be made
func (c *Config) StripeEnabled() bool {
	return c.StripeSecretKey != ""
}

// PriceForPlan maps a plan name to its configured Stripe price id
func (c *Config) PriceForPlan(plan string) string {
	switch plan {
	case "pro":
		return c.StripePricePro
	case "business":
		return c.StripePriceBusiness
	case "datarooms":
		return c.StripePriceDatarooms
	}
	return ""
}
