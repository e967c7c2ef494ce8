package config

import (
	"fmt"
	"strings"
	"time"

	"invite_studio/internal/domain"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`
	Port   string `envconfig:"PORT" default:"8080"`

	AuthJWTSecret      string   `envconfig:"AUTH_JWT_SECRET"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	DBDriver string `envconfig:"DB_DRIVER" default:"sqlite"`
	DBDSN    string `envconfig:"DB_DSN" default:"file:invite_studio.db?_pragma=busy_timeout(5000)"`

	Storage  StorageConfig
	Payments PaymentConfig

	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`
	PaymentOrdersTable string `envconfig:"PAYMENT_ORDERS_TABLE" default:"payment_orders"`

	RedisURL            string        `envconfig:"REDIS_URL"`
	OrphanMaxAge        time.Duration `envconfig:"ORPHAN_MAX_AGE" default:"24h"`
	OrphanSweepInterval time.Duration `envconfig:"ORPHAN_SWEEP_INTERVAL" default:"1h"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// StorageConfig configures the S3 bucket used for user uploads and generated
// assets.
type StorageConfig struct {
	Region          string   `envconfig:"AWS_REGION" default:"ap-south-1"`
	AccessKeyID     string   `envconfig:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string   `envconfig:"AWS_SECRET_ACCESS_KEY"`
	Bucket          string   `envconfig:"S3_BUCKET"`
	Endpoint        string   `envconfig:"S3_ENDPOINT"`
	PublicBaseURL   string   `envconfig:"STORAGE_PUBLIC_BASE_URL"`
	AllowedFolders  []string `envconfig:"STORAGE_ALLOWED_FOLDERS" default:"upload/music,upload/images,upload/videos,generated/previews"`
}

func (c StorageConfig) Configured() bool {
	return strings.TrimSpace(c.Bucket) != "" &&
		strings.TrimSpace(c.AccessKeyID) != "" &&
		strings.TrimSpace(c.SecretAccessKey) != ""
}

// PaymentConfig configures the Razorpay gateway. Mock is an explicit opt-in
// and is refused in production.
type PaymentConfig struct {
	KeyID         string `envconfig:"RAZORPAY_KEY_ID"`
	KeySecret     string `envconfig:"RAZORPAY_KEY_SECRET"`
	WebhookSecret string `envconfig:"RAZORPAY_WEBHOOK_SECRET"`
	Mock          bool   `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// Validate enforces the production fail-fast rules. Development keeps running
// with missing pieces and fails at first use instead.
func (c *Config) Validate() error {
	switch c.AppEnv {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("%w: APP_ENV must be %q or %q, got %q", domain.ErrConfiguration, EnvDevelopment, EnvProduction, c.AppEnv)
	}
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("%w: unsupported DB_DRIVER %q", domain.ErrConfiguration, c.DBDriver)
	}
	if !c.IsProduction() {
		return nil
	}
	if strings.TrimSpace(c.AuthJWTSecret) == "" {
		return fmt.Errorf("%w: AUTH_JWT_SECRET is required in production", domain.ErrConfiguration)
	}
	if !c.Storage.Configured() {
		return fmt.Errorf("%w: S3_BUCKET and AWS credentials are required in production", domain.ErrConfiguration)
	}
	if c.Payments.Mock {
		return fmt.Errorf("%w: PAYMENT_GATEWAY_MOCK cannot be enabled in production", domain.ErrConfiguration)
	}
	return nil
}
