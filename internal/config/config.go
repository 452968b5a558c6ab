package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Postgres   PostgresConfig   `validate:"required"`
	Auth       AuthConfig       `validate:"required"`
	S3         S3Config         `mapstructure:"s3"`
	Sentry     SentryConfig     `mapstructure:"sentry"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Tenancy    TenancyConfig    `mapstructure:"tenancy"`
	Sequence   SequenceConfig   `mapstructure:"sequence" validate:"required"`
}

type DeploymentConfig struct {
	Mode types.RunMode `mapstructure:"mode" validate:"required"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
	// LoginRatePerMinute caps login attempts per client ip, zero disables the limit
	LoginRatePerMinute int `mapstructure:"login_rate_per_minute" validate:"gte=0"`
	LoginBurst         int `mapstructure:"login_burst" validate:"gte=0"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" validate:"required"`
}

type PostgresConfig struct {
	Host                   string        `mapstructure:"host" validate:"required"`
	Port                   int           `mapstructure:"port" validate:"required"`
	User                   string        `mapstructure:"user" validate:"required"`
	Password               string        `mapstructure:"password"`
	DBName                 string        `mapstructure:"dbname" validate:"required"`
	SSLMode                string        `mapstructure:"sslmode" validate:"required"`
	MaxOpenConns           int           `mapstructure:"max_open_conns"`
	MaxIdleConns           int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMinutes int           `mapstructure:"conn_max_lifetime_minutes"`
	RetryAttempts          int           `mapstructure:"retry_attempts"`
	RetryInterval          time.Duration `mapstructure:"retry_interval"`
}

type AuthConfig struct {
	Provider types.AuthProvider `mapstructure:"provider" validate:"required"`
	Secret   string             `mapstructure:"secret" validate:"required"`
	Supabase SupabaseConfig     `mapstructure:"supabase"`
}

type SupabaseConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	ServiceKey string `mapstructure:"service_key"`
}

type S3Config struct {
	Enabled       bool          `mapstructure:"enabled"`
	Region        string        `mapstructure:"region"`
	Bucket        string        `mapstructure:"bucket"`
	KeyPrefix     string        `mapstructure:"key_prefix"`
	PresignExpiry time.Duration `mapstructure:"presign_expiry"`
}

type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// TenancyConfig controls what happens when an authenticated user has no municipality
type TenancyConfig struct {
	AutoCreateDefault bool   `mapstructure:"auto_create_default"`
	DefaultName       string `mapstructure:"default_name"`
}

type SequenceConfig struct {
	Mode types.SequenceMode `mapstructure:"mode" validate:"required,oneof=atomic count"`
}

func NewConfig() (*Configuration, error) {
	// .env is optional, real environment variables win
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/sglc")

	v.SetEnvPrefix("SGLC")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading config file: %v\n", err)
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", types.ModeLocal)
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.login_rate_per_minute", 10)
	v.SetDefault("server.login_burst", 5)
	v.SetDefault("logging.level", types.LogLevelInfo)
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_open_conns", 10)
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("postgres.conn_max_lifetime_minutes", 60)
	v.SetDefault("postgres.retry_attempts", 3)
	v.SetDefault("postgres.retry_interval", "200ms")
	v.SetDefault("auth.provider", types.AuthProviderSupabase)
	v.SetDefault("s3.presign_expiry", "15m")
	v.SetDefault("sentry.sample_rate", 1.0)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("tenancy.default_name", types.DefaultTenantNameFallback)
	v.SetDefault("sequence.mode", types.SequenceModeAtomic)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Auth.Provider == types.AuthProviderSupabase && c.Auth.Supabase.BaseURL == "" {
		return errors.New("auth.supabase.base_url is required when auth.provider is supabase")
	}
	if c.S3.Enabled && c.S3.Bucket == "" {
		return errors.New("s3.bucket is required when s3 is enabled")
	}
	return nil
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts or other non-web applications
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Postgres:   PostgresConfig{RetryAttempts: 3, RetryInterval: 10 * time.Millisecond},
		Cache:      CacheConfig{Enabled: true},
		Tenancy:    TenancyConfig{DefaultName: types.DefaultTenantNameFallback},
		Sequence:   SequenceConfig{Mode: types.SequenceModeAtomic},
	}
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}
