package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Sync     SyncConfig
	Admin    AdminConfig
	Email    EmailConfig
	SMS      SMSConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name     string
	Port     string
	Debug    bool
	LogPath  string
	Timezone string
}

type StorageConfig struct {
	Driver   string // "postgres" or "memory"
	SeedDemo bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// SyncConfig drives the periodic booking store refresh. An empty Schedule
// (STORE_SYNC_SCHEDULE=off) disables it.
type SyncConfig struct {
	Schedule string
	Timeout  time.Duration
}

type AdminConfig struct {
	KeyHash string // bcrypt hash; empty leaves admin routes open
}

type EmailConfig struct {
	SendGridAPIKey string
	From           string
	FromName       string
}

type SMSConfig struct {
	TwilioAccountSID string
	TwilioAuthToken  string
	FromNumber       string
}

type CORSConfig struct {
	AllowedOrigins []string
}

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() (*Config, error) {
	// a missing .env is fine, the environment may carry everything
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "car-rental")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "")
	v.SetDefault("APP_TIMEZONE", "UTC")
	v.SetDefault("STORAGE_DRIVER", StorageDriverMemory)
	v.SetDefault("SEED_DEMO_DATA", true)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("STORE_SYNC_SCHEDULE", "@every 1m")
	v.SetDefault("STORE_SYNC_TIMEOUT", "10s")
	v.SetDefault("SENDGRID_FROM_NAME", "Car Rental")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	config := &Config{
		App: AppConfig{
			Name:     v.GetString("APP_NAME"),
			Port:     v.GetString("PORT"),
			Debug:    v.GetBool("DEBUG"),
			LogPath:  v.GetString("LOG_PATH"),
			Timezone: v.GetString("APP_TIMEZONE"),
		},
		Storage: StorageConfig{
			Driver:   strings.ToLower(v.GetString("STORAGE_DRIVER")),
			SeedDemo: v.GetBool("SEED_DEMO_DATA"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Sync: SyncConfig{
			Schedule: v.GetString("STORE_SYNC_SCHEDULE"),
			Timeout:  v.GetDuration("STORE_SYNC_TIMEOUT"),
		},
		Admin: AdminConfig{
			KeyHash: v.GetString("ADMIN_KEY_HASH"),
		},
		Email: EmailConfig{
			SendGridAPIKey: v.GetString("SENDGRID_API_KEY"),
			From:           v.GetString("SENDGRID_FROM_EMAIL"),
			FromName:       v.GetString("SENDGRID_FROM_NAME"),
		},
		SMS: SMSConfig{
			TwilioAccountSID: v.GetString("TWILIO_ACCOUNT_SID"),
			TwilioAuthToken:  v.GetString("TWILIO_AUTH_TOKEN"),
			FromNumber:       v.GetString("TWILIO_FROM_NUMBER"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if strings.EqualFold(config.Sync.Schedule, "off") {
		config.Sync.Schedule = ""
	}
	if config.Sync.Timeout <= 0 {
		config.Sync.Timeout = 10 * time.Second
	}

	switch config.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return nil, fmt.Errorf("invalid STORAGE_DRIVER %q: must be %s or %s",
			config.Storage.Driver, StorageDriverPostgres, StorageDriverMemory)
	}

	return config, nil
}

// Location resolves the configured time zone used for calendar days and
// zone-less date-times.
func (c AppConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", c.Timezone, err)
	}
	return loc, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
