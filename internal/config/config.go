package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr          = ":8080"
	defaultDatabaseURL   = "lawncare.db"
	defaultStripeTimeout = "15s"
	defaultNotifyTimeout = "10s"
	defaultAdminTokenTTL = "24h"
	defaultCurrency      = "usd"
	defaultBusinessEmail = "bookings@davinlynks.example"
	defaultExportDaily   = "0 2 * * *"
	defaultExportWeekly  = "0 9 * * 1"
)

// Config carries everything the service reads from the environment. The
// Stripe, Sheets, email relay and AMQP integrations are all optional: when a
// setting is empty the corresponding channel is skipped, never failed.
type Config struct {
	AppEnv      string
	Addr        string
	DatabaseURL string

	StripeSecretKey string
	StripeTimeout   time.Duration
	Currency        string

	SpreadsheetID         string
	GoogleCredentialsFile string

	BusinessEmail string
	EmailRelayURL string
	NotifyTimeout time.Duration

	AMQPURL string

	ExportDailySpec  string
	ExportWeeklySpec string

	JWTSecret         string
	AdminPasswordHash string
	AdminTokenTTL     time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:      strings.ToLower(envOrDefault("APP_ENV", "dev")),
		Addr:        envOrDefault("ADDR", defaultAddr),
		DatabaseURL: envOrDefault("DATABASE_URL", defaultDatabaseURL),

		StripeSecretKey: strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY")),
		Currency:        envOrDefault("CURRENCY", defaultCurrency),

		SpreadsheetID:         strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID")),
		GoogleCredentialsFile: strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_KEY_FILE")),

		BusinessEmail: envOrDefault("BUSINESS_EMAIL", defaultBusinessEmail),
		EmailRelayURL: strings.TrimSpace(os.Getenv("EMAIL_RELAY_URL")),

		AMQPURL: strings.TrimSpace(os.Getenv("AMQP_URL")),

		ExportDailySpec:  envOrDefault("EXPORT_DAILY_SPEC", defaultExportDaily),
		ExportWeeklySpec: envOrDefault("EXPORT_WEEKLY_SPEC", defaultExportWeekly),

		JWTSecret:         strings.TrimSpace(os.Getenv("JWT_SECRET")),
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
	}

	var err error
	if cfg.StripeTimeout, err = parseDuration("STRIPE_TIMEOUT", defaultStripeTimeout); err != nil {
		return nil, err
	}
	if cfg.NotifyTimeout, err = parseDuration("NOTIFY_TIMEOUT", defaultNotifyTimeout); err != nil {
		return nil, err
	}
	if cfg.AdminTokenTTL, err = parseDuration("ADMIN_TOKEN_TTL", defaultAdminTokenTTL); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "dev" || c.AppEnv == "development"
}

func envOrDefault(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

func parseDuration(name, def string) (time.Duration, error) {
	raw := envOrDefault(name, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", name, raw, err)
	}
	return d, nil
}
