package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"9090"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	FirebaseAPIKey string `envconfig:"FIREBASE_API_KEY" required:"true"`

	StripeSecretKey     string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`
	Currency            string `envconfig:"CURRENCY" default:"usd"`

	SendGridAPIKey    string `envconfig:"SENDGRID_API_KEY"`
	SendGridFromEmail string `envconfig:"SENDGRID_FROM_EMAIL" default:"no-reply@sportsclub.local"`
	SendGridFromName  string `envconfig:"SENDGRID_FROM_NAME" default:"Sports Club"`

	PendingBookingTTL time.Duration `envconfig:"PENDING_BOOKING_TTL" default:"72h"`
	PurgeSchedule     string        `envconfig:"PURGE_SCHEDULE" default:"@every 1h"`

	// Timezone is the club's IANA zone. It decides what "today" means and
	// which calendar day a timestamp booking date falls on. Unset means UTC.
	Timezone    string   `envconfig:"TIMEZONE"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
}

// Load reads an optional .env file then the environment.
func Load(envFiles ...string) (Config, error) {
	logger := slog.Default().With("component", "config")

	if err := godotenv.Load(envFiles...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read env file: %w", err)
		}

		logger.Info("no .env file found, using process environment")
	}

	var c Config

	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	if _, err := c.Location(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) Location() (*time.Location, error) {
	if len(c.Timezone) == 0 {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(c.Timezone)

	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}

	return loc, nil
}
