package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hanksha/sports-club-backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/club")
	t.Setenv("FIREBASE_API_KEY", "fb-key")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	c, err := config.Load(missingEnvFile(t))

	require.NoError(t, err)
	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "usd", c.Currency)
	assert.Equal(t, 72*time.Hour, c.PendingBookingTTL)
	assert.Equal(t, "@every 1h", c.PurgeSchedule)
	assert.Empty(t, c.Timezone)

	loc, err := c.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
	assert.Equal(t, []string{"http://localhost:5173"}, c.CORSOrigins)
	assert.Empty(t, c.SendGridAPIKey)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8080")
	t.Setenv("PENDING_BOOKING_TTL", "24h")
	t.Setenv("CORS_ORIGINS", "https://club.test,https://admin.club.test")

	c, err := config.Load(missingEnvFile(t))

	require.NoError(t, err)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, 24*time.Hour, c.PendingBookingTTL)
	assert.Equal(t, []string{"https://club.test", "https://admin.club.test"}, c.CORSOrigins)
}

func TestLoadFromEnvFile(t *testing.T) {
	setRequired(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CURRENCY=eur\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CURRENCY") })

	c, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "eur", c.Currency)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("STRIPE_SECRET_KEY", "")
	os.Unsetenv("STRIPE_SECRET_KEY")

	_, err := config.Load(missingEnvFile(t))

	assert.Error(t, err)
}

func TestLoadClubTimezone(t *testing.T) {
	setRequired(t)
	t.Setenv("TIMEZONE", "Asia/Bangkok")

	c, err := config.Load(missingEnvFile(t))
	require.NoError(t, err)

	loc, err := c.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Bangkok", loc.String())
}

func TestLoadInvalidTimezone(t *testing.T) {
	setRequired(t)
	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")

	_, err := config.Load(missingEnvFile(t))

	assert.Error(t, err)
}
