package config

import (
	"net/mail"
	"os"
	"path/filepath"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefdechef/booking-service/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[database]
host = "localhost"
dbname = "ensemble"
user = "app"
password = "from-file"

[booking]
time_zone = "UTC"

[email]
from = "noreply@example.md"
admin_email = "admin@example.md"
`)
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("RESEND_API_KEY", "re_test")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "re_test", cfg.Email.APIKey)
	assert.True(t, cfg.Email.IsConfigured())
	assert.True(t, cfg.Database.IsConfigured())
	assert.Equal(t, domain.PolicyActive, cfg.Booking.Policy())
	assert.Equal(t, 4*60*60, cfg.ExchangeRates.CacheTTL)
	assert.Equal(t, "https://api.exchangerate-api.com/v4/latest/EUR", cfg.ExchangeRates.URL)
	assert.Contains(t, cfg.Database.DSN(), "password=from-env")
}

func TestLoad_InvalidPolicy(t *testing.T) {
	path := writeConfig(t, `
[booking]
availability_policy = "never"
time_zone = "UTC"
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_EventsRequireURL(t *testing.T) {
	path := writeConfig(t, `
[booking]
time_zone = "UTC"

[events]
enabled = true
`)
	t.Setenv("RABBIT_URL", "")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_EmailFromMustBeBareAddress(t *testing.T) {
	for _, from := range []string{"Chef de Chef <noreply@example.md>", "not-an-address", " noreply@example.md"} {
		path := writeConfig(t, `
[booking]
time_zone = "UTC"

[email]
from = "`+from+`"
`)
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidConfig, from)
	}
}

func TestLoad_ShippedConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config.toml"))
	require.NoError(t, err)

	addr, err := mail.ParseAddress(cfg.Email.From)
	require.NoError(t, err)
	assert.Empty(t, addr.Name)
	assert.Equal(t, cfg.Email.From, addr.Address)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_NotConfigured(t *testing.T) {
	assert.False(t, DatabaseConfig{}.IsConfigured())
	assert.False(t, EmailConfig{APIKey: "k"}.IsConfigured())
}
