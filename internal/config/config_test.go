package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
[database]
host = "localhost"
dbname = "shopservice"

[auth]
jwt_secret = "test-secret"
`

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 720, cfg.Auth.TokenTTLHours)
	assert.Equal(t, "08:00", cfg.Booking.BusinessDayStart)
	assert.Equal(t, "23:55", cfg.Booking.BusinessDayEnd)
	assert.Equal(t, 10, cfg.Booking.SlotStepMinutes)
	assert.Equal(t, 60, cfg.Booking.LinkTTLMinutes)
	assert.Equal(t, "@every 10m", cfg.Booking.CleanupSchedule)
}

func TestLoad_FullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
http_port = 8080
read_timeout = 15

[database]
host = "db.internal"
port = 5433
user = "svc"
password = "pw"
dbname = "booking"
sslmode = "require"

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
service_name = "shop-service"

[auth]
jwt_secret = "s3cr3t"
token_ttl_hours = 48

[booking]
business_day_start = "09:00"
business_day_end = "18:00"
slot_step_minutes = 15
link_ttl_minutes = 30
cleanup_schedule = "@every 5m"
public_booking_url = "https://booking.example.com"
`))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 48, cfg.Auth.TokenTTLHours)
	assert.Equal(t, "09:00", cfg.Booking.BusinessDayStart)
	assert.Equal(t, 15, cfg.Booking.SlotStepMinutes)
	assert.Equal(t,
		"host=db.internal port=5433 user=svc password=pw dbname=booking sslmode=require",
		cfg.Database.DSN())
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing database",
			content: `
[auth]
jwt_secret = "x"
`,
		},
		{
			name: "missing jwt secret",
			content: `
[database]
host = "localhost"
dbname = "shopservice"
`,
		},
		{
			name: "malformed business start",
			content: minimalConfig + `
[booking]
business_day_start = "8 in the morning"
`,
		},
		{
			name: "business day ends before it starts",
			content: minimalConfig + `
[booking]
business_day_start = "18:00"
business_day_end = "09:00"
`,
		},
		{
			name: "negative step",
			content: minimalConfig + `
[booking]
slot_step_minutes = -5
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
