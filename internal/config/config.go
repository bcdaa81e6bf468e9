package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ShopService/internal/domain"
	"github.com/m04kA/SMC-ShopService/pkg/types"
)

// ErrInvalidConfig is returned when the configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full service configuration loaded from config.toml.
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Logs     Logs     `toml:"logs"`
	Metrics  Metrics  `toml:"metrics"`
	Auth     Auth     `toml:"auth"`
	Booking  Booking  `toml:"booking"`
}

// Server holds HTTP server settings. Timeouts are in seconds.
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database holds PostgreSQL connection and pool settings.
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the lib/pq connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs holds logging settings.
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics holds prometheus settings.
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Auth holds JWT settings.
type Auth struct {
	JWTSecret     string `toml:"jwt_secret"`
	TokenTTLHours int    `toml:"token_ttl_hours"`
}

// Booking holds the scheduling parameters of the slot engine.
type Booking struct {
	BusinessDayStart string `toml:"business_day_start"` // HH:MM
	BusinessDayEnd   string `toml:"business_day_end"`   // HH:MM
	SlotStepMinutes  int    `toml:"slot_step_minutes"`
	LinkTTLMinutes   int    `toml:"link_ttl_minutes"`
	CleanupSchedule  string `toml:"cleanup_schedule"` // cron expression
	PublicBookingURL string `toml:"public_booking_url"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 9090
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Auth.TokenTTLHours == 0 {
		c.Auth.TokenTTLHours = 24 * 30
	}
	if c.Booking.BusinessDayStart == "" {
		c.Booking.BusinessDayStart = domain.DefaultBusinessDayStart
	}
	if c.Booking.BusinessDayEnd == "" {
		c.Booking.BusinessDayEnd = domain.DefaultBusinessDayEnd
	}
	if c.Booking.SlotStepMinutes == 0 {
		c.Booking.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	if c.Booking.LinkTTLMinutes == 0 {
		c.Booking.LinkTTLMinutes = domain.DefaultBookingLinkTTLMinutes
	}
	if c.Booking.CleanupSchedule == "" {
		c.Booking.CleanupSchedule = "@every 10m"
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database host and dbname are required", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	}

	start, err := types.NewTimeStringFromString(c.Booking.BusinessDayStart)
	if err != nil {
		return fmt.Errorf("%w: booking.business_day_start: %v", ErrInvalidConfig, err)
	}
	end, err := types.NewTimeStringFromString(c.Booking.BusinessDayEnd)
	if err != nil {
		return fmt.Errorf("%w: booking.business_day_end: %v", ErrInvalidConfig, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: business day must start before it ends", ErrInvalidConfig)
	}

	if c.Booking.SlotStepMinutes <= 0 {
		return fmt.Errorf("%w: booking.slot_step_minutes must be positive", ErrInvalidConfig)
	}
	if c.Booking.LinkTTLMinutes <= 0 {
		return fmt.Errorf("%w: booking.link_ttl_minutes must be positive", ErrInvalidConfig)
	}

	return nil
}
