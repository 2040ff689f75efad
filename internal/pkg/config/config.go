package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (timeouts, intervals, TTLs)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Ledger  LedgerConfig
	Holds   HoldConfig
	Janitor JanitorConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// LedgerConfig bounds lock acquisition on capacity scopes. Callers treat an
// expired acquisition as retryable.
type LedgerConfig struct {
	LockTimeout time.Duration `envconfig:"LEDGER_LOCK_TIMEOUT" default:"2s"`
}

// HoldConfig carries the reservation TTL per product type. The TTL is
// deliberately a configuration value, not a literal at call sites.
type HoldConfig struct {
	TourTTL     time.Duration `envconfig:"HOLD_TOUR_TTL" default:"30m"`
	EventTTL    time.Duration `envconfig:"HOLD_EVENT_TTL" default:"15m"`
	TransferTTL time.Duration `envconfig:"HOLD_TRANSFER_TTL" default:"30m"`
	MaxQuantity int           `envconfig:"HOLD_MAX_QUANTITY" default:"50"`
}

type JanitorConfig struct {
	SweepInterval time.Duration `envconfig:"JANITOR_SWEEP_INTERVAL" default:"60s"`
	BatchSize     int           `envconfig:"JANITOR_BATCH_SIZE" default:"200"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Ledger: LedgerConfig{LockTimeout: 2 * time.Second},
		Holds: HoldConfig{
			TourTTL:     30 * time.Minute,
			EventTTL:    15 * time.Minute,
			TransferTTL: 30 * time.Minute,
			MaxQuantity: 50,
		},
		Janitor: JanitorConfig{SweepInterval: time.Minute, BatchSize: 200},
	}
}

// TTLFor returns the hold TTL configured for a product type string as stored
// on capacity scopes. Unknown types fall back to the shortest TTL.
func (h HoldConfig) TTLFor(productType string) time.Duration {
	switch productType {
	case "tour":
		return h.TourTTL
	case "event":
		return h.EventTTL
	case "transfer":
		return h.TransferTTL
	default:
		return h.EventTTL
	}
}
