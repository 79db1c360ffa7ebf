package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/joestump/contact-app/internal/db"
)

// MemoryDriver keeps contacts in process memory; no DSN is needed and nothing
// survives a restart.
const MemoryDriver = "memory"

type Config struct {
	HTTP struct {
		Addr            string
		ShutdownTimeout time.Duration
	}
	DB struct {
		Driver string
		DSN    string
	}
	API struct {
		PageSize int
	}
	Log struct {
		Level  string
		Format string
		File   string
	}
	Metrics struct {
		// Refresh is a cron spec for recomputing gauges; empty disables it.
		Refresh string
	}
}

// Load reads config from environment (CONTACTS_ prefix) and optional contact-app.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CONTACTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("contact-app")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.shutdown_timeout", "15s")
	v.SetDefault("api.page_size", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("metrics.refresh", "@every 1m")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.API.PageSize = v.GetInt("api.page_size")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.Log.File = v.GetString("log.file")
	cfg.Metrics.Refresh = v.GetString("metrics.refresh")

	timeout, err := time.ParseDuration(v.GetString("http.shutdown_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid CONTACTS_HTTP_SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.HTTP.ShutdownTimeout = timeout

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("CONTACTS_DB_DRIVER is required (%s, %s)", strings.Join(db.Drivers, ", "), MemoryDriver)
	}
	if cfg.DB.Driver != MemoryDriver && !slices.Contains(db.Drivers, cfg.DB.Driver) {
		return nil, fmt.Errorf("unsupported CONTACTS_DB_DRIVER %q", cfg.DB.Driver)
	}
	if cfg.DB.DSN == "" && cfg.DB.Driver != MemoryDriver {
		return nil, fmt.Errorf("CONTACTS_DB_DSN is required")
	}
	if cfg.API.PageSize < 1 {
		return nil, fmt.Errorf("CONTACTS_API_PAGE_SIZE must be at least 1, got %d", cfg.API.PageSize)
	}

	return cfg, nil
}
