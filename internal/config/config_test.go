package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestFromViper(t *testing.T) {
	tests := []struct {
		name    string
		set     map[string]any
		wantErr string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			set:  map[string]any{"db.driver": "sqlite3", "db.dsn": "contacts.db"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.HTTP.Addr != ":8080" {
					t.Errorf("HTTP.Addr = %q, want %q", cfg.HTTP.Addr, ":8080")
				}
				if cfg.API.PageSize != 5 {
					t.Errorf("API.PageSize = %d, want 5", cfg.API.PageSize)
				}
				if cfg.HTTP.ShutdownTimeout != 15*time.Second {
					t.Errorf("HTTP.ShutdownTimeout = %v, want 15s", cfg.HTTP.ShutdownTimeout)
				}
				if cfg.Metrics.Refresh != "@every 1m" {
					t.Errorf("Metrics.Refresh = %q, want %q", cfg.Metrics.Refresh, "@every 1m")
				}
			},
		},
		{
			name: "memory needs no dsn",
			set:  map[string]any{"db.driver": "memory", "api.page_size": 20},
			check: func(t *testing.T, cfg *Config) {
				if cfg.API.PageSize != 20 {
					t.Errorf("API.PageSize = %d, want 20", cfg.API.PageSize)
				}
			},
		},
		{name: "missing driver", set: map[string]any{}, wantErr: "CONTACTS_DB_DRIVER is required"},
		{name: "unknown driver", set: map[string]any{"db.driver": "oracle", "db.dsn": "x"}, wantErr: "unsupported"},
		{name: "missing dsn", set: map[string]any{"db.driver": "postgres"}, wantErr: "CONTACTS_DB_DSN is required"},
		{name: "bad page size", set: map[string]any{"db.driver": "memory", "api.page_size": 0}, wantErr: "PAGE_SIZE"},
		{name: "bad timeout", set: map[string]any{"db.driver": "memory", "http.shutdown_timeout": "soon"}, wantErr: "SHUTDOWN_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.set {
				v.Set(k, val)
			}
			cfg, err := fromViper(v)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("fromViper() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("fromViper() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CONTACTS_DB_DRIVER", "mysql")
	t.Setenv("CONTACTS_DB_DSN", "user:pass@tcp(localhost:3306)/contacts")
	t.Setenv("CONTACTS_HTTP_ADDR", ":9090")
	t.Setenv("CONTACTS_LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DB.Driver != "mysql" {
		t.Errorf("DB.Driver = %q, want %q", cfg.DB.Driver, "mysql")
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("HTTP.Addr = %q, want %q", cfg.HTTP.Addr, ":9090")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "json")
	}
}
