// Package config loads the service configuration from a TOML file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/venuebook/venue-scheduler/internal/domain"
)

// Config is the root of config.toml.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Scheduler SchedulerConfig `toml:"scheduler"`
}

// ServerConfig describes the HTTP listener. Timeouts are in seconds.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig describes the postgres connection and pool sizing.
// ConnMaxLifetime is in seconds.
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN builds the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig describes the file logger.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig toggles Prometheus collection.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SchedulerConfig carries the booking policy knobs. These are policies, not
// hard contracts: deployments tune them per market.
type SchedulerConfig struct {
	MinLeadTimeHours       int `toml:"min_lead_time_hours"`
	MinDurationHours       int `toml:"min_duration_hours"`
	MaxDurationHours       int `toml:"max_duration_hours"`
	AlternativeStepDays    int `toml:"alternative_step_days"`
	AlternativeHorizonDays int `toml:"alternative_horizon_days"`
	MaxAlternatives        int `toml:"max_alternatives"`
	HoldTTLMinutes         int `toml:"hold_ttl_minutes"`
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "venue-scheduler",
		},
		Scheduler: SchedulerConfig{
			MinLeadTimeHours:       domain.DefaultMinLeadTimeHours,
			MinDurationHours:       domain.DefaultMinDurationHours,
			MaxDurationHours:       domain.DefaultMaxDurationHours,
			AlternativeStepDays:    domain.DefaultAlternativeStepDays,
			AlternativeHorizonDays: domain.DefaultAlternativeHorizonDays,
			MaxAlternatives:        domain.DefaultMaxAlternatives,
			HoldTTLMinutes:         domain.DefaultHoldTTLMinutes,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port out of range: %d", c.Server.HTTPPort)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}

	s := c.Scheduler
	if s.MinLeadTimeHours < domain.MinLeadTimeHoursLimit || s.MinLeadTimeHours > domain.MaxLeadTimeHoursLimit {
		return fmt.Errorf("scheduler.min_lead_time_hours out of range: %d", s.MinLeadTimeHours)
	}
	if s.MinDurationHours < 1 || s.MaxDurationHours < s.MinDurationHours || s.MaxDurationHours > domain.MaxDurationHoursLimit {
		return fmt.Errorf("scheduler duration bounds invalid: min=%d max=%d", s.MinDurationHours, s.MaxDurationHours)
	}
	if s.AlternativeStepDays < 1 {
		return fmt.Errorf("scheduler.alternative_step_days must be positive: %d", s.AlternativeStepDays)
	}
	if s.AlternativeHorizonDays < s.AlternativeStepDays || s.AlternativeHorizonDays > domain.MaxHorizonDaysLimit {
		return fmt.Errorf("scheduler.alternative_horizon_days out of range: %d", s.AlternativeHorizonDays)
	}
	if s.MaxAlternatives < 0 || s.MaxAlternatives > domain.MaxAlternativesLimit {
		return fmt.Errorf("scheduler.max_alternatives out of range: %d", s.MaxAlternatives)
	}
	if s.HoldTTLMinutes < 1 {
		return fmt.Errorf("scheduler.hold_ttl_minutes must be positive: %d", s.HoldTTLMinutes)
	}

	return nil
}
