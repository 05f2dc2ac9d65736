package config

import (
	"fmt"
	"os"
	"time"

	"github.com/navigatehome/waypoint/pkg/database"
	"github.com/navigatehome/waypoint/pkg/sessions"
	"github.com/navigatehome/waypoint/pkg/storage"
	"github.com/pelletier/go-toml/v2"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvWaypointEnv             = "WAYPOINT_ENV"
	EnvWaypointShutdownTimeout = "WAYPOINT_SHUTDOWN_TIMEOUT"
	EnvWaypointVersion         = "WAYPOINT_VERSION"
)

var databaseEnv = &database.Env{
	Host:            "WAYPOINT_DB_HOST",
	Port:            "WAYPOINT_DB_PORT",
	Name:            "WAYPOINT_DB_NAME",
	User:            "WAYPOINT_DB_USER",
	Password:        "WAYPOINT_DB_PASSWORD",
	SSLMode:         "WAYPOINT_DB_SSL_MODE",
	MaxOpenConns:    "WAYPOINT_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "WAYPOINT_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "WAYPOINT_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "WAYPOINT_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	ContainerName:    "WAYPOINT_STORAGE_CONTAINER_NAME",
	ConnectionString: "WAYPOINT_STORAGE_CONNECTION_STRING",
}

var sessionsEnv = &sessions.Env{
	Host:        "WAYPOINT_SESSIONS_HOST",
	Port:        "WAYPOINT_SESSIONS_PORT",
	Password:    "WAYPOINT_SESSIONS_PASSWORD",
	DB:          "WAYPOINT_SESSIONS_DB",
	TTL:         "WAYPOINT_SESSIONS_TTL",
	MaxMessages: "WAYPOINT_SESSIONS_MAX_MESSAGES",
	ConnTimeout: "WAYPOINT_SESSIONS_CONN_TIMEOUT",
}

// Config is the root configuration for the Waypoint service.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	Database        database.Config `toml:"database"`
	Storage         storage.Config  `toml:"storage"`
	Sessions        sessions.Config `toml:"sessions"`
	Gateway         GatewayConfig   `toml:"gateway"`
	API             APIConfig       `toml:"api"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
}

// Env returns the WAYPOINT_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvWaypointEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.Sessions.Merge(&overlay.Sessions)
	c.Gateway.Merge(&overlay.Gateway)
	c.API.Merge(&overlay.API)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Sessions.Finalize(sessionsEnv); err != nil {
		return fmt.Errorf("sessions: %w", err)
	}
	if err := c.Gateway.Finalize(); err != nil {
		return fmt.Errorf("gateway: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}
func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvWaypointShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvWaypointVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvWaypointEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
