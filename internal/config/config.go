package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/botwatch-dev/botwatch/internal/constant"
)

// AuthConfig controls API authentication. Enforcement is opt-in: the bot
// and test endpoints stay open unless Required is set.
type AuthConfig struct {
	Required  bool   `yaml:"required"`
	JWTSecret string `yaml:"jwt_secret"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level      string `yaml:"level"`
	ToFile     bool   `yaml:"to_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// OtelConfig controls the metrics pipeline.
type OtelConfig struct {
	Enabled               bool   `yaml:"enabled"`
	ExportIntervalSeconds int    `yaml:"export_interval_seconds"`
	Stdout                bool   `yaml:"stdout"`
	OTLPEndpoint          string `yaml:"otlp_endpoint"`
}

// Config is the application configuration, persisted as YAML under the
// config directory.
type Config struct {
	Port int        `yaml:"port"`
	Host string     `yaml:"host"`
	Auth AuthConfig `yaml:"auth"`
	Log  LogConfig  `yaml:"log"`
	Otel OtelConfig `yaml:"otel"`

	BaseDir    string `yaml:"-"`
	ConfigFile string `yaml:"-"`

	mu sync.RWMutex
}

// DefaultBaseDir returns ~/.botwatch, or a relative fallback when the home
// directory cannot be resolved.
func DefaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return constant.ConfigDirName
	}
	return filepath.Join(home, constant.ConfigDirName)
}

func defaults(baseDir string) *Config {
	return &Config{
		Port: constant.DefaultPort,
		Host: constant.DefaultHost,
		Auth: AuthConfig{
			Required: false,
		},
		Log: LogConfig{
			Level:      "info",
			ToFile:     false,
			MaxSizeMB:  20,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
		Otel: OtelConfig{
			Enabled:               false,
			ExportIntervalSeconds: 10,
			Stdout:                true,
		},
		BaseDir:    baseDir,
		ConfigFile: constant.GetConfigFile(baseDir),
	}
}

// Load reads the config file under baseDir, creating it with defaults on
// first run. A missing JWT secret is generated and persisted.
func Load(baseDir string) (*Config, error) {
	if baseDir == "" {
		baseDir = DefaultBaseDir()
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := defaults(baseDir)

	data, err := os.ReadFile(cfg.ConfigFile)
	switch {
	case os.IsNotExist(err):
		// first run, fall through to save defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if cfg.Auth.JWTSecret == "" {
		secret, err := generateSecret()
		if err != nil {
			return nil, err
		}
		cfg.Auth.JWTSecret = secret
	}

	if err := cfg.Save(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func generateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate jwt secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Save writes the config back to disk.
func (c *Config) Save() error {
	c.mu.RLock()
	data, err := yaml.Marshal(c)
	c.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(c.ConfigFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Reload re-reads the config file in place. Used by the watcher.
func (c *Config) Reload() error {
	data, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	fresh := defaults(c.BaseDir)
	if err := yaml.Unmarshal(data, fresh); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	c.mu.Lock()
	c.Port = fresh.Port
	c.Host = fresh.Host
	c.Auth = fresh.Auth
	c.Log = fresh.Log
	c.Otel = fresh.Otel
	c.mu.Unlock()
	return nil
}

// AuthRequired reports whether bearer auth is enforced on the API.
func (c *Config) AuthRequired() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Auth.Required
}

// JWTSecret returns the signing secret.
func (c *Config) JWTSecret() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Auth.JWTSecret
}

// LogLevel returns the configured log level string.
func (c *Config) LogLevel() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Log.Level
}
