// ABOUTME: Tool configuration: JSON config file with ECCA_* env overrides.
// ABOUTME: Follows XDG paths for the config file and data directory.
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Config stores tool configuration. File values are overridden by ECCA_*
// environment variables.
type Config struct {
	// DataDir is the root directory for the database and keystore.
	// Supports ~ expansion. Defaults to ~/.local/share/ecca.
	DataDir string `json:"data_dir,omitempty" env:"DATA_DIR"`

	// LogFile is the rotating log destination. Defaults to
	// <data_dir>/logs/ecca.log.
	LogFile string `json:"log_file,omitempty" env:"LOG_FILE"`

	// BcryptCost tunes password hashing. Defaults to 12.
	BcryptCost int `json:"bcrypt_cost,omitempty" env:"BCRYPT_COST"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return defaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// DBPath returns the SQLite database path under the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.GetDataDir(), "ecca.db")
}

// KeysDir returns the secure keystore directory under the data directory.
func (c *Config) KeysDir() string {
	return filepath.Join(c.GetDataDir(), "keys")
}

// GetLogFile returns the log destination.
func (c *Config) GetLogFile() string {
	if c.LogFile == "" {
		return filepath.Join(c.GetDataDir(), "logs", "ecca.log")
	}
	return ExpandPath(c.LogFile)
}

// GetBcryptCost returns the configured hashing cost.
func (c *Config) GetBcryptCost() int {
	if c.BcryptCost <= 0 {
		return 12
	}
	return c.BcryptCost
}

func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "ecca")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "ecca", "config.json")
}

// Load reads config from disk, then applies ECCA_* environment overrides.
func Load(ctx context.Context) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(GetConfigPath())
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: envconfig.PrefixLookuper("ECCA_", envconfig.OsLookuper()),
	}); err != nil {
		return nil, fmt.Errorf("apply env overrides: %w", err)
	}

	return cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
