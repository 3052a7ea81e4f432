package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/LFroesch/dirman/internal/logger"
)

const (
	appName        = "dirman"
	configFileName = "config.toml"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Config holds all dirman configuration
type Config struct {
	ShowHidden bool   `toml:"show_hidden"` // List entries whose names start with "."
	UseTrash   bool   `toml:"use_trash"`   // Send deletes to the OS trash before removing permanently
	Watch      bool   `toml:"watch"`       // Refresh the listing when the current directory changes on disk
	Clipboard  bool   `toml:"clipboard"`   // Enable copying paths to the system clipboard
	LogLevel   string `toml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		ShowHidden: true,
		UseTrash:   false,
		Watch:      true,
		Clipboard:  true,
		LogLevel:   "info",
	}
}

// ConfigDir returns the dirman config directory, respecting XDG_CONFIG_HOME.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		logger.Error("Failed to get home directory: %v", err)
		homeDir = "."
	}
	return filepath.Join(homeDir, ".config", appName)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	return filepath.Join(ConfigDir(), configFileName)
}

// Load reads the config file, writing the defaults when it does not exist.
// A file that fails to parse is ignored in favour of the defaults.
func Load() *Config {
	configPath := GetConfigPath()
	defaultConfig := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if err := Save(defaultConfig); err != nil {
			logger.Warn("Failed to save default config: %v", err)
		}
		return defaultConfig
	}

	// Decode over the defaults so keys missing from the file keep their default value
	config := Default()
	if _, err := toml.Decode(string(data), config); err != nil {
		logger.Warn("Failed to parse config file %s: %v, using defaults", configPath, err)
		return defaultConfig
	}

	config.LogLevel = strings.ToLower(strings.TrimSpace(config.LogLevel))
	if !contains(validLogLevels, config.LogLevel) {
		logger.Warn("Unknown log_level %q, using %q", config.LogLevel, defaultConfig.LogLevel)
		config.LogLevel = defaultConfig.LogLevel
	}

	return config
}

// Save writes config to the config file
func Save(config *Config) error {
	configDir := ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		logger.Error("Failed to create config directory %s: %v", configDir, err)
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		logger.Error("Failed to encode config: %v", err)
		return fmt.Errorf("cannot encode config: %w", err)
	}

	configPath := filepath.Join(configDir, configFileName)
	if err := os.WriteFile(configPath, buf.Bytes(), 0644); err != nil {
		logger.Error("Failed to write config file %s: %v", configPath, err)
		return fmt.Errorf("cannot write config file: %w", err)
	}

	return nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
