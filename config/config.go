package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	// Storage configuration
	Storage StorageConfig `json:"storage"`

	// Game configuration
	Game GameConfig `json:"game"`

	// Journal configuration
	Journal JournalConfig `json:"journal"`

	// Server configuration
	Server ServerConfig `json:"server"`
}

// StorageConfig holds save game storage configuration
type StorageConfig struct {
	// Backend driver (memory, file, sqlite)
	Driver string `json:"driver" env:"BACQ_STORAGE_DRIVER"`

	// Directory for the file driver, database file for the sqlite driver
	Path string `json:"path" env:"BACQ_STORAGE_PATH"`

	// Key the saved game is stored under
	Key string `json:"key" env:"BACQ_STORAGE_KEY"`
}

// GameConfig holds game specific configuration
type GameConfig struct {
	// Catalog file (JSON or TOML); empty uses the built-in content
	CatalogPath string `json:"catalog_path" env:"BACQ_CATALOG_PATH"`

	// Reject out-of-order actions instead of only missing data
	StrictTransitions bool `json:"strict_transitions" env:"BACQ_STRICT_TRANSITIONS"`
}

// JournalConfig holds knowledge journal configuration
type JournalConfig struct {
	// Journal content file (JSON); empty uses the built-in content
	Path string `json:"path" env:"BACQ_JOURNAL_PATH"`
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	// Listen host
	Host string `json:"host" env:"BACQ_SERVER_HOST"`

	// Server port
	Port string `json:"port" env:"BACQ_SERVER_PORT"`

	// Log level (debug, info, warn, error)
	LogLevel string `json:"log_level" env:"BACQ_LOG_LEVEL"`
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Driver: "file",
			Path:   "./data",
			Key:    "ba-career-quest:game-state",
		},
		Game: GameConfig{
			CatalogPath:       "",
			StrictTransitions: true,
		},
		Journal: JournalConfig{
			Path: "",
		},
		Server: ServerConfig{
			Host:     "127.0.0.1",
			Port:     "8080",
			LogLevel: "info",
		},
	}
}

// LoadConfig loads configuration from a file, creating it with defaults if
// missing, then applies environment overrides
func LoadConfig(path string) (Config, error) {
	config, err := loadFile(path)
	if err != nil {
		return config, err
	}

	if err := ApplyEnv(&config); err != nil {
		return config, err
	}

	return config, nil
}

func loadFile(path string) (Config, error) {
	config := DefaultConfig()

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return config, err
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Create default config file
		return config, SaveConfig(config, path)
	}

	// Read config file
	file, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// ApplyEnv overrides config fields from BACQ_* environment variables
func ApplyEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// SaveConfig saves configuration to a file
func SaveConfig(config Config, path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Create or truncate file
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// Write config to file
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(config); err != nil {
		return err
	}

	return nil
}
