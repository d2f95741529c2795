// Package config provides functionality for loading, saving, and managing
// application configuration settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"daybook/local-app/src/pkg/model"
)

// Global variables to store the current configuration and its file path.
var (
	currentConfig *model.Config
	configPath    = "./data/config.json"
)

// SetPath overrides the config file location. Intended for tests and
// alternate data directories.
func SetPath(path string) {
	configPath = path
}

// Load loads the configuration from the JSON file.
// If the file doesn't exist, it creates a default configuration.
func Load() error {
	// Ensure the data directory exists
	dataDir := filepath.Dir(configPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %v", err)
	}

	// Check if the config file exists, if not create a default one
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		defaultConfig := &model.Config{
			DataDir:         dataDir,
			DatabaseFile:    "daybook.db",
			LogFolder:       "./logs",
			LogFile:         "daybook.log",
			HistoryFile:     filepath.Join(dataDir, "history"),
			ExportDir:       "./exports",
			TokenTTLMinutes: 60 * 24,
		}
		if err := Save(defaultConfig); err != nil {
			return fmt.Errorf("failed to create default config: %v", err)
		}
		currentConfig = defaultConfig
		return nil
	}

	// Read and parse the existing config file
	file, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	// Unmarshal the config from JSON
	currentConfig = &model.Config{}
	if err := json.Unmarshal(file, currentConfig); err != nil {
		return fmt.Errorf("error parsing config file: %v", err)
	}

	// Fill defaults for fields added after the config file was first written
	if currentConfig.DatabaseFile == "" {
		currentConfig.DatabaseFile = "daybook.db"
	}
	if currentConfig.TokenTTLMinutes <= 0 {
		currentConfig.TokenTTLMinutes = 60 * 24
	}

	return nil
}

// Save saves the provided configuration to the JSON file.
func Save(cfg *model.Config) error {
	// Marshal the config to JSON
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %v", err)
	}

	// Write the JSON data to the config file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}

	return nil
}

// Get returns the current configuration.
func Get() *model.Config {
	return currentConfig
}
