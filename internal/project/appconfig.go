package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/loshunter/HeroByte-sub004/internal/model"
)

const (
	configDirName  = ".herobyte"
	configFileName = "config.json"
)

// DefaultConfigDir returns ~/.herobyte, or .herobyte in the working
// directory when the home directory cannot be determined.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(home, configDirName)
}

// DefaultConfigPath returns the config file inside DefaultConfigDir.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), configFileName)
}

// SaveAppConfig writes cfg to path as indented JSON, creating the directory
// if needed.
func SaveAppConfig(path string, cfg model.AppConfig) error {
	if cfg.RecentScenes == nil {
		cfg.RecentScenes = []string{}
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LoadAppConfig reads the config at path. Fields the file omits keep their
// default values, and a missing file yields DefaultAppConfig without error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	cfg := model.DefaultAppConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.RecentScenes == nil {
		cfg.RecentScenes = []string{}
	}
	return cfg, nil
}
