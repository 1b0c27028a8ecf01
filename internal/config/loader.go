package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osGetenv = os.Getenv

const (
	userConfigDir    = ".config/custview"
	projectConfigDir = ".custview"
	configFileName   = "config.yaml"
	dotenvFileName   = ".env"
)

// Environment variables consulted after the YAML layers.
const (
	EnvAPIURL   = "CUSTVIEW_API_URL"
	EnvTimeout  = "CUSTVIEW_TIMEOUT"
	EnvLogLevel = "CUSTVIEW_LOG_LEVEL"
)

// LoadConfig layers default, user, project and environment settings.
func LoadConfig() (CustviewConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if config, err = overlayFile(config, userConfigPath); err != nil {
		return CustviewConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if config, err = overlayFile(config, projectConfigPath); err != nil {
		return CustviewConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	if err := loadDotenv(); err != nil {
		return CustviewConfig{}, err
	}
	return applyEnv(config)
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadDotenv reads ./.env into the process environment without overriding
// variables that are already set.
var loadDotenv = func() error {
	wd, err := osGetwd()
	if err != nil {
		return nil
	}
	path := filepath.Join(wd, dotenvFileName)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

func overlayFile(base CustviewConfig, path string) (CustviewConfig, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	return mergeConfigs(base, overlay), nil
}

// loadConfigFromFile loads a CustviewConfig from a YAML file.
func loadConfigFromFile(filePath string) (CustviewConfig, error) {
	var config CustviewConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return CustviewConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return CustviewConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// overlay leave base untouched.
func mergeConfigs(base, overlay CustviewConfig) CustviewConfig {
	merged := base

	if overlay.API.URL != "" {
		merged.API.URL = overlay.API.URL
	}
	if overlay.API.Timeout != 0 {
		merged.API.Timeout = overlay.API.Timeout
	}
	if overlay.UI.ColorMode != "" {
		merged.UI.ColorMode = overlay.UI.ColorMode
	}
	if overlay.UI.EmailField != "" {
		merged.UI.EmailField = overlay.UI.EmailField
	}
	if overlay.UI.LogLevel != "" {
		merged.UI.LogLevel = overlay.UI.LogLevel
	}
	if overlay.SelfUpdate.Repository != "" {
		merged.SelfUpdate.Repository = overlay.SelfUpdate.Repository
	}
	return merged
}

func applyEnv(config CustviewConfig) (CustviewConfig, error) {
	if v := strings.TrimSpace(osGetenv(EnvAPIURL)); v != "" {
		config.API.URL = v
	}
	if v := strings.TrimSpace(osGetenv(EnvTimeout)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return CustviewConfig{}, fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		config.API.Timeout = d
	}
	if v := strings.TrimSpace(osGetenv(EnvLogLevel)); v != "" {
		config.UI.LogLevel = v
	}
	return config, nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
