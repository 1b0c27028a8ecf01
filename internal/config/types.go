package config

import (
	"time"
)

// CustviewConfig is the top-level configuration structure for custview.
type CustviewConfig struct {
	API        APIConfig        `yaml:"api"`
	UI         UIConfig         `yaml:"ui"`
	SelfUpdate SelfUpdateConfig `yaml:"selfUpdate"`
}

// APIConfig points custview at the customer records backend.
type APIConfig struct {
	URL     string        `yaml:"url,omitempty"`     // Backend root, e.g. "http://localhost:5000"
	Timeout time.Duration `yaml:"timeout,omitempty"` // Per-request bound; 0 disables it
}

// UIConfig holds presentation settings for the TUI.
type UIConfig struct {
	ColorMode  string `yaml:"colorMode,omitempty"`  // "auto", "dark" or "light"
	EmailField string `yaml:"emailField,omitempty"` // Detail field holding the customer's address
	LogLevel   string `yaml:"logLevel,omitempty"`   // debug, info, warn, error
}

// SelfUpdateConfig names the GitHub repository releases are fetched from.
type SelfUpdateConfig struct {
	Repository string `yaml:"repository,omitempty"` // "owner/name"
}
