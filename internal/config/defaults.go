package config

import "time"

const (
	DefaultAPIURL     = "http://localhost:5000"
	DefaultTimeout    = 30 * time.Second
	DefaultEmailField = "メールアドレス"
	DefaultColorMode  = "auto"
	DefaultLogLevel   = "info"
	DefaultUpdateRepo = "custview/custview"
)

// GetDefaultConfig returns the built-in configuration every layer is merged onto.
func GetDefaultConfig() CustviewConfig {
	return CustviewConfig{
		API: APIConfig{
			URL:     DefaultAPIURL,
			Timeout: DefaultTimeout,
		},
		UI: UIConfig{
			ColorMode:  DefaultColorMode,
			EmailField: DefaultEmailField,
			LogLevel:   DefaultLogLevel,
		},
		SelfUpdate: SelfUpdateConfig{
			Repository: DefaultUpdateRepo,
		},
	}
}
