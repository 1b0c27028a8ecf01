package color

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Initialize forces lipgloss' background detection.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// Apply resolves a colorMode setting and configures lipgloss accordingly.
// It returns the mode that ended up in effect.
func Apply(mode string) string {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "dark":
		Initialize(true)
		return "dark"
	case "light":
		Initialize(false)
		return "light"
	default:
		if lipgloss.HasDarkBackground() {
			return "auto (dark)"
		}
		return "auto (light)"
	}
}
