package color

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		isDarkMode bool
		expected   bool
	}{
		{"set dark mode", true, true},
		{"set light mode", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Initialize(tt.isDarkMode)
			if lipgloss.HasDarkBackground() != tt.expected {
				t.Errorf("lipgloss.HasDarkBackground() got %v, want %v after Initialize(%v)", lipgloss.HasDarkBackground(), tt.expected, tt.isDarkMode)
			}
		})
	}
}

func TestApply(t *testing.T) {
	assert.Equal(t, "dark", Apply("Dark"))
	assert.True(t, lipgloss.HasDarkBackground())

	assert.Equal(t, "light", Apply("light"))
	assert.False(t, lipgloss.HasDarkBackground())

	assert.Equal(t, "auto (light)", Apply("auto"))
}
