package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Spacing units, in terminal cells.
const (
	SpaceNone = 0
	SpaceXS   = 1
	SpaceSM   = 2
	SpaceMD   = 3
	SpaceLG   = 4

	// Component dimensions
	MinPanelHeight = 5
	MinPanelWidth  = 20
	ListPanelRatio = 0.4
)

// Color Palette - Semantic colors with consistent light/dark mode support
var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	ColorSuccess = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"}

	ColorBackground  = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0F0F0F"}
	ColorSurface     = lipgloss.AdaptiveColor{Light: "#F9FAFB", Dark: "#1A1A1A"}
	ColorSurfaceAlt  = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#262626"}
	ColorBorder      = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#404040"}
	ColorBorderFocus = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}

	ColorText          = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}
	ColorTextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ColorTextMuted     = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	ColorHighlight = lipgloss.AdaptiveColor{Light: "#EEF2FF", Dark: "#312E81"}
)

// Customer row backgrounds. Text on them is always dark so labels stay readable.
var (
	ColorRowRed       = lipgloss.Color("#FCA5A5")
	ColorRowYellow    = lipgloss.Color("#FDE68A")
	ColorRowLightBlue = lipgloss.Color("#BAE6FD")
	ColorRowGreen     = lipgloss.Color("#BBF7D0")
	ColorRowText      = lipgloss.Color("#111827")
)

// Text Styles
var (
	TextStyle          = lipgloss.NewStyle().Foreground(ColorText)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(ColorTextSecondary)
	TextSuccessStyle   = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextErrorStyle     = lipgloss.NewStyle().Foreground(ColorError)
	TextWarningStyle   = lipgloss.NewStyle().Foreground(ColorWarning)
	TextInfoStyle      = lipgloss.NewStyle().Foreground(ColorInfo)
	DimStyle           = lipgloss.NewStyle().Foreground(ColorTextMuted)
)

// Component Styles - Reusable component definitions
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, SpaceXS)

	PanelFocusedStyle = PanelStyle.
				BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, SpaceSM)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceSM)

	StatusBarSuccessStyle = StatusBarStyle.Background(ColorSuccess).Foreground(ColorBackground)
	StatusBarErrorStyle   = StatusBarStyle.Background(ColorError).Foreground(ColorBackground)
	StatusBarWarningStyle = StatusBarStyle.Background(ColorWarning).Foreground(ColorBackground)
	StatusBarInfoStyle    = StatusBarStyle.Background(ColorInfo).Foreground(ColorBackground)

	ListItemStyle = lipgloss.NewStyle().PaddingLeft(SpaceXS)

	ButtonStyle = lipgloss.NewStyle().
			Padding(0, SpaceXS).
			Background(ColorPrimary).
			Foreground(ColorBackground).
			Bold(true)

	ButtonDisabledStyle = ButtonStyle.
				Background(ColorSurfaceAlt).
				Foreground(ColorTextMuted).
				Bold(false)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, SpaceXS)

	InputFocusedStyle = InputStyle.BorderForeground(ColorBorderFocus)

	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderFocus).
			Foreground(ColorText).
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			MarginBottom(SpaceXS)

	AlertStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)
)

// Log level styles
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
)
