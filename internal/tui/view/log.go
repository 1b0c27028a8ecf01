package view

import (
	"strings"

	"custview/internal/tui/design"
	"custview/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// PrepareLogContent applies color styles based on log level markers.
// Lines are not truncated; the viewport handles overflow.
func PrepareLogContent(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styleLogLine(l)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}

// renderLogOverlay draws the activity log over most of the screen.
func renderLogOverlay(m *model.Model) string {
	title := design.TitleStyle.Render("Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")

	overlayWidth := int(float64(m.Width) * 0.8)
	overlayHeight := int(float64(m.Height) * 0.7)
	vpWidth := overlayWidth - design.OverlayStyle.GetHorizontalFrameSize()
	vpHeight := overlayHeight - design.OverlayStyle.GetVerticalFrameSize() - lipgloss.Height(title)
	if vpWidth < 0 {
		vpWidth = 0
	}
	if vpHeight < 0 {
		vpHeight = 0
	}
	m.LogViewport.Width = vpWidth
	m.LogViewport.Height = vpHeight

	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	box := design.OverlayStyle.Width(overlayWidth - design.OverlayStyle.GetHorizontalBorderSize()).Render(content)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}
