package components

import (
	"strings"

	"custview/internal/tui/design"
	"custview/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// PanelType defines the visual style of a panel
type PanelType int

const (
	PanelTypeDefault PanelType = iota
	PanelTypeError
	PanelTypeInfo
)

// Panel represents a reusable bordered panel with a title line.
type Panel struct {
	Title   string
	Content string
	Width   int
	Height  int
	Focused bool
	Type    PanelType
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title:  title,
		Width:  design.MinPanelWidth,
		Height: design.MinPanelHeight,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithDimensions sets the panel dimensions
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithType sets the panel type for styling
func (p *Panel) WithType(panelType PanelType) *Panel {
	p.Type = panelType
	return p
}

// SetFocused updates the focus state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// Render returns the styled panel. Content that does not fit is cut, the
// last visible line becoming "...".
func (p *Panel) Render() string {
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}
	if p.Height < design.MinPanelHeight {
		p.Height = design.MinPanelHeight
	}

	style := p.getStyle()
	innerWidth := p.Width - style.GetHorizontalFrameSize()
	innerHeight := p.Height - style.GetVerticalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	var lines []string
	if p.Title != "" {
		lines = append(lines, design.PanelTitleStyle.Render(utils.TruncateString(p.Title, innerWidth)))
	}

	if p.Content != "" {
		contentLines := strings.Split(p.Content, "\n")
		available := innerHeight - len(lines)
		if available > 0 {
			if len(contentLines) > available {
				contentLines = append(contentLines[:available-1:available-1], "...")
			}
			for _, line := range contentLines {
				if lipgloss.Width(line) > innerWidth {
					line = lipgloss.NewStyle().MaxWidth(innerWidth).Render(line)
				}
				lines = append(lines, line)
			}
		}
	}

	for len(lines) < innerHeight {
		lines = append(lines, "")
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	return style.
		Width(innerWidth + style.GetHorizontalPadding()).
		Height(innerHeight + style.GetVerticalPadding()).
		Render(strings.Join(lines, "\n"))
}

// getStyle returns the appropriate style based on panel state
func (p *Panel) getStyle() lipgloss.Style {
	base := design.PanelStyle
	if p.Focused {
		base = design.PanelFocusedStyle
	}
	switch p.Type {
	case PanelTypeError:
		return base.BorderForeground(design.ColorError)
	case PanelTypeInfo:
		return base.BorderForeground(design.ColorInfo)
	default:
		return base
	}
}

// SplitVertical divides width between a left and right panel.
func SplitVertical(width int, leftRatio float64) (left, right int) {
	if width < design.MinPanelWidth*2 {
		width = design.MinPanelWidth * 2
	}
	if leftRatio <= 0 || leftRatio >= 1 {
		leftRatio = 0.5
	}
	left = int(float64(width) * leftRatio)
	if left < design.MinPanelWidth {
		left = design.MinPanelWidth
	}
	right = width - left
	if right < design.MinPanelWidth {
		right = design.MinPanelWidth
		left = width - right
	}
	return left, right
}
