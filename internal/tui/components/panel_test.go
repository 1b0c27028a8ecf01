package components

import (
	"strings"
	"testing"

	"custview/internal/tui/design"
	"custview/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPanel_Render_EdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		title   string
		content string
	}{
		{
			name:    "zero dimensions",
			width:   0,
			height:  0,
			title:   "Customers",
			content: "山田商店",
		},
		{
			name:    "negative dimensions",
			width:   -10,
			height:  -5,
			title:   "Customers",
			content: "山田商店",
		},
		{
			name:    "empty content",
			width:   40,
			height:  10,
			title:   "Detail",
			content: "",
		},
		{
			name:    "very long content",
			width:   20,
			height:  5,
			title:   "Detail",
			content: strings.Repeat("住所: 東京都千代田区丸の内一丁目 ", 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := NewPanel(tt.title).
				WithContent(tt.content).
				WithDimensions(tt.width, tt.height)

			output := panel.Render()

			assert.NotEmpty(t, output)
			assert.GreaterOrEqual(t, panel.Width, design.MinPanelWidth)
			assert.GreaterOrEqual(t, panel.Height, design.MinPanelHeight)
			for _, line := range strings.Split(output, "\n") {
				assert.LessOrEqual(t, lipgloss.Width(line), panel.Width)
			}
		})
	}
}

func TestPanel_Render_OverflowMarker(t *testing.T) {
	content := "Line 1\nLine 2\nLine 3\nLine 4\nLine 5\nLine 6\nLine 7\nLine 8"
	output := NewPanel("Detail").WithContent(content).WithDimensions(30, 6).Render()

	assert.Contains(t, output, "Line 1")
	assert.Contains(t, output, "...")
	assert.NotContains(t, output, "Line 8")
	assert.Equal(t, 6, lipgloss.Height(output))
}

func TestPanel_Types(t *testing.T) {
	for _, pt := range []PanelType{PanelTypeDefault, PanelTypeError, PanelTypeInfo} {
		for _, focused := range []bool{false, true} {
			output := NewPanel("Customers").
				WithType(pt).
				SetFocused(focused).
				WithDimensions(40, 10).
				WithContent("content").
				Render()
			assert.NotEmpty(t, output)
		}
	}
}

func TestSplitVertical(t *testing.T) {
	left, right := SplitVertical(100, design.ListPanelRatio)
	assert.Equal(t, 40, left)
	assert.Equal(t, 60, right)

	left, right = SplitVertical(10, 0.9)
	assert.Equal(t, design.MinPanelWidth*2, left+right)
	assert.GreaterOrEqual(t, right, design.MinPanelWidth)

	left, right = SplitVertical(80, 0)
	assert.Equal(t, 40, left)
	assert.Equal(t, 40, right)
}

func TestStatusBar_Render(t *testing.T) {
	plain := NewStatusBar(60).WithLeftText("custview").WithRightText("mails: 3").Render()
	assert.Contains(t, plain, "custview")
	assert.Contains(t, plain, "mails: 3")

	msg := NewStatusBar(60).
		WithLeftText("custview").
		WithMessage(model.AlertNoSelection, model.StatusBarWarning).
		Render()
	assert.Contains(t, msg, model.AlertNoSelection)
	assert.NotContains(t, msg, "custview")

	empty := NewStatusBar(60).WithLeftText("custview").WithMessage("", model.StatusBarError).Render()
	assert.Contains(t, empty, "custview")

	narrow := NewStatusBar(12).WithMessage("a very long message that cannot fit", model.StatusBarInfo).Render()
	assert.LessOrEqual(t, lipgloss.Width(narrow), 12)
}
