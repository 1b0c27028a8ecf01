package view

import (
	"fmt"
	"strings"

	"custview/internal/customer"
	"custview/internal/tui/components"
	"custview/internal/tui/design"
	"custview/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// Lines taken by header, search bar, status buttons, status bar and help.
const chromeHeight = 5

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.TextSecondaryStyle.Render("Bye.")
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	case model.ModeEmailModal:
		return renderEmailModal(m)
	}
	if m.Width == 0 || m.Height == 0 {
		return design.TextSecondaryStyle.Render("Initializing... (waiting for window size)")
	}

	bodyHeight := m.Height - chromeHeight
	if m.CurrentAppMode == model.ModeNoteInput {
		bodyHeight--
	}
	if bodyHeight < design.MinPanelHeight {
		bodyHeight = design.MinPanelHeight
	}

	parts := []string{
		renderHeader(m, m.Width),
		renderSearchBar(m, m.Width),
		renderBody(m, m.Width, bodyHeight),
		renderStatusButtons(m),
		renderStatusBar(m, m.Width),
		m.Help.View(m.Keys),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderHeader(m *model.Model, width int) string {
	left := "custview"
	if m.APIURL != "" {
		left += "  •  " + m.APIURL
	}
	right := "mails: ?"
	if m.MailCountKnown {
		right = fmt.Sprintf("mails: %d", m.MailCount)
	}
	if m.Syncing {
		right = m.Spinner.View() + " syncing  " + right
	}
	inner := width - design.HeaderStyle.GetHorizontalFrameSize()
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return design.HeaderStyle.Width(width).MaxWidth(width).Render(left + strings.Repeat(" ", gap) + right)
}

func renderSearchBar(m *model.Model, width int) string {
	if m.CurrentAppMode == model.ModeSearch {
		return lipgloss.NewStyle().MaxWidth(width).Render(m.SearchInput.View())
	}
	if m.Query == "" {
		return design.DimStyle.Render("/ search by name")
	}
	return design.TextSecondaryStyle.Render("filter: " + m.Query + "  (/ to change)")
}

func renderBody(m *model.Model, width, height int) string {
	leftWidth, rightWidth := components.SplitVertical(width, design.ListPanelRatio)

	listPanel := components.NewPanel(fmt.Sprintf("Customers (%d)", len(m.Customers))).
		WithDimensions(leftWidth, height).
		SetFocused(m.CurrentAppMode == model.ModeMain || m.CurrentAppMode == model.ModeSearch)
	innerW := leftWidth - design.PanelStyle.GetHorizontalFrameSize()
	innerH := height - design.PanelStyle.GetVerticalFrameSize() - 1
	listPanel.WithContent(RenderCustomerList(m, innerW, innerH))

	detailTitle := "Detail"
	if id, ok := m.Selection.ID(); ok {
		detailTitle = "Detail #" + id
	}
	detailPanel := components.NewPanel(detailTitle).WithDimensions(rightWidth, height)
	innerW = rightWidth - design.PanelStyle.GetHorizontalFrameSize()
	innerH = height - design.PanelStyle.GetVerticalFrameSize() - 1
	detailPanel.WithContent(RenderDetail(m, innerW, innerH))

	body := lipgloss.JoinHorizontal(lipgloss.Top, listPanel.Render(), detailPanel.Render())
	if m.CurrentAppMode == model.ModeNoteInput {
		return lipgloss.JoinVertical(lipgloss.Left, body, renderNoteInput(m, width))
	}
	return body
}

// renderStatusButtons draws one button per status. They are drawn disabled
// while nothing is selected or an update is in flight.
func renderStatusButtons(m *model.Model) string {
	_, selected := m.Selection.ID()
	enabled := selected && m.StatusFlow == model.FlowIdle

	buttons := make([]string, 0, len(customer.AllStatuses)+1)
	for i, s := range customer.AllStatuses {
		label := fmt.Sprintf("%d %s", i+1, s.Label())
		style := design.ButtonStyle
		if !enabled {
			style = design.ButtonDisabledStyle
		}
		buttons = append(buttons, style.Render(label))
	}
	if m.StatusFlow == model.FlowAwaitingUpdate {
		buttons = append(buttons, design.DimStyle.Render(m.Spinner.View()+" updating "+m.PendingStatus.Label()))
	}
	return strings.Join(buttons, " ")
}

func renderStatusBar(m *model.Model, width int) string {
	left := m.CurrentAppMode.String()
	if id, ok := m.Selection.ID(); ok {
		left += "  •  selected #" + id
	}
	right := "? help  •  L log"
	if m.DebugMode {
		right = "debug  •  " + right
	}
	return components.NewStatusBar(width).
		WithLeftText(left).
		WithRightText(right).
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		Render()
}
