package view

import (
	"strings"

	"custview/internal/tui/design"
	"custview/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderHelpOverlay(m *model.Model) string {
	title := design.TitleStyle.Render("KEYBOARD SHORTCUTS")

	var lines []string
	for _, group := range m.Keys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			lines = append(lines, design.PanelTitleStyle.Render(lipgloss.NewStyle().Width(12).Render(h.Key))+h.Desc)
		}
		lines = append(lines, "")
	}
	lines = append(lines, design.DimStyle.Render("esc or ? to close"))

	box := design.OverlayStyle.Render(title + "\n" + strings.Join(lines, "\n"))
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}

// renderEmailModal draws the reply form. The recipient line reflects what a
// send would use right now.
func renderEmailModal(m *model.Model) string {
	width := int(float64(m.Width) * 0.7)
	if width < 40 {
		width = 40
	}
	inputWidth := width - design.OverlayStyle.GetHorizontalFrameSize() - design.InputStyle.GetHorizontalFrameSize()
	m.EmailSubject.Width = inputWidth
	m.EmailAttachment.Width = inputWidth
	m.EmailBody.SetWidth(inputWidth)

	recipient := design.TextWarningStyle.Render("(no email address loaded)")
	if addr, ok := m.EmailRecipient(); ok {
		recipient = addr
	}

	field := func(idx int, label, view string) string {
		style := design.InputStyle
		if m.EmailFocus == idx {
			style = design.InputFocusedStyle
		}
		return design.TextSecondaryStyle.Render(label) + "\n" + style.Render(view)
	}

	parts := []string{
		design.TitleStyle.Render("Reply by email"),
		"To: " + recipient,
		field(model.EmailFieldSubject, "Subject", m.EmailSubject.View()),
		field(model.EmailFieldBody, "Body", m.EmailBody.View()),
		field(model.EmailFieldAttachment, "Attachment", m.EmailAttachment.View()),
	}
	if m.SendingEmail {
		parts = append(parts, m.Spinner.View()+" sending...")
	}
	if m.StatusBarMessage != "" {
		parts = append(parts, statusLine(m))
	}
	parts = append(parts, design.DimStyle.Render("tab next field  •  ctrl+s send  •  esc close"))

	box := design.OverlayStyle.Width(width - design.OverlayStyle.GetHorizontalBorderSize()).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}

func renderNoteInput(m *model.Model, width int) string {
	return lipgloss.NewStyle().MaxWidth(width).Render("Note: " + m.NoteInput.View())
}

func statusLine(m *model.Model) string {
	switch m.StatusBarMessageType {
	case model.StatusBarError:
		return design.TextErrorStyle.Render(m.StatusBarMessage)
	case model.StatusBarWarning:
		return design.AlertStyle.Render(m.StatusBarMessage)
	case model.StatusBarSuccess:
		return design.TextSuccessStyle.Render(m.StatusBarMessage)
	default:
		return design.TextInfoStyle.Render(m.StatusBarMessage)
	}
}
