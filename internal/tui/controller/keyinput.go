package controller

import (
	"strings"

	"custview/internal/gateway"
	"custview/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgSearchMode filters the list as the user types. Every change
// of the query fires a list reload; only the newest response is applied.
func handleKeyMsgSearchMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.SearchInput.Blur()
		m.CurrentAppMode = model.ModeMain
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(keyMsg)
	cmds = append(cmds, cmd)

	query := strings.ToLower(strings.TrimSpace(m.SearchInput.Value()))
	if query != m.Query {
		m.Query = query
		m.Cursor = 0
		cmds = append(cmds, reloadList(m))
	}
	return m, tea.Batch(cmds...)
}

// handleKeyMsgEmailMode drives the email modal: tab cycles fields, ctrl+s
// sends, esc closes. Everything else goes to the focused field.
func handleKeyMsgEmailMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.Keys.Esc):
		m.ResetEmailForm()
		m.CurrentAppMode = model.ModeMain
		return m, nil

	case key.Matches(keyMsg, m.Keys.NextField):
		return m, m.FocusEmailField(m.EmailFocus + 1)

	case keyMsg.Type == tea.KeyShiftTab:
		return m, m.FocusEmailField(m.EmailFocus - 1)

	case key.Matches(keyMsg, m.Keys.SendEmail):
		return m, submitEmail(m)
	}

	return forwardToFocusedInput(m, keyMsg)
}

// submitEmail sends the form to the selected customer's loaded address.
func submitEmail(m *model.Model) tea.Cmd {
	if m.SendingEmail {
		return nil
	}
	if _, ok := m.Selection.ID(); !ok {
		return m.SetStatusBar(model.AlertNoSelection, model.StatusBarWarning)
	}
	recipient, ok := m.EmailRecipient()
	if !ok {
		LogWarn(controllerSubsystem, "Email not sent: field %q missing from the loaded detail", m.EmailField)
		return m.SetStatusBar(model.AlertNoRecipient, model.StatusBarWarning)
	}

	req := gateway.EmailRequest{
		Subject:   m.EmailSubject.Value(),
		Body:      m.EmailBody.Value(),
		Recipient: recipient,
	}
	m.SendingEmail = true
	LogInfo(controllerSubsystem, "Sending email to %s", recipient)
	return model.SendEmailCmd(m.API, req, strings.TrimSpace(m.EmailAttachment.Value()))
}

// handleKeyMsgNoteMode collects a one-line record note for the selected
// customer. Notes are written to the log only.
func handleKeyMsgNoteMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.Type {
	case tea.KeyEsc:
		m.NoteInput.Blur()
		m.NoteInput.Reset()
		m.CurrentAppMode = model.ModeMain
		return m, nil

	case tea.KeyEnter:
		note := strings.TrimSpace(m.NoteInput.Value())
		m.NoteInput.Blur()
		m.NoteInput.Reset()
		m.CurrentAppMode = model.ModeMain
		if note == "" {
			return m, nil
		}
		id, ok := m.Selection.ID()
		if !ok {
			return m, m.SetStatusBar(model.AlertNoSelection, model.StatusBarWarning)
		}
		LogInfo(recordSubsystem, "Note for customer %s: %s", id, note)
		return m, m.SetStatusBar("note recorded", model.StatusBarSuccess)
	}

	var cmd tea.Cmd
	m.NoteInput, cmd = m.NoteInput.Update(keyMsg)
	return m, cmd
}
