package model

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// FocusEmailField moves input focus inside the email form. idx wraps around
// in both directions.
func (m *Model) FocusEmailField(idx int) tea.Cmd {
	idx = ((idx % emailFieldCount) + emailFieldCount) % emailFieldCount
	m.EmailFocus = idx
	m.EmailSubject.Blur()
	m.EmailBody.Blur()
	m.EmailAttachment.Blur()
	switch idx {
	case EmailFieldBody:
		return m.EmailBody.Focus()
	case EmailFieldAttachment:
		return m.EmailAttachment.Focus()
	default:
		return m.EmailSubject.Focus()
	}
}

// ResetEmailForm clears and blurs every email input.
func (m *Model) ResetEmailForm() {
	m.EmailSubject.Reset()
	m.EmailBody.Reset()
	m.EmailAttachment.Reset()
	m.EmailSubject.Blur()
	m.EmailBody.Blur()
	m.EmailAttachment.Blur()
	m.EmailFocus = EmailFieldSubject
}

// EmailRecipient returns the address stored under the configured email
// field of the selected customer's loaded detail.
func (m *Model) EmailRecipient() (string, bool) {
	d, ok := m.SelectedDetail()
	if !ok {
		return "", false
	}
	addr, ok := d.Get(m.EmailField)
	addr = strings.TrimSpace(addr)
	return addr, ok && addr != ""
}
