package controller

import (
	"strings"

	"custview/internal/customer"
	"custview/internal/tui/model"
	"custview/internal/tui/view"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgGlobal processes key presses when no input has focus: list
// navigation, selection, status buttons and overlay toggles.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	// --- Overlay-specific key handling --------------------------------------
	if m.CurrentAppMode == model.ModeLogOverlay {
		switch {
		case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = model.ModeMain
			return m, nil
		case key.Matches(keyMsg, m.Keys.CopyDetail):
			return m, model.CopyToClipboardCmd(m.Clipboard, strings.Join(m.ActivityLog, "\n"))
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		default:
			var cmd tea.Cmd
			m.LogViewport, cmd = m.LogViewport.Update(keyMsg)
			return m, cmd
		}
	}

	if m.CurrentAppMode == model.ModeHelpOverlay {
		switch {
		case key.Matches(keyMsg, m.Keys.Help), key.Matches(keyMsg, m.Keys.Esc):
			m.CurrentAppMode = model.ModeMain
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		}
		return m, nil
	}

	for i, b := range m.Keys.Status {
		if key.Matches(keyMsg, b) {
			return m, requestStatusChange(m, customer.AllStatuses[i])
		}
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)

	case key.Matches(keyMsg, m.Keys.Up):
		m.Cursor--
		m.ClampCursor()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Down):
		m.Cursor++
		m.ClampCursor()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Select):
		if len(m.Customers) == 0 {
			return m, nil
		}
		m.ClampCursor()
		return m, selectCustomer(m, m.Customers[m.Cursor].ID)

	case key.Matches(keyMsg, m.Keys.Search):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeSearch
		m.SearchInput.SetValue(m.Query)
		m.SearchInput.CursorEnd()
		return m, m.SearchInput.Focus()

	case key.Matches(keyMsg, m.Keys.Reload):
		return m, reloadList(m)

	case key.Matches(keyMsg, m.Keys.Email):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeEmailModal
		return m, m.FocusEmailField(model.EmailFieldSubject)

	case key.Matches(keyMsg, m.Keys.Note):
		if _, ok := m.Selection.ID(); !ok {
			return m, m.SetStatusBar(model.AlertNoSelection, model.StatusBarWarning)
		}
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeNoteInput
		m.NoteInput.Reset()
		return m, m.NoteInput.Focus()

	case key.Matches(keyMsg, m.Keys.Sync):
		return m, startSync(m)

	case key.Matches(keyMsg, m.Keys.CopyDetail):
		if _, ok := m.Selection.ID(); !ok {
			return m, m.SetStatusBar(model.AlertNoSelection, model.StatusBarWarning)
		}
		d, ok := m.SelectedDetail()
		if !ok {
			return m, m.SetStatusBar("details are not loaded yet", model.StatusBarWarning)
		}
		return m, model.CopyToClipboardCmd(m.Clipboard, view.DetailText(*d))

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil
	}

	// pgup/pgdown and friends scroll the detail panel
	var cmd tea.Cmd
	m.DetailViewport, cmd = m.DetailViewport.Update(keyMsg)
	return m, cmd
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	LogInfo(controllerSubsystem, "Quitting")
	return m, tea.Quit
}
