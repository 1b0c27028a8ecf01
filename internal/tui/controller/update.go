package controller

import (
	"custview/internal/tui/model"
	"custview/internal/tui/view"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// mainControllerDispatch is the central message routing function for the TUI application.
// It receives all Bubble Tea messages and directs them to the appropriate handler functions
// based on the message type and current application mode.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg:
		// too frequent or self-referential to log
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.CurrentAppMode = model.ModeQuitting
			return m, tea.Quit
		}
		switch m.CurrentAppMode {
		case model.ModeSearch:
			return handleKeyMsgSearchMode(m, msg)
		case model.ModeEmailModal:
			return handleKeyMsgEmailMode(m, msg)
		case model.ModeNoteInput:
			return handleKeyMsgNoteMode(m, msg)
		default:
			return handleKeyMsgGlobal(m, msg)
		}

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.CustomersLoadedMsg:
		return handleCustomersLoaded(m, msg)
	case model.DetailLoadedMsg:
		return handleDetailLoaded(m, msg)
	case model.StatusUpdatedMsg:
		return handleStatusUpdated(m, msg)
	case model.EmailSentMsg:
		return handleEmailSent(m, msg)
	case model.SyncDoneMsg:
		return handleSyncDone(m, msg)
	case model.MailCountMsg:
		return handleMailCount(m, msg)
	case model.ClipboardResultMsg:
		return handleClipboardResult(m, msg)

	case model.ClearStatusBarMsg:
		// A newer message owns the bar; leave it alone.
		if msg.Seq == m.StatusBarSeq {
			m.StatusBarMessage = ""
		}
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport, cmd = m.LogViewport.Update(msg)
		} else {
			m.DetailViewport, cmd = m.DetailViewport.Update(msg)
		}
		cmds = append(cmds, cmd)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case model.NewLogEntryMsg:
		model.AddRawLineToActivityLog(m, msg.Entry.Format())
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))
		// fall through to the log viewport refresh

	default:
		LogDebug(m, controllerDispatchSubsystem, "Unhandled msg type: %T", msg)
		return forwardToFocusedInput(m, msg)
	}

	if m.ActivityLogDirty {
		atBottom := m.LogViewport.AtBottom()
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
		if atBottom || m.CurrentAppMode != model.ModeLogOverlay {
			m.LogViewport.GotoBottom()
		}
		m.ActivityLogDirty = false
	}

	return m, tea.Batch(cmds...)
}

// forwardToFocusedInput hands non-key messages (cursor blinks and the like)
// to whichever input is active.
func forwardToFocusedInput(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.CurrentAppMode {
	case model.ModeSearch:
		m.SearchInput, cmd = m.SearchInput.Update(msg)
	case model.ModeNoteInput:
		m.NoteInput, cmd = m.NoteInput.Update(msg)
	case model.ModeEmailModal:
		switch m.EmailFocus {
		case model.EmailFieldSubject:
			m.EmailSubject, cmd = m.EmailSubject.Update(msg)
		case model.EmailFieldBody:
			m.EmailBody, cmd = m.EmailBody.Update(msg)
		case model.EmailFieldAttachment:
			m.EmailAttachment, cmd = m.EmailAttachment.Update(msg)
		}
	}
	return m, cmd
}
