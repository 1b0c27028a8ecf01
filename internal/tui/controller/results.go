package controller

import (
	"fmt"

	"custview/internal/tui/model"
	"custview/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// handleCustomersLoaded replaces the whole list with the newest response.
// Responses from superseded requests are dropped.
func handleCustomersLoaded(m *model.Model, msg model.CustomersLoadedMsg) (*model.Model, tea.Cmd) {
	if !m.FinishListLoad(msg.Gen) {
		LogDebug(m, controllerSubsystem, "Dropping stale customer list (gen %d)", msg.Gen)
		return m, nil
	}
	if msg.Err != nil {
		LogError(controllerSubsystem, msg.Err, "Failed to load customers")
		return m, m.SetStatusBar("failed to load customers", model.StatusBarError)
	}

	m.Customers = msg.Customers
	m.ClampCursor()
	LogDebug(m, controllerSubsystem, "Loaded %d customers for query %q", len(msg.Customers), msg.Query)
	return m, nil
}

// handleDetailLoaded shows a detail record if it answers the latest
// selection. Anything older is discarded.
func handleDetailLoaded(m *model.Model, msg model.DetailLoadedMsg) (*model.Model, tea.Cmd) {
	if !m.FinishDetailLoad(msg.Gen) || !m.Selection.Is(msg.ID) {
		LogDebug(m, controllerSubsystem, "Dropping stale detail for customer %s (gen %d)", msg.ID, msg.Gen)
		return m, nil
	}
	if msg.Err != nil {
		LogError(controllerSubsystem, msg.Err, "Failed to load details of customer %s", msg.ID)
		return m, m.SetStatusBar("failed to load customer details", model.StatusBarError)
	}

	detail := msg.Detail
	m.Detail = &detail
	m.DetailFor = msg.ID
	m.DetailViewport.SetContent(view.DetailText(detail))
	m.DetailViewport.GotoTop()
	return m, nil
}

// handleStatusUpdated ends the status round trip. The flow always returns to
// idle; only a successful update reloads the list.
func handleStatusUpdated(m *model.Model, msg model.StatusUpdatedMsg) (*model.Model, tea.Cmd) {
	m.StatusFlow = model.FlowIdle
	m.PendingFor = ""

	if msg.Err != nil {
		LogError(controllerSubsystem, msg.Err, "Failed to set status of customer %s to %s", msg.ID, msg.Status.Label())
		return m, m.SetStatusBar("status update failed", model.StatusBarError)
	}

	LogInfo(controllerSubsystem, "Customer %s is now %s", msg.ID, msg.Status.Label())
	return m, tea.Batch(
		m.SetStatusBar(fmt.Sprintf("status set to %s", msg.Status.Label()), model.StatusBarSuccess),
		reloadList(m),
	)
}

func handleEmailSent(m *model.Model, msg model.EmailSentMsg) (*model.Model, tea.Cmd) {
	m.SendingEmail = false
	if msg.Err != nil {
		LogError(controllerSubsystem, msg.Err, "Failed to send email to %s", msg.Recipient)
		return m, m.SetStatusBar("email could not be sent", model.StatusBarError)
	}

	LogInfo(controllerSubsystem, "Email sent to %s", msg.Recipient)
	if m.CurrentAppMode == model.ModeEmailModal {
		m.CurrentAppMode = model.ModeMain
	}
	m.ResetEmailForm()
	return m, m.SetStatusBar("email sent to "+msg.Recipient, model.StatusBarSuccess)
}

// handleSyncDone refreshes the mail count after a successful sync.
func handleSyncDone(m *model.Model, msg model.SyncDoneMsg) (*model.Model, tea.Cmd) {
	m.Syncing = false
	if msg.Err != nil {
		LogError(controllerSubsystem, msg.Err, "Mail sync failed")
		return m, m.SetStatusBar("mail sync failed", model.StatusBarError)
	}
	LogInfo(controllerSubsystem, "Mail sync finished")
	return m, tea.Batch(
		m.SetStatusBar("mails synced", model.StatusBarSuccess),
		model.CountMailsCmd(m.API),
	)
}

func handleMailCount(m *model.Model, msg model.MailCountMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		LogError(controllerSubsystem, msg.Err, "Failed to count mails")
		return m, nil
	}
	m.MailCount = msg.Count
	m.MailCountKnown = true
	return m, nil
}

func handleClipboardResult(m *model.Model, msg model.ClipboardResultMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		LogError(controllerSubsystem, msg.Err, "Clipboard write failed")
		return m, m.SetStatusBar("copy failed", model.StatusBarError)
	}
	return m, m.SetStatusBar("copied to clipboard", model.StatusBarSuccess)
}
