package controller

import (
	"custview/internal/customer"
	"custview/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// reloadList refetches the whole customer list for the current query.
func reloadList(m *model.Model) tea.Cmd {
	gen := m.BeginListLoad()
	LogDebug(m, controllerSubsystem, "Loading customers (query %q, gen %d)", m.Query, gen)
	return model.FetchCustomersCmd(m.API, m.Query, gen)
}

// selectCustomer makes id the selection and requests its detail record.
// A detail request still in flight for an earlier selection is cancelled.
func selectCustomer(m *model.Model, id string) tea.Cmd {
	m.Selection.Select(id)
	ctx, gen := m.BeginDetailLoad(id)
	LogDebug(m, controllerSubsystem, "Selected customer %s (gen %d)", id, gen)
	return model.FetchDetailCmd(ctx, m.API, id, gen)
}

// requestStatusChange starts the status round trip for the selected
// customer. Without a selection it only raises the alert.
func requestStatusChange(m *model.Model, status customer.Status) tea.Cmd {
	id, ok := m.Selection.ID()
	if !ok {
		LogWarn(controllerSubsystem, "Status %s requested with no customer selected", status.Label())
		return m.SetStatusBar(model.AlertNoSelection, model.StatusBarWarning)
	}
	if m.StatusFlow == model.FlowAwaitingUpdate {
		return m.SetStatusBar("a status update is already in progress", model.StatusBarWarning)
	}

	m.StatusFlow = model.FlowAwaitingUpdate
	m.PendingStatus = status
	m.PendingFor = id
	LogInfo(controllerSubsystem, "Setting status of customer %s to %s", id, status.Label())
	return model.PostStatusCmd(m.API, id, status)
}

// startSync asks the backend to fetch new mails unless a sync is running.
func startSync(m *model.Model) tea.Cmd {
	if m.Syncing {
		return m.SetStatusBar("mail sync already running", model.StatusBarInfo)
	}
	m.Syncing = true
	LogInfo(controllerSubsystem, "Syncing mails")
	return model.SyncNowCmd(m.API)
}
