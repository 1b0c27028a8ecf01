package model

import (
	"custview/internal/customer"
	"custview/internal/gateway"
	"custview/pkg/logging"
)

// ---- Gateway results ----

type CustomersLoadedMsg struct {
	Gen       uint64
	Query     string
	Customers []customer.Summary
	Err       error
}

type DetailLoadedMsg struct {
	Gen    uint64
	ID     string
	Detail customer.Detail
	Err    error
}

type StatusUpdatedMsg struct {
	ID      string
	Status  customer.Status
	Updated customer.Summary
	Err     error
}

type EmailSentMsg struct {
	Recipient string
	Ack       gateway.EmailAck
	Err       error
}

type SyncDoneMsg struct {
	Err error
}

type MailCountMsg struct {
	Count int
	Err   error
}

type ClipboardResultMsg struct {
	Err error
}

// ---- UI housekeeping ----

type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

type ClearStatusBarMsg struct {
	Seq int
}
