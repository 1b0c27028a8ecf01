package model

import (
	"context"
	"time"

	"custview/internal/customer"
	"custview/internal/gateway"
	"custview/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// FetchCustomersCmd loads the customer list for query.
func FetchCustomersCmd(api gateway.API, query string, gen uint64) tea.Cmd {
	return func() tea.Msg {
		customers, err := api.FetchCustomers(context.Background(), query)
		return CustomersLoadedMsg{Gen: gen, Query: query, Customers: customers, Err: err}
	}
}

// FetchDetailCmd loads one customer's detail record under ctx so a newer
// selection can cancel it.
func FetchDetailCmd(ctx context.Context, api gateway.API, id string, gen uint64) tea.Cmd {
	return func() tea.Msg {
		detail, err := api.FetchCustomerDetail(ctx, id)
		return DetailLoadedMsg{Gen: gen, ID: id, Detail: detail, Err: err}
	}
}

// PostStatusCmd sends a status change for a customer.
func PostStatusCmd(api gateway.API, id string, status customer.Status) tea.Cmd {
	return func() tea.Msg {
		updated, err := api.PostStatusUpdate(context.Background(), id, status)
		return StatusUpdatedMsg{ID: id, Status: status, Updated: updated, Err: err}
	}
}

// SendEmailCmd submits the email form. attachmentPath may be empty.
func SendEmailCmd(api gateway.API, req gateway.EmailRequest, attachmentPath string) tea.Cmd {
	return func() tea.Msg {
		if attachmentPath != "" {
			att, f, err := gateway.AttachmentFromFile(attachmentPath)
			if err != nil {
				return EmailSentMsg{Recipient: req.Recipient, Err: err}
			}
			defer f.Close()
			req.Attachment = att
		}
		ack, err := api.PostEmail(context.Background(), req)
		return EmailSentMsg{Recipient: req.Recipient, Ack: ack, Err: err}
	}
}

// SyncNowCmd asks the backend to pull new mails.
func SyncNowCmd(api gateway.API) tea.Cmd {
	return func() tea.Msg {
		return SyncDoneMsg{Err: api.SyncNow(context.Background())}
	}
}

// CountMailsCmd fetches the stored mail count for the header.
func CountMailsCmd(api gateway.API) tea.Cmd {
	return func() tea.Msg {
		n, err := api.CountMails(context.Background())
		return MailCountMsg{Count: n, Err: err}
	}
}

// CopyToClipboardCmd writes text using the configured clipboard writer.
func CopyToClipboardCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return ClipboardResultMsg{Err: write(text)}
	}
}

// ListenForLogEntriesCmd waits for the next log entry from the logging package.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// ClearStatusBarAfter schedules the status bar message seq to be cleared.
func ClearStatusBarAfter(d time.Duration, seq int) tea.Cmd {
	if d <= 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusBarMsg{Seq: seq}
	})
}
