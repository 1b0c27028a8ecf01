// Package gateway wraps the customer records HTTP API.
//
// Endpoints:
//
//	GET  /customers?name={q}   list/search summaries
//	GET  /customer/{id}        free-form detail record
//	POST /update_status/{id}   JSON {"status": label}, returns the updated summary
//	POST /send_email           multipart: subject, body, receiverEmail, attachment
//	POST /sync_now             trigger a mail sync
//	GET  /count                number of stored mails
//
// Any non-2xx response or network failure surfaces as a *TransportError.
// The client never retries; callers decide what a failure means for them.
package gateway
