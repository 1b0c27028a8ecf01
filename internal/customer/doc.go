// Package customer holds the records custview exchanges with the customer
// API: list summaries, free-form detail records and the workflow status enum.
//
// Summaries are immutable once decoded and are replaced wholesale on every
// list reload. A Detail keeps the server's key order so that panels render
// fields the way the backend lists them.
package customer
