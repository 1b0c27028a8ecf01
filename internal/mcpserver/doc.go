// Package mcpserver exposes the customer records backend as Model Context
// Protocol tools, so that an assistant can list customers, read a record,
// change its status and trigger a mail sync.
//
// The server speaks stdio by default and SSE when an address is given.
package mcpserver
