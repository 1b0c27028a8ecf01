package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"custview/internal/customer"
	"custview/internal/gateway"
	"custview/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const toolsSubsystem = "MCPTools"

// Tool names.
const (
	ToolCustomerList      = "customer_list"
	ToolCustomerDetail    = "customer_detail"
	ToolCustomerSetStatus = "customer_set_status"
	ToolMailSync          = "mail_sync"
	ToolMailCount         = "mail_count"
)

// Tools turns gateway operations into MCP tool handlers.
type Tools struct {
	api gateway.API
}

// NewTools creates the tool set backed by api.
func NewTools(api gateway.API) *Tools {
	return &Tools{api: api}
}

// Definitions returns the tool schemas.
func (t *Tools) Definitions() []mcp.Tool {
	statuses := make([]string, 0, len(customer.AllStatuses))
	for _, s := range customer.AllStatuses {
		statuses = append(statuses, s.Label())
	}

	return []mcp.Tool{
		mcp.NewTool(ToolCustomerList,
			mcp.WithDescription("List customers with their color label, optionally filtered by name"),
			mcp.WithString("name",
				mcp.Description("Case-insensitive name filter; empty lists everyone"),
			),
		),
		mcp.NewTool(ToolCustomerDetail,
			mcp.WithDescription("Get the full record of one customer"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Customer ID"),
			),
		),
		mcp.NewTool(ToolCustomerSetStatus,
			mcp.WithDescription("Change the work status of a customer"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Customer ID"),
			),
			mcp.WithString("status",
				mcp.Required(),
				mcp.Description("New status label"),
				mcp.Enum(statuses...),
			),
		),
		mcp.NewTool(ToolMailSync,
			mcp.WithDescription("Fetch new customer mails into the backend"),
		),
		mcp.NewTool(ToolMailCount,
			mcp.WithDescription("Count the mails stored by the backend"),
		),
	}
}

// ServerTools pairs every definition with its handler.
func (t *Tools) ServerTools() []server.ServerTool {
	handlers := map[string]server.ToolHandlerFunc{
		ToolCustomerList:      t.HandleCustomerList,
		ToolCustomerDetail:    t.HandleCustomerDetail,
		ToolCustomerSetStatus: t.HandleCustomerSetStatus,
		ToolMailSync:          t.HandleMailSync,
		ToolMailCount:         t.HandleMailCount,
	}

	defs := t.Definitions()
	out := make([]server.ServerTool, 0, len(defs))
	for _, def := range defs {
		out = append(out, server.ServerTool{Tool: def, Handler: handlers[def.Name]})
	}
	return out
}

// HandleCustomerList handles the customer_list tool call
func (t *Tools) HandleCustomerList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	customers, err := t.api.FetchCustomers(ctx, name)
	if err != nil {
		return toolError(err, "Failed to list customers"), nil
	}
	if customers == nil {
		customers = []customer.Summary{}
	}
	return jsonResult(map[string]interface{}{
		"customers": customers,
		"total":     len(customers),
	})
}

// HandleCustomerDetail handles the customer_detail tool call
func (t *Tools) HandleCustomerDetail(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil
	}
	detail, err := t.api.FetchCustomerDetail(ctx, id)
	if err != nil {
		return toolError(err, "Failed to get customer %s", id), nil
	}
	return jsonResult(detail)
}

// HandleCustomerSetStatus handles the customer_set_status tool call
func (t *Tools) HandleCustomerSetStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil
	}
	raw, err := req.RequireString("status")
	if err != nil {
		return mcp.NewToolResultError("status is required"), nil
	}
	status, err := customer.ParseStatus(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	updated, err := t.api.PostStatusUpdate(ctx, id, status)
	if err != nil {
		return toolError(err, "Failed to set status of customer %s", id), nil
	}
	logging.Info(toolsSubsystem, "Customer %s set to %s", id, status.Label())
	return jsonResult(updated)
}

// HandleMailSync handles the mail_sync tool call
func (t *Tools) HandleMailSync(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := t.api.SyncNow(ctx); err != nil {
		return toolError(err, "Mail sync failed"), nil
	}
	return mcp.NewToolResultText("Mail sync finished"), nil
}

// HandleMailCount handles the mail_count tool call
func (t *Tools) HandleMailCount(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := t.api.CountMails(ctx)
	if err != nil {
		return toolError(err, "Failed to count mails"), nil
	}
	return jsonResult(map[string]int{"count": n})
}

func toolError(err error, format string, args ...interface{}) *mcp.CallToolResult {
	msg := fmt.Sprintf(format, args...)
	logging.Error(toolsSubsystem, err, "%s", msg)
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", msg, err))
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode tool result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}
