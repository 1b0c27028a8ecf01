package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"custview/internal/customer"
	"custview/internal/gateway"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAPI struct {
	query      string
	statusID   string
	status     customer.Status
	syncErr    error
	detailErr  error
	syncCalled bool
}

func (s *stubAPI) FetchCustomers(_ context.Context, query string) ([]customer.Summary, error) {
	s.query = query
	return []customer.Summary{{ID: "1", Name: "Alice", Color: customer.ColorRed}}, nil
}

func (s *stubAPI) FetchCustomerDetail(_ context.Context, id string) (customer.Detail, error) {
	if s.detailErr != nil {
		return customer.Detail{}, s.detailErr
	}
	return customer.Detail{Fields: []customer.Field{{Key: "name", Value: "Alice"}, {Key: "ID", Value: id}}}, nil
}

func (s *stubAPI) PostStatusUpdate(_ context.Context, id string, status customer.Status) (customer.Summary, error) {
	s.statusID, s.status = id, status
	return customer.Summary{ID: id, Name: "Alice", Color: customer.ColorBlue}, nil
}

func (s *stubAPI) PostEmail(context.Context, gateway.EmailRequest) (gateway.EmailAck, error) {
	return gateway.EmailAck{}, nil
}

func (s *stubAPI) SyncNow(context.Context) error {
	s.syncCalled = true
	return s.syncErr
}

func (s *stubAPI) CountMails(context.Context) (int, error) { return 42, nil }

func call(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent")
	return text.Text
}

func TestDefinitions(t *testing.T) {
	names := map[string]bool{}
	for _, tool := range NewTools(&stubAPI{}).Definitions() {
		names[tool.Name] = true
	}
	for _, want := range []string{ToolCustomerList, ToolCustomerDetail, ToolCustomerSetStatus, ToolMailSync, ToolMailCount} {
		assert.True(t, names[want], want)
	}
}

func TestServerTools_AllHaveHandlers(t *testing.T) {
	for _, st := range NewTools(&stubAPI{}).ServerTools() {
		assert.NotNil(t, st.Handler, st.Tool.Name)
	}
}

func TestHandleCustomerList(t *testing.T) {
	api := &stubAPI{}
	res, err := NewTools(api).HandleCustomerList(context.Background(), call(ToolCustomerList, map[string]interface{}{"name": "ali"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "ali", api.query)

	var payload struct {
		Customers []customer.Summary `json:"customers"`
		Total     int                `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &payload))
	assert.Equal(t, 1, payload.Total)
	assert.Equal(t, "Alice", payload.Customers[0].Name)
	assert.Equal(t, customer.ColorRed, payload.Customers[0].Color)
}

func TestHandleCustomerDetail(t *testing.T) {
	tools := NewTools(&stubAPI{})

	res, err := tools.HandleCustomerDetail(context.Background(), call(ToolCustomerDetail, map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = tools.HandleCustomerDetail(context.Background(), call(ToolCustomerDetail, map[string]interface{}{"id": "7"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Alice","ID":"7"}`, resultText(t, res))
}

func TestHandleCustomerDetail_TransportError(t *testing.T) {
	tools := NewTools(&stubAPI{detailErr: &gateway.TransportError{Op: "fetch detail", StatusCode: 404}})
	res, err := tools.HandleCustomerDetail(context.Background(), call(ToolCustomerDetail, map[string]interface{}{"id": "9"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "customer 9")
}

func TestHandleCustomerSetStatus(t *testing.T) {
	api := &stubAPI{}
	tools := NewTools(api)

	res, err := tools.HandleCustomerSetStatus(context.Background(), call(ToolCustomerSetStatus, map[string]interface{}{"id": "1", "status": "unknown"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Empty(t, api.statusID)

	res, err = tools.HandleCustomerSetStatus(context.Background(), call(ToolCustomerSetStatus, map[string]interface{}{"id": "1", "status": "完了"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "1", api.statusID)
	assert.Equal(t, customer.StatusDone, api.status)
}

func TestHandleMailSyncAndCount(t *testing.T) {
	api := &stubAPI{}
	tools := NewTools(api)

	res, err := tools.HandleMailSync(context.Background(), call(ToolMailSync, nil))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.True(t, api.syncCalled)

	api.syncErr = gateway.ErrSyncFailed
	res, err = tools.HandleMailSync(context.Background(), call(ToolMailSync, nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = tools.HandleMailCount(context.Background(), call(ToolMailCount, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":42}`, resultText(t, res))
}

func TestNewServer_ListsTools(t *testing.T) {
	s := NewServer(&stubAPI{}, "")
	resp := s.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(b), ToolCustomerList)
	assert.Contains(t, string(b), ToolCustomerSetStatus)
}
