package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"custview/internal/customer"
	"custview/internal/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sample = []customer.Summary{
	{ID: "1", Name: "Alice", Color: customer.ColorRed},
	{ID: "2", Name: "山田商店", Color: customer.ColorNone},
}

func TestParseOutputFormat(t *testing.T) {
	for _, s := range []string{"table", "json", "yaml"} {
		f, err := ParseOutputFormat(s)
		require.NoError(t, err)
		assert.Equal(t, OutputFormat(s), f)
	}
	_, err := ParseOutputFormat("xml")
	assert.Error(t, err)
}

func TestPrintCustomers_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatTable, false).PrintCustomers(sample))

	out := buf.String()
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "山田商店")
	assert.Contains(t, out, "赤")
	assert.Contains(t, out, "Total:")
}

func TestPrintCustomers_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatTable, false).PrintCustomers(nil))
	assert.Contains(t, buf.String(), "No customers found")

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, OutputFormatTable, true).PrintCustomers(nil))
	assert.Empty(t, buf.String())
}

func TestPrintCustomers_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatJSON, false).PrintCustomers(sample))

	var got []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0]["ID"])
	assert.Equal(t, "赤", got[0]["color"])
}

func TestPrintDetail_KeepsFieldOrder(t *testing.T) {
	d := customer.Detail{Fields: []customer.Field{
		{Key: "name", Value: "Alice"},
		{Key: "age", Value: "30"},
		{Key: "email", Value: "alice@example.com"},
	}}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatTable, false).PrintDetail(d))
	out := buf.String()
	assert.Less(t, strings.Index(out, "name"), strings.Index(out, "age"))
	assert.Less(t, strings.Index(out, "age"), strings.Index(out, "email"))

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, OutputFormatYAML, false).PrintDetail(d))
	assert.Equal(t, "name: Alice\nage: \"30\"\nemail: alice@example.com\n", buf.String())

	var back map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, "30", back["age"])
}

func TestPrintAck(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputFormatTable, false).PrintAck(gateway.EmailAck{"message": "sent", "id": 3.0}))
	assert.Contains(t, buf.String(), "sent")
	assert.Contains(t, buf.String(), "message")

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, OutputFormatYAML, false).PrintAck(gateway.EmailAck{"message": "sent"}))
	assert.Equal(t, "message: sent\n", buf.String())
}
