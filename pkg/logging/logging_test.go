package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel(""))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}

func TestInitForCLI_WritesSubsystemAndError(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Debug("Gateway", "hidden %d", 1)
	Error("Gateway", errors.New("boom"), "list failed for %q", "ali")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `list failed for \"ali\"`)
	assert.Contains(t, out, "subsystem=Gateway")
	assert.Contains(t, out, "error=boom")
}

func TestInitForTUI_SendsEntries(t *testing.T) {
	ch := InitForTUI(LevelInfo)
	t.Cleanup(CloseTUIChannel)

	Debug("View", "dropped")
	Warn("View", "select a customer first")

	select {
	case entry := <-ch:
		assert.Equal(t, LevelWarn, entry.Level)
		assert.Equal(t, "View", entry.Subsystem)
		assert.Equal(t, "select a customer first", entry.Message)
	case <-time.After(time.Second):
		require.FailNow(t, "expected a log entry")
	}
}

func TestLogEntry_Format(t *testing.T) {
	entry := LogEntry{
		Timestamp: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		Level:     LevelError,
		Subsystem: "Gateway",
		Message:   "fetch failed",
		Err:       errors.New("status 500"),
	}
	assert.Equal(t, "09:30:00 [ERROR] [Gateway] fetch failed: status 500", entry.Format())
}
