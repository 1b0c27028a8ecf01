package controller

import (
	"custview/internal/tui/model"
	"custview/pkg/logging"
)

const (
	controllerSubsystem = "Controller"
	recordSubsystem     = "Record"
)

// The helpers below route every controller message through pkg/logging. In
// TUI mode those entries come back as NewLogEntryMsg and land in the
// activity log.

// LogInfo logs an informational message.
func LogInfo(subsystem string, format string, a ...interface{}) {
	logging.Info(subsystem, format, a...)
}

// LogDebug logs a debug-level message. It respects the TUI model's DebugMode flag.
func LogDebug(m *model.Model, subsystem string, format string, a ...interface{}) {
	if m != nil && m.DebugMode {
		logging.Debug(subsystem, format, a...)
	}
}

// LogWarn logs a warning message.
func LogWarn(subsystem string, format string, a ...interface{}) {
	logging.Warn(subsystem, format, a...)
}

// LogError logs an error message together with its cause.
func LogError(subsystem string, err error, format string, a ...interface{}) {
	logging.Error(subsystem, err, format, a...)
}
