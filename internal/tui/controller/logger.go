package controller

import (
	"hedgeview/internal/tui/model"
	"hedgeview/pkg/logging"
)

const controllerSubsystem = "Controller"

// LogDebug logs a debug-level message only while the TUI runs in debug mode.
func LogDebug(m *model.Model, format string, a ...interface{}) {
	if m != nil && m.DebugMode {
		logging.Debug(controllerSubsystem, format, a...)
	}
}

// LogInfo logs an informational message.
func LogInfo(format string, a ...interface{}) {
	logging.Info(controllerSubsystem, format, a...)
}

// LogError logs an error message.
func LogError(err error, format string, a ...interface{}) {
	logging.Error(controllerSubsystem, err, format, a...)
}
