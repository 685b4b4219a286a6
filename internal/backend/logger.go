package backend

import (
	"strings"

	"hedgeview/pkg/logging"
)

// restyLogger routes resty's own diagnostics through pkg/logging so they never
// write to stderr underneath the TUI.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) {
	logging.Error(subsystem, nil, strings.TrimSpace(format), v...)
}

func (restyLogger) Warnf(format string, v ...interface{}) {
	logging.Warn(subsystem, strings.TrimSpace(format), v...)
}

func (restyLogger) Debugf(format string, v ...interface{}) {
	logging.Debug(subsystem, strings.TrimSpace(format), v...)
}
