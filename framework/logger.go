package framework

import (
	"io"
	"log"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldlog"
)

// NewDebugLoggers returns loggers that write all messages, including debug messages, to the
// specified destination. If enabled is false, the loggers are disabled.
func NewDebugLoggers(out io.Writer, enabled bool) ldlog.Loggers {
	if !enabled {
		return ldlog.NewDisabledLoggers()
	}
	loggers := ldlog.NewDefaultLoggers()
	loggers.SetBaseLogger(log.New(out, "", log.LstdFlags))
	loggers.SetMinLevel(ldlog.Debug)
	return loggers
}
