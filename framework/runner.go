package framework

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldlog"
)

// Run executes every unit in the registry, in registration order, and returns the reporter's
// failure count. It does not close the reporter.
func Run(registry *Registry, reporter Reporter) int {
	return RunWithLoggers(registry, reporter, ldlog.NewDisabledLoggers())
}

// RunWithLoggers is the same as Run, but also writes debug output to the specified loggers.
func RunWithLoggers(registry *Registry, reporter Reporter, loggers ldlog.Loggers) int {
	units := registry.Units()
	loggers.Debugf("Running %d test(s)", len(units))
	for _, u := range units {
		loggers.Debugf("Starting %s", u.ID())
		u.ExecuteWithLoggers(reporter, loggers)
	}
	failures := reporter.FailureCount()
	loggers.Debugf("Finished with %d failure(s)", failures)
	return failures
}
