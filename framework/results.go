package framework

import (
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Results is the outcome of a run, as recorded by a Collector.
type Results struct {
	Tests []TestResult
}

// TestResult is the outcome of one unit execution.
type TestResult struct {
	ID       TestID
	Passed   bool
	Failures []Failure
	Duration time.Duration
}

// OK returns true if every unit passed.
func (r Results) OK() bool {
	for _, t := range r.Tests {
		if !t.Passed {
			return false
		}
	}
	return true
}

// Failed returns the results of the units that did not pass.
func (r Results) Failed() []TestResult {
	var ret []TestResult
	for _, t := range r.Tests {
		if !t.Passed {
			ret = append(ret, t)
		}
	}
	return ret
}

// JSON returns a summary of the results as a JSON value:
//
//	{"tests": 3, "failures": 1, "results": [
//	  {"group": "G", "name": "N", "passed": false, "seconds": 0.01,
//	   "failures": [{"kind": "AssertionFailure", "file": "x.go", "line": 42, "message": "boom"}]}
//	]}
func (r Results) JSON() ldvalue.Value {
	failureCount := 0
	tests := ldvalue.ArrayBuild()
	for _, t := range r.Tests {
		failures := ldvalue.ArrayBuild()
		for _, f := range t.Failures {
			failureCount++
			failures = failures.Add(ldvalue.ObjectBuild().
				Set("kind", ldvalue.String(string(f.Kind))).
				Set("file", ldvalue.String(f.File)).
				Set("line", ldvalue.Int(f.Line)).
				Set("message", ldvalue.String(f.Message)).
				Build())
		}
		tests = tests.Add(ldvalue.ObjectBuild().
			Set("group", ldvalue.String(t.ID.Group)).
			Set("name", ldvalue.String(t.ID.Name)).
			Set("passed", ldvalue.Bool(t.Passed)).
			Set("seconds", ldvalue.Float64(t.Duration.Seconds())).
			Set("failures", failures.Build()).
			Build())
	}
	return ldvalue.ObjectBuild().
		Set("tests", ldvalue.Int(len(r.Tests))).
		Set("failures", ldvalue.Int(failureCount)).
		Set("results", tests.Build()).
		Build()
}

// Collector is a Reporter that produces no output, but records the outcome of every unit so
// that it can be examined after the run.
type Collector struct {
	results  Results
	current  *TestResult
	started  time.Time
	failures int
	now      func() time.Time
}

// NewCollector creates a Collector.
func NewCollector() *Collector {
	return &Collector{now: time.Now}
}

func (c *Collector) StartTest(id TestID) {
	c.results.Tests = append(c.results.Tests, TestResult{ID: id, Passed: true})
	c.current = &c.results.Tests[len(c.results.Tests)-1]
	c.started = c.now()
}

func (c *Collector) EndTest(passed bool) {
	if c.current == nil {
		return
	}
	c.current.Passed = passed
	c.current.Duration = c.now().Sub(c.started)
	c.current = nil
}

func (c *Collector) Failure(f Failure) {
	c.failures++
	if c.current != nil {
		c.current.Failures = append(c.current.Failures, f)
	}
}

func (c *Collector) FailureCount() int {
	return c.failures
}

func (c *Collector) Close() error {
	return nil
}

// Results returns a copy of the results recorded so far.
func (c *Collector) Results() Results {
	tests := make([]TestResult, len(c.results.Tests))
	for i, t := range c.results.Tests {
		t.Failures = append([]Failure(nil), t.Failures...)
		tests[i] = t
	}
	return Results{Tests: tests}
}
