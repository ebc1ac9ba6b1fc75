package framework

import (
	"fmt"
	"runtime/debug"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldlog"
)

// Unit is a single named test. Its body runs once each time the unit is executed.
type Unit struct {
	id         TestID
	declaredAt location
	body       func(*T)
}

// NewUnit creates a Unit without registering it anywhere. Most code should use Test or
// Registry.Test instead.
func NewUnit(group, name string, body func(*T)) *Unit {
	return newUnit(group, name, callerLocation(1), body)
}

func newUnit(group, name string, declaredAt location, body func(*T)) *Unit {
	return &Unit{
		id:         TestID{Group: group, Name: name},
		declaredAt: declaredAt,
		body:       body,
	}
}

// ID returns the unit's group and name.
func (u *Unit) ID() TestID {
	return u.id
}

// Execute runs the unit's body, reporting its start, any failures, and its end to the
// specified Reporter.
//
// A failed assertion stops the body at that point. Any other panic in the body is recovered
// and reported as a failure of kind UnexpectedPanic. Neither kind of failure is propagated to
// the caller, so one unit cannot stop a run.
func (u *Unit) Execute(reporter Reporter) {
	u.ExecuteWithLoggers(reporter, ldlog.NewDisabledLoggers())
}

// ExecuteWithLoggers is the same as Execute, but also writes debug output to the specified
// loggers.
func (u *Unit) ExecuteWithLoggers(reporter Reporter, loggers ldlog.Loggers) {
	t := &T{
		id:      u.id,
		tracker: startTracking(u.id, reporter),
		loggers: loggers,
	}
	defer t.tracker.conclude()
	t.run(u)
}

func (t *T) run(u *Unit) {
	completed := false
	defer func() {
		r := recover()
		if completed {
			return
		}
		t.recoverFrom(r, u)
	}()
	if u.body != nil {
		u.body(t)
	}
	completed = true
}

func (t *T) recoverFrom(r interface{}, u *Unit) {
	if r == t {
		if !t.tracker.failed() {
			t.tracker.recordFailure(Failure{
				Kind:    AssertionFailure,
				File:    u.declaredAt.file,
				Line:    u.declaredAt.line,
				Message: "test failed with no failure message",
			})
		}
		return
	}
	loc := panicLocation()
	if loc.isZero() {
		loc = u.declaredAt
	}
	message := "unexpected panic with no description"
	if desc := describePanic(r); desc != "" {
		message = "unexpected panic: " + desc
	}
	t.loggers.Debugf("Unexpected panic in %s: %s\n%s", t.id, message, string(debug.Stack()))
	t.tracker.recordFailure(Failure{
		Kind:    UnexpectedPanic,
		File:    loc.file,
		Line:    loc.line,
		Message: message,
	})
}

func describePanic(r interface{}) string {
	switch v := r.(type) {
	case nil:
		return ""
	case error:
		return v.Error()
	case string:
		return v
	default:
		return fmt.Sprintf("%+v", v)
	}
}
