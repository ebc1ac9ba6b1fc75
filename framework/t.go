package framework

import (
	"fmt"
	"math"
	"strings"

	"github.com/stretchr/testify/assert"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldlog"
)

// T is passed to the body of a unit. Its assertion methods record a failure at the line that
// called them and then stop the body immediately; there is no way to continue a unit after a
// failed assertion.
//
// T also implements require.TestingT, so the assert and require packages from testify can be
// used in a unit body by passing the *T as if it were a *testing.T. Since any failure stops
// the body, an assert function behaves the same as its require equivalent.
type T struct {
	id      TestID
	tracker *tracker
	loggers ldlog.Loggers
}

// ID returns the identifier of the running unit.
func (t *T) ID() TestID {
	return t.id
}

// Errorf records a failure and stops the unit. It is called by testify assertions.
func (t *T) Errorf(format string, args ...interface{}) {
	t.failAt(callerLocation(1), singleLineMessage(fmt.Sprintf(format, args...)))
}

// FailNow stops the unit. If no failure has been recorded yet, a generic one is recorded.
func (t *T) FailNow() {
	panic(t)
}

// Fail records a failure with the specified message and stops the unit.
func (t *T) Fail(message string) {
	t.failAt(callerLocation(1), message)
}

// Failf is the same as Fail, with a format string.
func (t *T) Failf(format string, args ...interface{}) {
	t.failAt(callerLocation(1), fmt.Sprintf(format, args...))
}

// True fails the unit unless the condition is true. The optional msgAndArgs are a message, or
// a format string and its arguments, to describe the condition.
func (t *T) True(condition bool, msgAndArgs ...interface{}) {
	if !condition {
		t.failAt(callerLocation(1), messageOrDefault(msgAndArgs, "expected condition to be true"))
	}
}

// False fails the unit unless the condition is false.
func (t *T) False(condition bool, msgAndArgs ...interface{}) {
	if condition {
		t.failAt(callerLocation(1), messageOrDefault(msgAndArgs, "expected condition to be false"))
	}
}

// Equal fails the unit unless the two values are equal. Values are compared as with
// assert.ObjectsAreEqual: byte slices by content, everything else with reflect.DeepEqual.
func (t *T) Equal(expected, actual interface{}) {
	if !assert.ObjectsAreEqual(expected, actual) {
		t.failAt(callerLocation(1), comparisonMessage(expected, actual))
	}
}

// NotEqual fails the unit if the two values are equal.
func (t *T) NotEqual(unexpected, actual interface{}) {
	if assert.ObjectsAreEqual(unexpected, actual) {
		t.failAt(callerLocation(1), fmt.Sprintf("failed comparison, did not expect %s", formatValue(actual)))
	}
}

// StrEqual converts both values to strings with fmt.Sprint and fails the unit unless the
// strings are equal.
func (t *T) StrEqual(expected, actual interface{}) {
	e, a := fmt.Sprint(expected), fmt.Sprint(actual)
	if e != a {
		t.failAt(callerLocation(1), comparisonMessage(e, a))
	}
}

// Near fails the unit unless actual is within epsilon of expected. A difference exactly equal
// to epsilon passes. NaN is never near anything.
func (t *T) Near(expected, actual, epsilon float64) {
	if !(math.Abs(expected-actual) <= epsilon) {
		t.failAt(callerLocation(1), comparisonMessage(expected, actual))
	}
}

// Debug writes a debug message for this unit, if debug logging is enabled.
func (t *T) Debug(format string, args ...interface{}) {
	t.loggers.Debugf("[%s] %s", t.id, fmt.Sprintf(format, args...))
}

func (t *T) failAt(loc location, message string) {
	t.tracker.recordFailure(Failure{
		Kind:    AssertionFailure,
		File:    loc.file,
		Line:    loc.line,
		Message: message,
	})
	t.FailNow()
}

func messageOrDefault(msgAndArgs []interface{}, defaultMessage string) string {
	switch len(msgAndArgs) {
	case 0:
		return defaultMessage
	case 1:
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%+v", msgAndArgs[0])
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}
		return fmt.Sprint(msgAndArgs...)
	}
}

// singleLineMessage folds a possibly multi-line failure message into one line. Messages from
// testify are a block of labeled sections; only the "Error" and "Messages" sections are kept,
// since the failure already records its location and a diff does not fit on one line.
func singleLineMessage(message string) string {
	var parts []string
	section := ""
	for _, line := range strings.Split(message, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if label := testifyLabel(line); label != "" {
			section = label
			line = strings.TrimSpace(strings.TrimPrefix(line, label+":"))
			if label == "Messages" && line != "" {
				line = "(" + line + ")"
			}
		} else if strings.HasPrefix(line, "Diff:") {
			section = "Diff"
		}
		switch section {
		case "Error Trace", "Test", "Diff":
			continue
		}
		if line != "" {
			parts = append(parts, strings.Join(strings.Fields(line), " "))
		}
	}
	return strings.Join(parts, " ")
}

func testifyLabel(line string) string {
	for _, label := range []string{"Error Trace", "Error", "Test", "Messages"} {
		if strings.HasPrefix(line, label+":") {
			return label
		}
	}
	return ""
}
