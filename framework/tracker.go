package framework

import (
	"fmt"
	"strconv"
)

// tracker follows the outcome of a single unit execution. Creating it reports the start of the
// test; conclude reports the end of the test exactly once, no matter how many times it is called.
type tracker struct {
	reporter  Reporter
	passed    bool
	concluded bool
}

func startTracking(id TestID, reporter Reporter) *tracker {
	reporter.StartTest(id)
	return &tracker{reporter: reporter, passed: true}
}

func (tr *tracker) recordFailure(f Failure) {
	tr.passed = false
	tr.reporter.Failure(f)
}

func (tr *tracker) failed() bool {
	return !tr.passed
}

func (tr *tracker) conclude() {
	if tr.concluded {
		return
	}
	tr.concluded = true
	tr.reporter.EndTest(tr.passed)
}

func comparisonMessage(expected, actual interface{}) string {
	return fmt.Sprintf("failed comparison, expected %s got %s", formatValue(expected), formatValue(actual))
}

// formatValue renders floating-point values with 20 significant digits, so that two values which
// differ only in their last bits do not look identical in a failure message.
func formatValue(value interface{}) string {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', 20, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', 20, 32)
	default:
		return fmt.Sprintf("%v", value)
	}
}
