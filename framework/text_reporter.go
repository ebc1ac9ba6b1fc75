package framework

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// TextReporter writes a human-readable report: one progress character per test, a line for
// each failure as soon as it happens, and a summary line when it is closed.
type TextReporter struct {
	out          io.Writer
	passColor    *color.Color
	failColor    *color.Color
	testCount    int
	failures     int
	lineProgress bool
	err          error
}

// TextReporterOption is an option for NewTextReporter.
type TextReporterOption func(*TextReporter)

// WithColor turns ANSI coloring of the progress characters and summary on or off. Coloring is
// off by default, regardless of whether the output is a terminal.
func WithColor(enabled bool) TextReporterOption {
	return func(r *TextReporter) {
		if enabled {
			r.passColor.EnableColor()
			r.failColor.EnableColor()
		} else {
			r.passColor.DisableColor()
			r.failColor.DisableColor()
		}
	}
}

// NewTextReporter creates a TextReporter that writes to the specified destination.
func NewTextReporter(out io.Writer, options ...TextReporterOption) *TextReporter {
	r := &TextReporter{
		out:       out,
		passColor: color.New(color.FgGreen),
		failColor: color.New(color.FgRed, color.Bold),
	}
	WithColor(false)(r)
	for _, o := range options {
		o(r)
	}
	return r
}

func (r *TextReporter) StartTest(TestID) {
	r.testCount++
}

func (r *TextReporter) EndTest(passed bool) {
	if passed {
		r.write(r.passColor.Sprint("."))
	} else {
		r.write(r.failColor.Sprint("F"))
	}
	r.lineProgress = true
}

func (r *TextReporter) Failure(f Failure) {
	r.failures++
	if r.lineProgress {
		r.write("\n")
		r.lineProgress = false
	}
	r.write(fmt.Sprintf("Failure: %s\n", f))
}

func (r *TextReporter) FailureCount() int {
	return r.failures
}

// Close writes the summary line. It returns the first error that occurred while writing
// any part of the report.
func (r *TextReporter) Close() error {
	if r.failures == 0 {
		r.write("\n" + r.passColor.Sprint("All tests pass.") + "\n")
	} else {
		r.write("\n" + r.failColor.Sprintf("%d out of %d tests failed.", r.failures, r.testCount) + "\n")
	}
	return r.err
}

func (r *TextReporter) write(s string) {
	if r.err != nil {
		return
	}
	if _, err := io.WriteString(r.out, s); err != nil {
		r.err = fmt.Errorf("error writing test report: %w", err)
	}
}
