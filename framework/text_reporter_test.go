package framework

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestTextReporterAllPass(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf)
	for i := 0; i < 3; i++ {
		r.StartTest(TestID{Group: "g", Name: "n"})
		r.EndTest(true)
	}
	require.NoError(t, r.Close())

	assert.Equal(t, "...\nAll tests pass.\n", buf.String())
	assert.Equal(t, 0, r.FailureCount())
}

func TestTextReporterNoTests(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf)
	require.NoError(t, r.Close())
	assert.Equal(t, "\nAll tests pass.\n", buf.String())
}

func TestTextReporterStreamsFailureLines(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf)

	r.StartTest(TestID{Group: "G1", Name: "a"})
	r.EndTest(true)
	r.StartTest(TestID{Group: "G1", Name: "b"})
	r.Failure(Failure{Kind: AssertionFailure, File: "x_test.go", Line: 42, Message: "boom"})
	r.EndTest(false)
	r.StartTest(TestID{Group: "G2", Name: "c"})
	r.EndTest(true)
	require.NoError(t, r.Close())

	assert.Equal(t,
		".\nFailure: x_test.go, line 42: boom\nF.\n1 out of 3 tests failed.\n",
		buf.String())
	assert.Equal(t, 1, r.FailureCount())
}

func TestTextReporterFailureInFirstTestHasNoLeadingNewline(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf)

	r.StartTest(TestID{Group: "g", Name: "n"})
	r.Failure(Failure{File: "x_test.go", Line: 1, Message: "boom"})
	r.EndTest(false)
	require.NoError(t, r.Close())

	assert.Equal(t, "Failure: x_test.go, line 1: boom\nF\n1 out of 1 tests failed.\n", buf.String())
}

func TestTextReporterWithColor(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf, WithColor(true))
	r.StartTest(TestID{Group: "g", Name: "n"})
	r.EndTest(true)
	require.NoError(t, r.Close())

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "All tests pass.")
}

func TestTextReporterReturnsWriteErrorFromClose(t *testing.T) {
	r := NewTextReporter(failingWriter{})
	r.StartTest(TestID{Group: "g", Name: "n"})
	r.EndTest(true)
	err := r.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
