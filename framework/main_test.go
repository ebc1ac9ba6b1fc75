package framework

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/launchdarkly/go-test-helpers/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func runMain(r *Registry, args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	status := r.Main(append([]string{"selftest"}, args...), &stdout, &stderr)
	return status, stdout.String(), stderr.String()
}

func TestMainWritesTextReportByDefault(t *testing.T) {
	r, _ := makeScenarioRegistry()
	status, stdout, stderr := runMain(r)

	assert.Equal(t, 1, status)
	assert.True(t, strings.HasSuffix(stdout, "F.\n1 out of 3 tests failed.\n"), stdout)
	assert.Equal(t, "", stderr)
}

func TestMainReturnsZeroWhenAllPass(t *testing.T) {
	r := NewRegistry()
	r.Test("g", "n", func(*T) {})
	status, stdout, _ := runMain(r)

	assert.Equal(t, 0, status)
	assert.Equal(t, ".\nAll tests pass.\n", stdout)
}

func TestMainWritesXMLReportWithXMLFlag(t *testing.T) {
	for _, flag := range []string{"--xml", "-xml"} {
		t.Run(flag, func(t *testing.T) {
			r, _ := makeScenarioRegistry()
			status, stdout, _ := runMain(r, flag)

			assert.Equal(t, 1, status)
			assert.True(t, strings.HasPrefix(stdout, xmlHeader), stdout)
			suite := parseXMLReport(t, []byte(stdout))
			assert.Len(t, suite.TestCases, 3)
		})
	}
}

func TestMainWritesReportToFile(t *testing.T) {
	helpers.WithTempFile(func(path string) {
		r, _ := makeScenarioRegistry()
		status, stdout, _ := runMain(r, "--xml", "-o", path)

		assert.Equal(t, 1, status)
		assert.Equal(t, "", stdout)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Len(t, parseXMLReport(t, data).TestCases, 3)
	})
}

func TestMainWritesJSONSummary(t *testing.T) {
	helpers.WithTempFile(func(path string) {
		r, _ := makeScenarioRegistry()
		status, stdout, _ := runMain(r, "-json-summary", path)

		assert.Equal(t, 1, status)
		assert.Contains(t, stdout, "1 out of 3 tests failed.")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var summary ldvalue.Value
		require.NoError(t, json.Unmarshal(data, &summary))
		assert.Equal(t, 3, summary.GetByKey("tests").IntValue())
		assert.Equal(t, 1, summary.GetByKey("failures").IntValue())
	})
}

func TestMainRejectsUnknownFlag(t *testing.T) {
	status, stdout, stderr := runMain(NewRegistry(), "-bogus")
	assert.Equal(t, 1, status)
	assert.Equal(t, "", stdout)
	assert.Contains(t, stderr, "flag provided but not defined")
}

func TestMainRejectsPositionalArguments(t *testing.T) {
	status, _, stderr := runMain(NewRegistry(), "extra")
	assert.Equal(t, 1, status)
	assert.Contains(t, stderr, "unexpected arguments: extra")
}

func TestMainReportsUnwritableReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "report.xml")
	status, _, stderr := runMain(NewRegistry(), "-o", path)
	assert.Equal(t, 1, status)
	assert.Contains(t, stderr, "Unable to create report file")
}

func TestMainDebugLogsInvocation(t *testing.T) {
	status, _, stderr := runMain(NewRegistry(), "-debug")
	assert.Equal(t, 0, status)
	assert.Contains(t, stderr, "Invoked as: selftest -debug")
}

func TestExitStatusIsCapped(t *testing.T) {
	assert.Equal(t, 0, exitStatus(0))
	assert.Equal(t, 3, exitStatus(3))
	assert.Equal(t, 255, exitStatus(255))
	assert.Equal(t, 255, exitStatus(256))
}

func TestCommandBuilderQuotesArguments(t *testing.T) {
	var cmd commandBuilder
	cmd.add("selftest", "-o", "my report.xml")
	assert.Equal(t, "selftest -o 'my report.xml'", cmd.String())
}
