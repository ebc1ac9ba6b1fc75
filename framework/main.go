package framework

import (
	"fmt"
	"io"
	"os"
)

const maxExitStatus = 255

// RunMain runs all units in the default registry, using the command-line arguments of the
// process, and exits. The exit status is the number of failures, or 255 if there were more
// than 255.
//
//	func main() {
//		framework.RunMain()
//	}
func RunMain() {
	os.Exit(exitStatus(Main(os.Args, os.Stdout, os.Stderr)))
}

// Main runs all units in the default registry and returns the number of failures. See
// Registry.Main.
func Main(args []string, stdout, stderr io.Writer) int {
	return defaultRegistry.Main(args, stdout, stderr)
}

// Main runs all units in the registry and returns the number of failures, or 1 if the
// arguments were invalid or the report could not be written.
//
// The first element of args is the program name. With -xml (or --xml) the report is written
// as XML; otherwise it is written as text. Run with -h for the other options.
func (r *Registry) Main(args []string, stdout, stderr io.Writer) int {
	var params commandParams
	if !params.Read(args, stderr) {
		return 1
	}

	loggers := NewDebugLoggers(stderr, params.debug)
	var cmd commandBuilder
	cmd.add(args...)
	loggers.Debugf("Invoked as: %s", cmd)

	out := stdout
	var outFile *os.File
	if params.outputPath != "" {
		f, err := os.Create(params.outputPath)
		if err != nil {
			fmt.Fprintf(stderr, "Unable to create report file: %s\n", err)
			return 1
		}
		outFile = f
		out = f
	}

	var reporter Reporter
	if params.xml {
		reporter = NewXMLReporter(out)
	} else {
		reporter = NewTextReporter(out, WithColor(params.color))
	}
	var collector *Collector
	if params.jsonSummaryPath != "" {
		collector = NewCollector()
		reporter = MultiReporter(reporter, collector)
	}

	status := RunWithLoggers(r, reporter, loggers)

	reportErr := reporter.Close()
	if outFile != nil {
		if err := outFile.Close(); err != nil && reportErr == nil {
			reportErr = fmt.Errorf("error closing report file: %w", err)
		}
	}
	if reportErr != nil {
		fmt.Fprintln(stderr, reportErr)
		if status == 0 {
			status = 1
		}
	}

	if collector != nil {
		if err := writeJSONSummary(params.jsonSummaryPath, collector.Results()); err != nil {
			fmt.Fprintln(stderr, err)
			if status == 0 {
				status = 1
			}
		}
	}
	return status
}

func writeJSONSummary(path string, results Results) error {
	data := []byte(results.JSON().JSONString() + "\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing JSON summary: %w", err)
	}
	return nil
}

func exitStatus(failures int) int {
	if failures > maxExitStatus {
		return maxExitStatus
	}
	return failures
}
