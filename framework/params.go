package framework

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	xml             bool
	outputPath      string
	jsonSummaryPath string
	color           bool
	debug           bool
}

// Read parses the command line. The first element of args is the program name. If the
// arguments are invalid, it writes the error and usage text to errOut and returns false.
func (c *commandParams) Read(args []string, errOut io.Writer) bool {
	fs := flag.NewFlagSet(programName(args), flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.BoolVar(&c.xml, "xml", false, "write the report as XML instead of text")
	fs.StringVar(&c.outputPath, "o", "", "write the report to this file instead of standard output")
	fs.StringVar(&c.jsonSummaryPath, "json-summary", "", "also write a JSON summary of the results to this file")
	fs.BoolVar(&c.color, "color", false, "use colors in the text report")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging to standard error")

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}
	if err := fs.Parse(rest); err != nil {
		return false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(errOut, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false
	}
	return true
}

func programName(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
