package framework

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"time"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

// XMLReporter writes a JUnit-style XML document. Each unit becomes a testcase element inside
// a single testsuite element; a passing unit's element is self-closed, and a failing unit's
// element contains a failure element for each recorded failure.
//
// The document is streamed as events arrive, so the root element is not closed until Close
// is called.
type XMLReporter struct {
	out        io.Writer
	now        func() time.Time
	startTime  time.Time
	failures   int
	failedOpen bool
	err        error
}

// NewXMLReporter creates an XMLReporter and writes the document header.
func NewXMLReporter(out io.Writer) *XMLReporter {
	return newXMLReporterWithClock(out, time.Now)
}

func newXMLReporterWithClock(out io.Writer, now func() time.Time) *XMLReporter {
	r := &XMLReporter{out: out, now: now}
	r.write(xmlHeader + "\n")
	r.write("<testsuite>\n")
	return r
}

func (r *XMLReporter) StartTest(id TestID) {
	r.startTime = r.now()
	r.failedOpen = false
	r.write(fmt.Sprintf(`  <testcase classname="%s" name="%s" time="`, escapeXML(id.Group), escapeXML(id.Name)))
}

func (r *XMLReporter) EndTest(passed bool) {
	if passed && !r.failedOpen {
		r.write(r.elapsed() + `"/>` + "\n")
		return
	}
	r.write("  </testcase>\n")
}

func (r *XMLReporter) Failure(f Failure) {
	r.failures++
	if !r.failedOpen {
		r.write(r.elapsed() + `">` + "\n")
		r.failedOpen = true
	}
	r.write(fmt.Sprintf(
		`    <failure type="%s" message="%s" file="%s" line="%d">%s in %s, line %d</failure>`+"\n",
		escapeXML(string(f.Kind)),
		escapeXML(f.Message),
		escapeXML(f.File),
		f.Line,
		escapeXML(f.Message),
		escapeXML(f.File),
		f.Line,
	))
}

func (r *XMLReporter) FailureCount() int {
	return r.failures
}

// Close ends the document. It returns the first error that occurred while writing any part
// of the document.
func (r *XMLReporter) Close() error {
	r.write("</testsuite>\n")
	return r.err
}

func (r *XMLReporter) elapsed() string {
	return strconv.FormatFloat(r.now().Sub(r.startTime).Seconds(), 'f', 6, 64)
}

func (r *XMLReporter) write(s string) {
	if r.err != nil {
		return
	}
	if _, err := io.WriteString(r.out, s); err != nil {
		r.err = fmt.Errorf("error writing XML report: %w", err)
	}
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
