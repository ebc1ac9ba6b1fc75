// Command selftest runs the harness's own example units. Pass -xml for a JUnit-style report.
package main

import (
	"github.com/launchdarkly/unit-test-harness/framework"
)

func main() {
	framework.RunMain()
}
