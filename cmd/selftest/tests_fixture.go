package main

import (
	"github.com/launchdarkly/unit-test-harness/framework"
)

type example struct{}

func (example) value() int {
	return 42
}

type exampleFixture struct {
	e     example
	calls []string
}

func newExampleFixture() *exampleFixture {
	return &exampleFixture{}
}

func init() {
	framework.TestF("ExampleFixture", "when doing this that will happen as a result", newExampleFixture,
		func(t *framework.T, f *exampleFixture) {
			t.Equal(42, f.e.value())
		})

	framework.TestF("ExampleFixture", "each unit gets a fresh fixture", newExampleFixture,
		func(t *framework.T, f *exampleFixture) {
			t.Equal(0, len(f.calls))
			f.calls = append(f.calls, "used")
			t.Equal(1, len(f.calls))
		})

	framework.Test("Example", "simple test of something that should result in something", func(t *framework.T) {
		var e example
		value := e.value()
		t.Equal(42, value)
	})
}
