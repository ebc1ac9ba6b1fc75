package framework

import (
	"fmt"
)

// FailureKind distinguishes a failed assertion from a panic that was not raised by an assertion.
type FailureKind string

const (
	// AssertionFailure means an assertion in the test body did not hold.
	AssertionFailure FailureKind = "AssertionFailure"
	// UnexpectedPanic means the test body panicked for some reason other than a failed assertion.
	UnexpectedPanic FailureKind = "UnexpectedPanic"
)

// Failure describes one failed assertion or one contained panic. It is passed around by value.
type Failure struct {
	Kind    FailureKind
	File    string
	Line    int
	Message string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s, line %d: %s", f.File, f.Line, f.Message)
}

// TestID identifies a unit by its group and name. IDs are not required to be unique.
type TestID struct {
	Group string
	Name  string
}

func (t TestID) String() string {
	return t.Group + "." + t.Name
}
