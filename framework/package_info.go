// Package framework is a small unit-testing harness for programs that run their own tests,
// outside of "go test".
//
// The general model is:
//
// 1. Units are declared with Test or TestF (or the equivalent Registry methods), usually from
// init functions. Declaring a unit registers it; units run in the order they were registered.
//
// 2. Each unit's body receives a *T, whose assertion methods record a failure at the calling
// line and stop the body. Panics that are not caused by assertions are recovered and reported
// as failures too, so a unit can never stop the run.
//
// 3. Lifecycle events and failures go to a Reporter. TextReporter writes a progress character
// per unit and a summary; XMLReporter writes a JUnit-style document.
//
// RunMain wires these together for a main function: it picks a reporter from the command-line
// flags, runs everything in the default registry, and exits with the number of failures.
package framework
