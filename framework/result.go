package framework

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Results is the accumulated outcome of a test suite run.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult is the outcome of a single test.
type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

// OK returns true if there were no failures.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// FailureList flattens the failed tests into one TestFailure per error.
func (r Results) FailureList() []TestFailure {
	var failures []TestFailure
	for _, t := range r.Failures {
		for _, err := range t.Errors {
			failures = append(failures, TestFailure{ID: t.TestID, Err: err})
		}
	}
	return failures
}

// TestID identifies a test by the path of Run names that led to it.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// TestFailure pairs a failed test's identifier with one of its errors.
type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

// PrintResults writes a summary of the run to the console, listing every
// failed test with its errors.
func PrintResults(results Results) {
	if results.OK() {
		color.Green("All tests passed (%d)", len(results.Tests))
		return
	}
	color.Red("FAILED: %d tests out of %d", len(results.Failures), len(results.Tests))
	for _, f := range results.FailureList() {
		for _, line := range strings.Split(f.Error(), "\n") {
			fmt.Printf("  %s\n", line)
		}
	}
}
