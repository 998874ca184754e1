// Package framework contains the low-level test harness infrastructure that is
// not specific to the API being tested.
//
// The general model is:
//
// 1. There is a test context which is similar to Go's *testing.T, allowing
// pieces of test logic to be associated with a test identifier and to
// accumulate success/failure results, outside of the Go test runner.
//
// 2. Each test can capture debug output which is held with the test result and
// only shown according to the configured reporting options.
//
// 3. Tests can be selected or excluded with regex filters supplied on the
// command line.
//
// The domain-specific code that knows what is being tested is responsible for
// constructing the per-test fixtures (API client, activity log) and providing
// a domain-specific test API on top of the test context.
package framework
