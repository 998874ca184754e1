package client

import "fmt"

// StatusMismatchError is returned by a dispatch method when the response
// status did not match the expected one. It carries the full activity dump so
// the failure message shows what led up to the bad response.
type StatusMismatchError struct {
	Method   string
	URL      string
	Expected int
	Actual   int
	Activity string
}

func (e *StatusMismatchError) Error() string {
	msg := fmt.Sprintf("%s %s returned status %d, expected %d",
		e.Method, e.URL, e.Actual, e.Expected)
	if e.Activity != "" {
		msg += "\n" + e.Activity
	}
	return msg
}

// PayloadParseError is returned by a GET dispatch whose response body could
// not be parsed as JSON. Write and delete dispatches recover from this case
// by substituting an empty object instead.
type PayloadParseError struct {
	URL string
	Err error
}

func (e *PayloadParseError) Error() string {
	return fmt.Sprintf("could not parse response body from %s: %s", e.URL, e.Err)
}

func (e *PayloadParseError) Unwrap() error {
	return e.Err
}
