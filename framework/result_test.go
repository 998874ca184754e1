package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailureListFlattensEveryError(t *testing.T) {
	results := Results{
		Tests: []TestResult{
			{TestID: TestID{Path: []string{"articles", "list"}}},
		},
		Failures: []TestResult{
			{
				TestID: TestID{Path: []string{"articles", "create"}},
				Errors: []error{errors.New("wrong title"), errors.New("wrong slug")},
			},
			{
				TestID: TestID{Path: []string{"tags"}},
				Errors: []error{errors.New("empty list")},
			},
		},
	}

	failures := results.FailureList()

	assert.Len(t, failures, 3)
	assert.Equal(t, "[articles/create]: wrong title", failures[0].Error())
	assert.Equal(t, "[articles/create]: wrong slug", failures[1].Error())
	assert.Equal(t, "[tags]: empty list", failures[2].Error())
}

func TestFailureListIsEmptyWhenAllPassed(t *testing.T) {
	results := Results{Tests: []TestResult{{TestID: TestID{Path: []string{"tags"}}}}}

	assert.True(t, results.OK())
	assert.Empty(t, results.FailureList())
}
