package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTestLogger struct {
	started  []TestID
	skipped  map[string]string
	finished map[string]bool
	debug    map[string]CapturedOutput
}

func newRecordingTestLogger() *recordingTestLogger {
	return &recordingTestLogger{
		skipped:  make(map[string]string),
		finished: make(map[string]bool),
		debug:    make(map[string]CapturedOutput),
	}
}

func (l *recordingTestLogger) TestStarted(id TestID)        { l.started = append(l.started, id) }
func (l *recordingTestLogger) TestError(id TestID, e error) {}
func (l *recordingTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	l.finished[id.String()] = failed
	l.debug[id.String()] = debugOutput
}
func (l *recordingTestLogger) TestSkipped(id TestID, reason string) {
	l.skipped[id.String()] = reason
}

func TestRunCollectsPassAndFailResults(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("passes", func(c *Context) {})
		c.Run("fails", func(c *Context) {
			c.Errorf("something went wrong: %d", 42)
		})
	})

	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "fails", results.Failures[0].TestID.String())
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "something went wrong: 42")
}

func TestFailNowStopsTheTestImmediately(t *testing.T) {
	reached := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("stops early", func(c *Context) {
			c.Errorf("fatal condition")
			c.FailNow()
			reached = true
		})
		c.Run("still runs", func(c *Context) {})
	})

	assert.False(t, reached)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "stops early", results.Failures[0].TestID.String())
}

func TestSkippedTestIsNotAFailure(t *testing.T) {
	logger := newRecordingTestLogger()
	results := Run(nil, logger, func(c *Context) {
		c.Run("skipped", func(c *Context) {
			c.SkipWithReason("not applicable here")
		})
	})

	assert.True(t, results.OK())
	assert.Equal(t, "not applicable here", logger.skipped["skipped"])
}

func TestFilterExcludesTests(t *testing.T) {
	logger := newRecordingTestLogger()
	ran := false
	filter := func(id TestID) bool { return id.String() != "excluded" }

	Run(filter, logger, func(c *Context) {
		c.Run("excluded", func(c *Context) { ran = true })
		c.Run("included", func(c *Context) {})
	})

	assert.False(t, ran)
	assert.Contains(t, logger.skipped, "excluded")
	assert.Contains(t, logger.finished, "included")
}

func TestUnexpectedPanicBecomesFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("panics", func(c *Context) {
			panic(errors.New("boom"))
		})
	})

	require.Len(t, results.Failures, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic in test")
}

func TestSubtestIDsIncludeParentPath(t *testing.T) {
	var got TestID
	Run(nil, nil, func(c *Context) {
		c.Run("outer", func(c *Context) {
			c.Run("inner", func(c *Context) {
				got = c.ID()
			})
		})
	})

	assert.Equal(t, "outer/inner", got.String())
}

func TestDebugOutputIsCapturedPerTest(t *testing.T) {
	logger := newRecordingTestLogger()
	Run(nil, logger, func(c *Context) {
		c.Run("with debug", func(c *Context) {
			c.Debug("checked %d endpoints", 3)
		})
	})

	output := logger.debug["with debug"]
	require.Len(t, output, 1)
	assert.Equal(t, "checked 3 endpoints", output[0].Message)
}
