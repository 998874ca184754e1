package conduittests

import (
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// The Require* methods below wrap the corresponding require assertions so that
// a failure message always ends with the test's recent API activity. The
// underlying pass/fail semantics are unchanged: the activity dump is passed as
// the assertion message, which testify only renders on failure.

// RequireEqual asserts that two values are equal, attaching the API activity
// log to the failure message.
func (t *T) RequireEqual(expected, actual interface{}) {
	require.Equal(t, expected, actual, "%s", t.log.Dump())
}

// RequireLessOrEqual asserts that the first value is less than or equal to
// the second, attaching the API activity log to the failure message.
func (t *T) RequireLessOrEqual(e1, e2 interface{}) {
	require.LessOrEqual(t, e1, e2, "%s", t.log.Dump())
}

// RequireMatchesSchema validates payload against the stored schema for
// (resourceDir, operation), generating the schema file first if the suite was
// run in schema-generation mode. Validation failures carry the violation list
// and the payload, plus the API activity log.
func (t *T) RequireMatchesSchema(resourceDir, operation string, payload ldvalue.Value) {
	err := t.validator.Validate(resourceDir, operation, payload, t.suite.GenerateSchemas)
	require.NoError(t, err, "%s", t.log.Dump())
}
