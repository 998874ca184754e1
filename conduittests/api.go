package conduittests

import (
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/conduitqa/conduit-contract-tests/apilog"
	"github.com/conduitqa/conduit-contract-tests/client"
	"github.com/conduitqa/conduit-contract-tests/config"
	"github.com/conduitqa/conduit-contract-tests/framework"
	"github.com/conduitqa/conduit-contract-tests/schema"
)

// SuiteConfig is everything the suite needs that is decided once per run:
// the environment configuration, the worker-shared auth token (obtained by a
// single login before any test starts, read-only afterward), and the schema
// validation options.
type SuiteConfig struct {
	Config          config.Config
	AuthToken       string
	SchemaRoot      string
	GenerateSchemas bool
}

// T represents a test or subtest in the contract test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner, with extra features such
// as debug logging provided by our lower-level framework package.
//
// Every T instance owns its own API activity log and its own request builder
// bound to that log, pre-authenticated with the worker's token. Assertions can
// use the assert and require packages, passing the *T as if it were a
// *testing.T; the Require* methods on T additionally attach the recent API
// activity to any failure message.
type T struct {
	context   *framework.Context
	suite     *SuiteConfig
	log       *apilog.Logger
	api       *client.RequestBuilder
	validator *schema.Validator
}

func newTestScope(context *framework.Context, suite *SuiteConfig) *T {
	log := apilog.New()
	return &T{
		context:   context,
		suite:     suite,
		log:       log,
		api:       client.NewRequestBuilder(suite.Config.APIBaseURL, suite.AuthToken, log),
		validator: schema.NewValidator(suite.SchemaRoot),
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest, equivalent to the Run method of testing.T. The
// specified function receives a new T with a fresh activity log and request
// builder.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.suite))
	})
}

// Debug logs some debug output for the test. The output will be passed to the
// test logger at the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// API returns the test's request builder for chained configuration calls.
func (t *T) API() *client.RequestBuilder {
	return t.api
}

// Log returns the test's API activity log.
func (t *T) Log() *apilog.Logger {
	return t.log
}

// Get dispatches the configured request as a GET and fails the test
// immediately on any error, so the failure surfaces at the call site.
func (t *T) Get(expectedStatus int) ldvalue.Value {
	payload, err := t.api.Get(expectedStatus)
	require.NoError(t, err)
	return payload
}

// Post dispatches the configured request as a POST; see Get.
func (t *T) Post(expectedStatus int) ldvalue.Value {
	payload, err := t.api.Post(expectedStatus)
	require.NoError(t, err)
	return payload
}

// Put dispatches the configured request as a PUT; see Get.
func (t *T) Put(expectedStatus int) ldvalue.Value {
	payload, err := t.api.Put(expectedStatus)
	require.NoError(t, err)
	return payload
}

// Delete dispatches the configured request as a DELETE; see Get. No payload
// is returned.
func (t *T) Delete(expectedStatus int) {
	require.NoError(t, t.api.Delete(expectedStatus))
}
