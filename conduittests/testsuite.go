package conduittests

import (
	"github.com/conduitqa/conduit-contract-tests/framework"
)

// RunTestSuite runs the whole contract test suite and returns the results.
func RunTestSuite(
	suite *SuiteConfig,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, suite)

		t.Run("articles", DoArticleTests)
		t.Run("tags", DoTagTests)
		t.Run("users", DoUserTests)
	})
}
