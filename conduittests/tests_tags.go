package conduittests

import (
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func DoTagTests(t *T) {
	t.Run("list returns tags without authentication", func(t *T) {
		t.API().SetPath("/tags").ClearAuth()
		payload := t.Get(200)

		tags := payload.GetByKey("tags")
		require.Equal(t, ldvalue.ArrayType, tags.Type(), "%s", t.Log().Dump())
		require.NotZero(t, tags.Count(), "%s", t.Log().Dump())
	})

	t.Run("list matches the stored schema", func(t *T) {
		t.API().SetPath("/tags")
		payload := t.Get(200)

		t.RequireMatchesSchema("tags", "list", payload)
	})
}
