package conduittests

import (
	"fmt"

	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/conduitqa/conduit-contract-tests/data"
)

func DoUserTests(t *T) {
	t.Run("login returns a token", func(t *T) {
		body := map[string]map[string]string{
			"user": {
				"email":    t.suite.Config.UserEmail,
				"password": t.suite.Config.UserPassword,
			},
		}
		t.API().SetPath("/users/login").ClearAuth().SetBody(body)
		payload := t.Post(200)

		token := payload.GetByKey("user").GetByKey("token").StringValue()
		require.NotEmpty(t, token, "%s", t.Log().Dump())
		t.RequireMatchesSchema("users", "login", payload)
	})

	invalidLengths := []struct {
		length  int
		message string
	}{
		{2, "is too short (minimum is 3 characters)"},
		{21, "is too long (maximum is 20 characters)"},
	}
	for _, c := range invalidLengths {
		t.Run(fmt.Sprintf("registration rejects a username of length %d", c.length), func(t *T) {
			request := data.RandomizedUserWithUsernameLength(c.length)

			t.API().SetPath("/users").ClearAuth().SetBody(request)
			payload := t.Post(422)

			username := payload.GetByKey("errors").GetByKey("username")
			t.RequireEqual(c.message, username.GetByIndex(0).StringValue())
		})
	}

	for _, length := range []int{3, 20} {
		t.Run(fmt.Sprintf("registration accepts a username of length %d", length), func(t *T) {
			request := data.RandomizedUserWithUsernameLength(length)
			// Blank out the email so registration still fails validation, but
			// for a reason unrelated to the username.
			request.User.Email = ""

			t.API().SetPath("/users").ClearAuth().SetBody(request)
			payload := t.Post(422)

			t.RequireEqual(ldvalue.Null(), payload.GetByKey("errors").GetByKey("username"))
		})
	}
}
