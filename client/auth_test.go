package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginReturnsAuthorizationHeaderValue(t *testing.T) {
	handler, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithJSONResponse(
		map[string]map[string]string{"user": {"token": "abc123"}}, nil))
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	token, err := Login(server.URL, "user@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "Token abc123", token)

	info := <-requests
	assert.Equal(t, "POST", info.Request.Method)
	assert.Equal(t, "/users/login", info.Request.URL.Path)
	assert.JSONEq(t, `{"user":{"email":"user@example.com","password":"hunter2"}}`, string(info.Body))
}

func TestLoginReportsNon200AsStatusMismatch(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(http.StatusForbidden))
	t.Cleanup(server.Close)

	_, err := Login(server.URL, "user@example.com", "wrong")

	var mismatch *StatusMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 200, mismatch.Expected)
	assert.Equal(t, 403, mismatch.Actual)
}

func TestLoginRejectsResponseWithoutToken(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithJSONResponse(
		map[string]map[string]string{"user": {}}, nil))
	t.Cleanup(server.Close)

	_, err := Login(server.URL, "user@example.com", "hunter2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no token")
}
