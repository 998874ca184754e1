package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"
)

const loginTimeout = time.Second * 10

type loginRequest struct {
	User loginCredentials `json:"user"`
}

type loginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User struct {
		Token string `json:"token"`
	} `json:"user"`
}

// Login authenticates against the API and returns the Authorization header
// value to use on subsequent requests. It uses its own short-lived HTTP
// client, so it can be called before any test fixtures exist — typically once
// per worker, with the token shared read-only across that worker's tests.
//
// A non-200 response is reported as a StatusMismatchError, which fails any
// test run that depends on the token.
func Login(baseURL, email, password string) (string, error) {
	loginURL := strings.TrimSuffix(baseURL, "/") + "/users/login"

	data, err := json.Marshal(loginRequest{User: loginCredentials{Email: email, Password: password}})
	if err != nil {
		return "", err
	}

	httpClient := &http.Client{Timeout: loginTimeout}
	resp, err := httpClient.Post(loginURL, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return "", fmt.Errorf("login request to %s failed: %w", loginURL, err)
	}
	var respData []byte
	if resp.Body != nil {
		respData, err = ioutil.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return "", err
		}
	}
	if resp.StatusCode != 200 {
		return "", &StatusMismatchError{
			Method:   "POST",
			URL:      loginURL,
			Expected: 200,
			Actual:   resp.StatusCode,
		}
	}

	var parsed loginResponse
	if err := json.Unmarshal(respData, &parsed); err != nil {
		return "", fmt.Errorf("malformed login response from %s: %w", loginURL, err)
	}
	if parsed.User.Token == "" {
		return "", fmt.Errorf("login response from %s contained no token", loginURL)
	}
	return "Token " + parsed.User.Token, nil
}
