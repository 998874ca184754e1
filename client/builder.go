// Package client implements the request builder that the test suite uses to
// talk to the API under test, along with the authentication helper and the
// typed errors a dispatch can produce.
package client

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/conduitqa/conduit-contract-tests/apilog"
)

const authorizationHeader = "Authorization"

// Param is one query parameter. Parameters are kept as an ordered list so the
// final URL preserves the order in which they were configured.
type Param struct {
	Name  string
	Value ldvalue.Value
}

// requestDescriptor accumulates the configuration for one pending call. Its
// zero value is the post-reset state: no field survives from one dispatch to
// the next.
type requestDescriptor struct {
	baseURL     ldvalue.OptionalString
	path        string
	queryParams []Param
	headers     map[string]string
	body        interface{}
	authCleared bool
}

// RequestBuilder accumulates the configuration for a single HTTP call through
// chained setters and then dispatches it with Get, Post, Put, or Delete.
//
// Every dispatch logs the request and response to the builder's activity
// logger, validates the response status, and swaps in a fresh empty
// descriptor, so no configuration bleeds into the next call regardless of
// outcome. A builder is not safe for concurrent dispatches; each test gets
// its own instance.
type RequestBuilder struct {
	httpClient *http.Client
	baseURL    string
	authHeader string
	log        *apilog.Logger
	desc       requestDescriptor
}

// NewRequestBuilder creates a RequestBuilder bound to a default base URL and
// an activity logger. authToken is the value to inject as the Authorization
// header on every call (empty for an unauthenticated builder).
func NewRequestBuilder(baseURL string, authToken string, log *apilog.Logger) *RequestBuilder {
	return &RequestBuilder{
		httpClient: http.DefaultClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		authHeader: authToken,
		log:        log,
	}
}

// SetBaseURL overrides the configured base URL for the next dispatch only.
func (b *RequestBuilder) SetBaseURL(url string) *RequestBuilder {
	b.desc.baseURL = ldvalue.NewOptionalString(url)
	return b
}

// SetPath sets the endpoint path for the next dispatch.
func (b *RequestBuilder) SetPath(path string) *RequestBuilder {
	b.desc.path = path
	return b
}

// SetQueryParams appends query parameters for the next dispatch, preserving
// their order.
func (b *RequestBuilder) SetQueryParams(params []Param) *RequestBuilder {
	b.desc.queryParams = append(b.desc.queryParams, params...)
	return b
}

// SetQueryParam appends a single query parameter for the next dispatch.
func (b *RequestBuilder) SetQueryParam(name string, value ldvalue.Value) *RequestBuilder {
	b.desc.queryParams = append(b.desc.queryParams, Param{Name: name, Value: value})
	return b
}

// SetHeaders merges the given headers into the next dispatch's headers.
func (b *RequestBuilder) SetHeaders(headers map[string]string) *RequestBuilder {
	for name, value := range headers {
		b.SetHeader(name, value)
	}
	return b
}

// SetHeader sets a single header for the next dispatch. Setting Authorization
// here takes precedence over the builder's configured token.
func (b *RequestBuilder) SetHeader(name, value string) *RequestBuilder {
	if b.desc.headers == nil {
		b.desc.headers = make(map[string]string)
	}
	b.desc.headers[name] = value
	return b
}

// SetBody sets the request body for the next dispatch. The value is marshaled
// as JSON at dispatch time; malformed bodies surface there, not here.
func (b *RequestBuilder) SetBody(body interface{}) *RequestBuilder {
	b.desc.body = body
	return b
}

// ClearAuth suppresses Authorization injection for the next dispatch only.
func (b *RequestBuilder) ClearAuth() *RequestBuilder {
	b.desc.authCleared = true
	return b
}

// Get dispatches a GET request and returns the parsed response payload. A
// response body that cannot be parsed as JSON is an error for GET, unlike the
// write methods.
func (b *RequestBuilder) Get(expectedStatus int) (ldvalue.Value, error) {
	return b.dispatch("GET", expectedStatus, false, false)
}

// Post dispatches a POST request with the configured body and returns the
// parsed response payload.
func (b *RequestBuilder) Post(expectedStatus int) (ldvalue.Value, error) {
	return b.dispatch("POST", expectedStatus, true, true)
}

// Put dispatches a PUT request with the configured body and returns the
// parsed response payload.
func (b *RequestBuilder) Put(expectedStatus int) (ldvalue.Value, error) {
	return b.dispatch("PUT", expectedStatus, true, true)
}

// Delete dispatches a DELETE request. Only the response status is logged and
// no payload is returned.
func (b *RequestBuilder) Delete(expectedStatus int) error {
	_, err := b.dispatch("DELETE", expectedStatus, false, true)
	return err
}

func (b *RequestBuilder) dispatch(
	method string,
	expectedStatus int,
	sendBody bool,
	recoverParse bool,
) (ldvalue.Value, error) {
	// The descriptor is replaced unconditionally, whatever the outcome below;
	// the activity log still shows the call that just ran.
	defer func() { b.desc = requestDescriptor{} }()

	headers := b.effectiveHeaders()
	targetURL := b.buildURL()

	var bodyData []byte
	if sendBody && b.desc.body != nil {
		data, err := json.Marshal(b.desc.body)
		if err != nil {
			return ldvalue.Null(), err
		}
		bodyData = data
		if _, ok := headers["Content-Type"]; !ok {
			headers["Content-Type"] = "application/json"
		}
	}

	if sendBody {
		b.log.RecordRequest(method, targetURL, headers, b.desc.body)
	} else {
		b.log.RecordRequest(method, targetURL, headers, nil)
	}

	var reqBody io.Reader
	if bodyData != nil {
		reqBody = bytes.NewBuffer(bodyData)
	}
	req, err := http.NewRequest(method, targetURL, reqBody)
	if err != nil {
		return ldvalue.Null(), err
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return ldvalue.Null(), err
	}
	var respData []byte
	if resp.Body != nil {
		respData, err = ioutil.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return ldvalue.Null(), err
		}
	}

	payload, parseErr := parsePayload(respData, recoverParse)
	if parseErr != nil {
		return ldvalue.Null(), &PayloadParseError{URL: targetURL, Err: parseErr}
	}

	if method == "DELETE" {
		b.log.RecordResponse(resp.StatusCode, nil)
	} else {
		b.log.RecordResponse(resp.StatusCode, payload)
	}

	if resp.StatusCode != expectedStatus {
		return ldvalue.Null(), &StatusMismatchError{
			Method:   method,
			URL:      targetURL,
			Expected: expectedStatus,
			Actual:   resp.StatusCode,
			Activity: b.log.Dump(),
		}
	}
	return payload, nil
}

// effectiveHeaders computes the headers for the pending dispatch, injecting
// the builder's token as Authorization unless the caller supplied their own
// value or cleared auth for this call.
func (b *RequestBuilder) effectiveHeaders() map[string]string {
	headers := make(map[string]string, len(b.desc.headers)+1)
	for name, value := range b.desc.headers {
		headers[name] = value
	}
	if b.desc.authCleared {
		delete(headers, authorizationHeader)
	} else if _, ok := headers[authorizationHeader]; !ok && b.authHeader != "" {
		headers[authorizationHeader] = b.authHeader
	}
	return headers
}

// buildURL joins the effective base URL and path, then appends each query
// parameter URL-encoded, in the order they were configured.
func (b *RequestBuilder) buildURL() string {
	var sb strings.Builder
	sb.WriteString(b.desc.baseURL.OrElse(b.baseURL))
	sb.WriteString(b.desc.path)
	for i, p := range b.desc.queryParams {
		if i == 0 {
			sb.WriteString("?")
		} else {
			sb.WriteString("&")
		}
		sb.WriteString(url.QueryEscape(p.Name))
		sb.WriteString("=")
		sb.WriteString(url.QueryEscape(paramString(p.Value)))
	}
	return sb.String()
}

func paramString(v ldvalue.Value) string {
	if v.Type() == ldvalue.StringType {
		return v.StringValue()
	}
	return v.JSONString()
}

// parsePayload parses a response body as JSON. Write and delete dispatches
// set recoverParse so that an empty or non-JSON body becomes an empty object;
// GET keeps the parse error. (DELETE responses often have no body at all, so
// the recovery is deliberate there; see the activity log for the raw status.)
func parsePayload(data []byte, recoverParse bool) (ldvalue.Value, error) {
	var v ldvalue.Value
	if err := json.Unmarshal(data, &v); err != nil {
		if recoverParse {
			return ldvalue.ObjectBuild().Build(), nil
		}
		return ldvalue.Null(), err
	}
	return v, nil
}
