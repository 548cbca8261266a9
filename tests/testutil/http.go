// Package testutil provides HTTP helpers for exercising the shop API in
// tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the API response envelope with a raw data payload
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	} `json:"error"`
}

// Client issues requests against an http.Handler without a network listener
type Client struct {
	t       *testing.T
	handler http.Handler
}

// NewClient returns a Client for handler
func NewClient(t *testing.T, handler http.Handler) *Client {
	return &Client{t: t, handler: handler}
}

// Response is a recorded response
type Response struct {
	t        *testing.T
	Code     int
	Body     []byte
	Header   http.Header
	envelope *Envelope
}

// Do sends a request. A non-nil body is JSON encoded unless it is already
// a []byte, which is sent as is.
func (c *Client) Do(method, path string, body any, headers map[string]string) *Response {
	c.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	default:
		reader = ToJSONReader(c.t, b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	return &Response{t: c.t, Code: w.Code, Body: w.Body.Bytes(), Header: w.Header()}
}

// Get sends a GET request
func (c *Client) Get(path string) *Response {
	c.t.Helper()
	return c.Do(http.MethodGet, path, nil, nil)
}

// Post sends a JSON POST request
func (c *Client) Post(path string, body any) *Response {
	c.t.Helper()
	return c.Do(http.MethodPost, path, body, nil)
}

// Put sends a JSON PUT request
func (c *Client) Put(path string, body any) *Response {
	c.t.Helper()
	return c.Do(http.MethodPut, path, body, nil)
}

// Delete sends a DELETE request
func (c *Client) Delete(path string) *Response {
	c.t.Helper()
	return c.Do(http.MethodDelete, path, nil, nil)
}

// Envelope decodes the response body as the API envelope
func (r *Response) Envelope() *Envelope {
	r.t.Helper()
	if r.envelope == nil {
		var env Envelope
		require.NoError(r.t, json.Unmarshal(r.Body, &env), "Failed to parse response envelope: %s", r.Body)
		r.envelope = &env
	}
	return r.envelope
}

// RequireStatus fails the test unless the response has status code
func (r *Response) RequireStatus(code int) *Response {
	r.t.Helper()
	require.Equal(r.t, code, r.Code, "Unexpected status code, body: %s", r.Body)
	return r
}

// Decode unmarshals the envelope data into v
func (r *Response) Decode(v any) {
	r.t.Helper()
	require.NoError(r.t, json.Unmarshal(r.Envelope().Data, v), "Failed to parse response data")
}

// AssertErrorCode asserts the response carries an error envelope with code
func (r *Response) AssertErrorCode(code string) {
	r.t.Helper()
	env := r.Envelope()
	assert.False(r.t, env.Success, "Expected success to be false")
	require.NotNil(r.t, env.Error, "Expected error object in response")
	assert.Equal(r.t, code, env.Error.Code, "Unexpected error code")
}

// ToJSONReader converts a value to a JSON io.Reader
func ToJSONReader(t *testing.T, v any) io.Reader {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err, "Failed to marshal to JSON")
	return bytes.NewReader(data)
}
