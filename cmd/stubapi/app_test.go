package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, method, path, key, body string) (*http.Response, map[string]any) {
	t.Helper()
	app := newApp("secret")

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("x-sendsculpt-key", key)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
	return resp, decoded
}

func TestHealth(t *testing.T) {
	resp, body := doRequest(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
}

func TestSendRequiresKey(t *testing.T) {
	tests := []struct {
		description string
		key         string
	}{
		{description: "missing key", key: ""},
		{description: "wrong key", key: "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			resp, body := doRequest(t, http.MethodPost, "/api/v1/send", tt.key, `{}`)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, []any{"Invalid or missing API key"}, body["detail"])
		})
	}
}

func TestSendAccepts(t *testing.T) {
	resp, body := doRequest(t, http.MethodPost, "/api/v1/send", "secret",
		`{"to":["a@example.com"],"subject":"Hi","from_email":"s@example.com","body_text":"x","environment":"sandbox"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "sandboxed", body["status"])
	assert.NotEmpty(t, body["message_id"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestSendRejectsInvalidPayload(t *testing.T) {
	tests := []struct {
		description string
		body        string
		problem     string
	}{
		{
			description: "not json",
			body:        `{`,
			problem:     "body is not a valid JSON email payload",
		},
		{
			description: "missing subject",
			body:        `{"to":["a@example.com"],"from_email":"s@example.com","environment":"live"}`,
			problem:     "subject: field required",
		},
		{
			description: "template with body",
			body:        `{"to":["a@example.com"],"subject":"s","from_email":"s@example.com","template_id":"t","body_html":"<p/>","environment":"live"}`,
			problem:     "template_id cannot be combined with body_html or body_text",
		},
		{
			description: "bad attachment content",
			body:        `{"to":["a@example.com"],"subject":"s","from_email":"s@example.com","environment":"live","attachments":[{"filename":"a.txt","content":"***"}]}`,
			problem:     "attachments[0].content: must be non-empty base64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			resp, body := doRequest(t, http.MethodPost, "/api/v1/send", "secret", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

			detail, ok := body["detail"].([]any)
			require.True(t, ok)
			require.NotEmpty(t, detail)
			found := false
			for _, d := range detail {
				if strings.Contains(d.(string), tt.problem) {
					found = true
				}
			}
			assert.True(t, found, "detail %v should mention %q", detail, tt.problem)
		})
	}
}

func TestUnknownMessageAndRoute(t *testing.T) {
	resp, body := doRequest(t, http.MethodGet, "/api/v1/messages/does-not-exist", "secret", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "STUBAPI_MESSAGE_NOT_FOUND", body["code"])

	resp, _ = doRequest(t, http.MethodGet, "/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAnyKeyWhenUnconfigured(t *testing.T) {
	app := newApp("")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/messages", nil)
	req.Header.Set("x-sendsculpt-key", "whatever")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
