package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	server *httptest.Server
	calls  int32
	last   map[string]any
}

func newFakeAPI(t *testing.T, status int, body string) *fakeAPI {
	t.Helper()
	api := &fakeAPI{}
	api.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&api.calls, 1)
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &api.last)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(api.server.Close)
	return api
}

func setEnv(t *testing.T, baseURL string) {
	t.Helper()
	t.Setenv("SENDSCULPT_API_KEY", "test-key")
	t.Setenv("SENDSCULPT_BASE_URL", baseURL)
	t.Setenv("SENDSCULPT_ENVIRONMENT", "")
	t.Setenv("SENDSCULPT_STORAGE_MODE", "local")
	t.Setenv("SENDSCULPT_ATTACHMENT_DIR", "")
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestSendFromFlags(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"message_id":"test-msg-id","status":"sent"}`)
	setEnv(t, api.server.URL)

	code, out, errOut := runCLI("send",
		"-to", "a@example.com,b@example.com",
		"-from", "sender@example.com",
		"-subject", "Hello",
		"-text", "Hi there",
	)
	require.Equal(t, exitOK, code, errOut)

	var result sendOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "test-msg-id", result.MessageID)
	assert.Equal(t, "sent", result.Status)
	assert.Equal(t, 200, result.StatusCode)

	assert.Equal(t, []any{"a@example.com", "b@example.com"}, api.last["to"])
	assert.Equal(t, "live", api.last["environment"])
}

func TestSendFromYAMLFileWithAttachment(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{"message_id":"m-1","status":"sandboxed"}`)
	setEnv(t, api.server.URL)

	dir := t.TempDir()
	t.Setenv("SENDSCULPT_ATTACHMENT_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "report.csv"), []byte("a,b\n1,2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes, final.txt"), []byte("done"), 0o644))

	reqFile := filepath.Join(dir, "request.yaml")
	require.NoError(t, os.WriteFile(reqFile, []byte(`
to: [user@example.com]
subject: Weekly report
from_email: reports@example.com
template_id: weekly
template_data:
  week: 42
attachments:
  - filename: report.csv
    mime_type: text/csv
    file_path: report.csv
`), 0o644))

	code, _, errOut := runCLI("send", "-f", reqFile, "-env", "sandbox", "-attach", "notes, final.txt")
	require.Equal(t, exitOK, code, errOut)

	assert.Equal(t, "sandbox", api.last["environment"])
	assert.Equal(t, "weekly", api.last["template_id"])
	assert.Equal(t, map[string]any{"week": float64(42)}, api.last["template_data"])

	atts := api.last["attachments"].([]any)
	require.Len(t, atts, 2)
	att := atts[0].(map[string]any)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("a,b\n1,2\n")), att["content"])
	assert.Equal(t, "text/csv", att["mime_type"])

	flagged := atts[1].(map[string]any)
	assert.Equal(t, "notes, final.txt", flagged["filename"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("done")), flagged["content"])
	assert.Equal(t, "text/plain", flagged["mime_type"])
}

func TestSendValidationFailureSkipsNetwork(t *testing.T) {
	api := newFakeAPI(t, http.StatusOK, `{}`)
	setEnv(t, api.server.URL)

	code, out, errOut := runCLI("send", "-to", "a@example.com", "-from", "s@example.com")
	assert.Equal(t, exitFailure, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Missing required field: subject")
	assert.Contains(t, errOut, "no request was sent")
	assert.Equal(t, int32(0), atomic.LoadInt32(&api.calls))
}

func TestSendAPIError(t *testing.T) {
	api := newFakeAPI(t, http.StatusBadRequest, `{"detail":["Invalid request"]}`)
	setEnv(t, api.server.URL)

	code, _, errOut := runCLI("send", "-to", "a@example.com", "-from", "s@example.com", "-subject", "x", "-text", "y")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, `API Error [400]: ["Invalid request"]`)
}

func TestSendRequiresAPIKey(t *testing.T) {
	setEnv(t, "http://127.0.0.1:1")
	t.Setenv("SENDSCULPT_API_KEY", "")

	code, _, errOut := runCLI("send", "-to", "a@example.com")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, errOut, "SENDSCULPT_API_KEY")
}

func TestUsage(t *testing.T) {
	code, _, errOut := runCLI()
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut, "usage")

	code, _, _ = runCLI("deliver")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI("send", "-nope")
	assert.Equal(t, exitUsage, code)
}

func TestLoadRequestFileErrors(t *testing.T) {
	_, err := loadRequestFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = loadRequestFile(bad)
	assert.Error(t, err)
}
