package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSendFlags(t *testing.T, args ...string) *sendFlags {
	t.Helper()
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var f sendFlags
	f.register(fs)
	require.NoError(t, fs.Parse(args))
	return &f
}

func TestFlagsOverrideRequestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"to": ["file@example.com"],
		"subject": "From file",
		"from_email": "file-sender@example.com",
		"body_html": "<p>file</p>"
	}`), 0o644))

	f := parseSendFlags(t,
		"-f", path,
		"-subject", "From flag",
		"-cc", "c1@example.com", "-cc", "c2@example.com",
		"-attach", "docs/a.pdf",
		"-template-data", `{"plan": "pro"}`,
	)

	req, err := f.buildRequest()
	require.NoError(t, err)

	assert.Equal(t, []string{"file@example.com"}, req.To)
	assert.Equal(t, "From flag", req.Subject)
	assert.Equal(t, "file-sender@example.com", req.FromEmail)
	assert.Equal(t, "<p>file</p>", req.BodyHTML)
	assert.Equal(t, []string{"c1@example.com", "c2@example.com"}, req.CC)
	assert.Equal(t, map[string]any{"plan": "pro"}, req.TemplateData)

	require.Len(t, req.Attachments, 1)
	assert.Equal(t, "a.pdf", req.Attachments[0].Filename)
	assert.Equal(t, "docs/a.pdf", req.Attachments[0].FilePath)
}

func TestAttachKeepsCommasInPaths(t *testing.T) {
	f := parseSendFlags(t,
		"-attach", "reports/q1,q2 summary.pdf",
		"-attach", "invoice.pdf",
	)

	req, err := f.buildRequest()
	require.NoError(t, err)

	require.Len(t, req.Attachments, 2)
	assert.Equal(t, "reports/q1,q2 summary.pdf", req.Attachments[0].FilePath)
	assert.Equal(t, "q1,q2 summary.pdf", req.Attachments[0].Filename)
	assert.Equal(t, "invoice.pdf", req.Attachments[1].FilePath)
}

func TestInvalidTemplateData(t *testing.T) {
	f := parseSendFlags(t, "-template-data", "[unclosed")
	_, err := f.buildRequest()
	assert.Error(t, err)
}

func TestStringListSplitsAndTrims(t *testing.T) {
	var s stringList
	require.NoError(t, s.Set(" a@example.com , ,b@example.com"))
	require.NoError(t, s.Set("c@example.com"))
	assert.Equal(t, stringList{"a@example.com", "b@example.com", "c@example.com"}, s)
	assert.Equal(t, "a@example.com,b@example.com,c@example.com", s.String())
}
