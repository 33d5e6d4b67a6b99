package notifxsendsculpt

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/sendsculpt/sendsculpt-go/pkg/errx"
	"github.com/sendsculpt/sendsculpt-go/pkg/notifx"
	"github.com/sendsculpt/sendsculpt-go/pkg/sendsculpt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTransport struct {
	body []byte
	resp *sendsculpt.RawResponse
}

func (s *stubTransport) Post(_ context.Context, _ string, _ map[string]string, body []byte) (*sendsculpt.RawResponse, error) {
	s.body = body
	return s.resp, nil
}

func newProvider(resp *sendsculpt.RawResponse) (*Provider, *stubTransport) {
	tr := &stubTransport{resp: resp}
	client := sendsculpt.NewClient("test-key", sendsculpt.WithTransport(tr), sendsculpt.WithEnvironment("sandbox"))
	return NewProvider(client, "noreply@example.com"), tr
}

func TestProviderSendsThroughClient(t *testing.T) {
	p, tr := newProvider(&sendsculpt.RawResponse{
		StatusCode: 200,
		Body:       []byte(`{"message_id":"msg-42","status":"sandboxed"}`),
	})

	res, err := notifx.NewClient(p).SendEmail(context.Background(), notifx.EmailMessage{
		FromName: "Acme",
		To:       []string{"user@example.com"},
		ReplyTo:  []string{"support@example.com"},
		Subject:  "Receipt",
		TextBody: "Thanks",
		Attachments: []notifx.Attachment{
			{Filename: "r.txt", ContentType: "text/plain", Data: []byte("paid")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "msg-42", res.MessageID)
	assert.Equal(t, "sandboxed", res.Status)
	assert.Equal(t, "sendsculpt", res.Provider)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(tr.body, &wire))
	assert.Equal(t, "noreply@example.com", wire["from_email"])
	assert.Equal(t, "Acme", wire["sender_name"])
	assert.Equal(t, "Thanks", wire["body_text"])
	assert.Equal(t, "sandbox", wire["environment"])

	atts := wire["attachments"].([]any)
	require.Len(t, atts, 1)
	att := atts[0].(map[string]any)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("paid")), att["content"])
}

func TestProviderTemplateDropsBodies(t *testing.T) {
	p, tr := newProvider(&sendsculpt.RawResponse{StatusCode: 202, Body: []byte(`{"message_id":"m","status":"queued"}`)})

	_, err := p.SendEmail(context.Background(), notifx.EmailMessage{
		From:     "team@example.com",
		To:       []string{"user@example.com"},
		Subject:  "Welcome",
		HTMLBody: "<p>ignored</p>",
	}, notifx.WithTemplate("welcome", map[string]any{"name": "Ada"}))
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(tr.body, &wire))
	assert.Equal(t, "welcome", wire["template_id"])
	assert.NotContains(t, wire, "body_html")
	assert.Equal(t, "team@example.com", wire["from_email"])
}

func TestProviderWrapsAPIError(t *testing.T) {
	p, _ := newProvider(&sendsculpt.RawResponse{StatusCode: 400, Body: []byte(`{"detail":["Invalid request"]}`)})

	_, err := p.SendEmail(context.Background(), notifx.EmailMessage{
		To:       []string{"user@example.com"},
		Subject:  "Hi",
		TextBody: "x",
	})
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, ErrSendFailed))
	assert.True(t, errx.IsCode(err, sendsculpt.ErrAPI))

	status, ok := sendsculpt.StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, 400, status)
}
