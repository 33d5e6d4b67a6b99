package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sendsculpt/sendsculpt-go/pkg/errx"
	"github.com/sendsculpt/sendsculpt-go/pkg/sendsculpt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fiberTransport routes SDK requests into the app in-process.
type fiberTransport struct {
	app *fiber.App
}

func (f fiberTransport) Post(ctx context.Context, url string, headers map[string]string, body []byte) (*sendsculpt.RawResponse, error) {
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body)).WithContext(ctx)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := f.app.Test(req, -1)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &sendsculpt.RawResponse{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func newSDK(app *fiber.App, key, env string) *sendsculpt.Client {
	return sendsculpt.NewClient(key,
		sendsculpt.WithBaseURL("http://stub.local/api/v1"),
		sendsculpt.WithEnvironment(env),
		sendsculpt.WithTransport(fiberTransport{app: app}),
	)
}

func TestSDKAgainstStub(t *testing.T) {
	app := newApp("secret")
	client := newSDK(app, "secret", "sandbox")

	res, err := client.SendEmail(context.Background(), sendsculpt.EmailSendRequest{
		To:        []string{"user@example.com"},
		Subject:   "Invoice",
		FromEmail: "billing@example.com",
		BodyText:  "attached",
		Attachments: []sendsculpt.AttachmentSpec{
			{Filename: "invoice.txt", MimeType: "text/plain", ContentBytes: []byte("raw bytes here")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "sandboxed", res.Status)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/messages/"+res.MessageID, nil)
	req.Header.Set("x-sendsculpt-key", "secret")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var stored struct {
		Payload sendsculpt.EmailSendPayload `json:"payload"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stored))
	require.Len(t, stored.Payload.Attachments, 1)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("raw bytes here")), stored.Payload.Attachments[0].Content)
	assert.Equal(t, "sandbox", stored.Payload.Environment)
}

func TestSDKReceivesStubErrors(t *testing.T) {
	app := newApp("secret")

	_, err := newSDK(app, "wrong", "live").SendEmail(context.Background(), sendsculpt.EmailSendRequest{
		To:        []string{"user@example.com"},
		Subject:   "Hi",
		FromEmail: "s@example.com",
		BodyText:  "x",
	})
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, sendsculpt.ErrAPI))
	assert.EqualError(t, err, `[SENDSCULPT_API_ERROR] API Error [401]: ["Invalid or missing API key"]`)

	status, ok := sendsculpt.StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, status)
}
