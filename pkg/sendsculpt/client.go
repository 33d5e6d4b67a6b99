package sendsculpt

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sendsculpt/sendsculpt-go/pkg/errx"
	"github.com/sendsculpt/sendsculpt-go/pkg/logx"
)

const (
	DefaultBaseURL     = "https://api.sendsculpt.com/api/v1"
	DefaultEnvironment = "live"
	DefaultTimeout     = time.Minute

	APIKeyHeader    = "x-sendsculpt-key"
	RequestIDHeader = "X-Request-ID"
)

// Client sends email through the SendSculpt API. Its configuration is fixed
// at construction and it is safe for concurrent use.
type Client struct {
	apiKey      string
	baseURL     string
	environment string
	transport   Transport
	normalizer  *Normalizer
	logger      *logx.Logger
}

// NewClient creates a client authenticating with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	o := clientOptions{
		baseURL:     DefaultBaseURL,
		environment: DefaultEnvironment,
		timeout:     DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if strings.TrimSpace(o.environment) == "" {
		o.environment = DefaultEnvironment
	}
	if strings.TrimSpace(o.baseURL) == "" {
		o.baseURL = DefaultBaseURL
	}

	transport := o.transport
	if transport == nil {
		httpClient := o.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: o.timeout}
		}
		transport = NewHTTPTransport(httpClient)
	}

	return &Client{
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(o.baseURL, "/"),
		environment: o.environment,
		transport:   transport,
		normalizer:  NewNormalizer(o.files),
		logger:      o.logger,
	}
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// Environment returns the tag stamped on every payload.
func (c *Client) Environment() string { return c.environment }

// SendEmail validates and normalizes req, posts it and interprets the
// response. Validation and attachment failures return before any request
// is made.
func (c *Client) SendEmail(ctx context.Context, req EmailSendRequest) (*SendResult, error) {
	log := c.log()

	payload, err := c.normalizer.Normalize(ctx, req, c.environment)
	if err != nil {
		log.WithError(err).Debug("sendsculpt: request rejected before sending")
		return nil, err
	}

	body, err := encodePayload(payload)
	if err != nil {
		return nil, sendsculptErrors.NewWithCause(ErrEncodePayload, err)
	}

	requestID := uuid.NewString()
	url := c.baseURL + "/send"
	headers := map[string]string{
		APIKeyHeader:    c.apiKey,
		"Content-Type":  "application/json",
		"Accept":        "application/json",
		RequestIDHeader: requestID,
	}

	fields := logx.Fields{
		"request_id":  requestID,
		"to":          strings.Join(logx.RedactEmails(payload.To), ","),
		"attachments": len(payload.Attachments),
		"environment": payload.Environment,
	}
	log.WithFields(fields).Debug("sendsculpt: sending email")

	resp, err := c.transport.Post(ctx, url, headers, body)
	if err != nil {
		log.WithFields(fields).WithError(err).Warn("sendsculpt: transport failed")
		return nil, sendsculptErrors.NewWithCause(ErrTransport, err).WithDetail("url", url)
	}

	res, err := Interpret(resp.StatusCode, resp.Body)
	if err != nil {
		fields["status_code"] = resp.StatusCode
		log.WithFields(fields).WithError(err).Warn("sendsculpt: send failed")
		return nil, err
	}

	fields["message_id"] = res.MessageID
	fields["status"] = res.Status
	log.WithFields(fields).Debug("sendsculpt: email accepted")
	return res, nil
}

func (c *Client) log() *logx.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logx.GetDefaultLogger()
}

func encodePayload(p *EmailSendPayload) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// IsValidationError reports whether err was raised before any request was
// sent: a missing or conflicting field, or an unusable attachment.
func IsValidationError(err error) bool {
	return errx.IsCode(err, ErrMissingField) ||
		errx.IsCode(err, ErrConflictingFields) ||
		errx.IsCode(err, ErrAttachmentSourceMissing) ||
		errx.IsCode(err, ErrAttachmentNotFound)
}
