// Package notifx is a provider-agnostic facade for sending email. Providers
// live in subpackages and implement EmailSender.
package notifx

import (
	"context"
	"strings"
)

// EmailSender sends a single email.
type EmailSender interface {
	SendEmail(ctx context.Context, msg EmailMessage, opts ...Option) (*SendResult, error)
}

// Client is the main entry point for sending notifications.
type Client struct {
	provider EmailSender
}

// NewClient creates a new notification client.
func NewClient(provider EmailSender) *Client {
	return &Client{provider: provider}
}

// SendEmail checks the message and hands it to the configured provider.
func (c *Client) SendEmail(ctx context.Context, msg EmailMessage, opts ...Option) (*SendResult, error) {
	if c.provider == nil {
		return nil, notifxErrors.New(ErrNoProvider)
	}
	if len(msg.To) == 0 {
		return nil, notifxErrors.New(ErrInvalidMessage).WithDetail("reason", "no recipients")
	}
	if strings.TrimSpace(msg.Subject) == "" {
		return nil, notifxErrors.New(ErrInvalidMessage).WithDetail("reason", "empty subject")
	}
	return c.provider.SendEmail(ctx, msg, opts...)
}
