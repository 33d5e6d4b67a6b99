package notifxsendsculpt

import (
	"context"

	"github.com/sendsculpt/sendsculpt-go/pkg/notifx"
	"github.com/sendsculpt/sendsculpt-go/pkg/sendsculpt"
)

const providerName = "sendsculpt"

// Sender is the part of *sendsculpt.Client the provider needs.
type Sender interface {
	SendEmail(ctx context.Context, req sendsculpt.EmailSendRequest) (*sendsculpt.SendResult, error)
}

// Provider implements notifx.EmailSender on top of the SendSculpt client.
type Provider struct {
	client      Sender
	fromAddress string
}

// NewProvider creates a provider. fromAddress is used when a message has no
// From of its own.
func NewProvider(client Sender, fromAddress string) *Provider {
	return &Provider{
		client:      client,
		fromAddress: fromAddress,
	}
}

// SendEmail sends a single email via SendSculpt. The underlying sendsculpt
// error stays in the chain, so errx.IsCode works on its codes.
func (p *Provider) SendEmail(ctx context.Context, msg notifx.EmailMessage, opts ...notifx.Option) (*notifx.SendResult, error) {
	req := p.buildRequest(msg, notifx.ApplySendOptions(opts))

	res, err := p.client.SendEmail(ctx, req)
	if err != nil {
		return nil, providerErrors.NewWithCause(ErrSendFailed, err).
			WithDetail("to", msg.To).
			WithDetail("subject", msg.Subject)
	}

	return &notifx.SendResult{
		MessageID: res.MessageID,
		Status:    res.Status,
		Provider:  providerName,
	}, nil
}

func (p *Provider) buildRequest(msg notifx.EmailMessage, so notifx.SendOptions) sendsculpt.EmailSendRequest {
	from := msg.From
	if from == "" {
		from = p.fromAddress
	}

	req := sendsculpt.EmailSendRequest{
		To:           msg.To,
		Subject:      msg.Subject,
		FromEmail:    from,
		SenderName:   msg.FromName,
		CC:           msg.CC,
		BCC:          msg.BCC,
		ReplyTo:      msg.ReplyTo,
		TemplateID:   so.TemplateID,
		TemplateData: so.TemplateData,
	}
	if so.TemplateID == "" {
		req.BodyHTML = msg.HTMLBody
		req.BodyText = msg.TextBody
	}

	for _, a := range msg.Attachments {
		spec := sendsculpt.AttachmentSpec{
			Filename: a.Filename,
			MimeType: a.ContentType,
		}
		if len(a.Data) > 0 {
			spec.ContentBytes = a.Data
		} else {
			spec.FilePath = a.Path
		}
		req.Attachments = append(req.Attachments, spec)
	}

	return req
}
