package notifxconsole

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sendsculpt/sendsculpt-go/pkg/logx"
	"github.com/sendsculpt/sendsculpt-go/pkg/notifx"
)

// ConsoleProvider logs emails via logx instead of sending them. Intended for
// development and testing.
type ConsoleProvider struct {
	logger *logx.Logger
}

// NewConsoleProvider creates a console provider. A nil logger means the
// default logx logger.
func NewConsoleProvider(logger *logx.Logger) *ConsoleProvider {
	return &ConsoleProvider{logger: logger}
}

// SendEmail logs the email and returns a locally generated message id.
func (p *ConsoleProvider) SendEmail(_ context.Context, msg notifx.EmailMessage, opts ...notifx.Option) (*notifx.SendResult, error) {
	so := notifx.ApplySendOptions(opts)
	logger := p.logger
	if logger == nil {
		logger = logx.GetDefaultLogger()
	}

	id := uuid.NewString()
	fields := logx.Fields{
		"message_id":  id,
		"from":        logx.RedactEmail(msg.From),
		"to":          strings.Join(logx.RedactEmails(msg.To), ", "),
		"subject":     msg.Subject,
		"attachments": len(msg.Attachments),
	}
	if so.TemplateID != "" {
		fields["template_id"] = so.TemplateID
	}
	logger.WithFields(fields).Info("notifx/console: email sent (dev mode)")

	if msg.TextBody != "" {
		logger.WithField("message_id", id).Debugf("notifx/console: text body:\n%s", msg.TextBody)
	}
	if msg.HTMLBody != "" {
		logger.WithField("message_id", id).Debugf("notifx/console: html body:\n%s", msg.HTMLBody)
	}

	return &notifx.SendResult{MessageID: id, Status: "logged", Provider: "console"}, nil
}
