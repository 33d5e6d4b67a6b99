package main

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sendsculpt/sendsculpt-go/pkg/logx"
	"github.com/sendsculpt/sendsculpt-go/pkg/sendsculpt"
)

type storedMessage struct {
	MessageID  string                      `json:"message_id"`
	Status     string                      `json:"status"`
	ReceivedAt time.Time                   `json:"received_at"`
	Payload    sendsculpt.EmailSendPayload `json:"payload"`
}

type outbox struct {
	mu       sync.RWMutex
	messages map[string]storedMessage
	order    []string
}

func newOutbox() *outbox {
	return &outbox{messages: make(map[string]storedMessage)}
}

func (o *outbox) add(m storedMessage) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.messages[m.MessageID] = m
	o.order = append(o.order, m.MessageID)
}

func (o *outbox) get(id string) (storedMessage, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	m, ok := o.messages[id]
	return m, ok
}

func (o *outbox) list() []storedMessage {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]storedMessage, 0, len(o.order))
	for _, id := range o.order {
		out = append(out, o.messages[id])
	}
	return out
}

type handlers struct {
	apiKey string
	outbox *outbox
}

func (h *handlers) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "sendsculpt-stub-api",
		"warning": "stub server, nothing is delivered",
	})
}

func (h *handlers) authenticate(c *fiber.Ctx) error {
	key := c.Get(sendsculpt.APIKeyHeader)
	if key == "" {
		return stubErrors.New(ErrUnauthorized)
	}
	if h.apiKey != "" && subtle.ConstantTimeCompare([]byte(key), []byte(h.apiKey)) != 1 {
		return stubErrors.New(ErrUnauthorized)
	}
	return c.Next()
}

func (h *handlers) send(c *fiber.Ctx) error {
	var payload sendsculpt.EmailSendPayload
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return invalidPayload("body is not a valid JSON email payload: " + err.Error())
	}

	if problems := checkPayload(&payload); len(problems) > 0 {
		return invalidPayload(problems...)
	}

	status := "sent"
	if payload.Environment == "sandbox" {
		status = "sandboxed"
	}

	msg := storedMessage{
		MessageID:  uuid.NewString(),
		Status:     status,
		ReceivedAt: time.Now().UTC(),
		Payload:    payload,
	}
	h.outbox.add(msg)

	logx.WithFields(logx.Fields{
		"message_id":  msg.MessageID,
		"to":          strings.Join(logx.RedactEmails(payload.To), ", "),
		"environment": payload.Environment,
		"attachments": len(payload.Attachments),
	}).Info("Accepted email")

	return c.JSON(fiber.Map{
		"message_id": msg.MessageID,
		"status":     msg.Status,
	})
}

func (h *handlers) listMessages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"messages": h.outbox.list()})
}

func (h *handlers) getMessage(c *fiber.Ctx) error {
	m, ok := h.outbox.get(c.Params("id"))
	if !ok {
		return stubErrors.New(ErrMessageNotFound).WithDetail("message_id", c.Params("id"))
	}
	return c.JSON(m)
}

// checkPayload reports every problem rather than stopping at the first.
func checkPayload(p *sendsculpt.EmailSendPayload) []string {
	var problems []string
	if len(p.To) == 0 {
		problems = append(problems, "to: at least one recipient is required")
	}
	if strings.TrimSpace(p.Subject) == "" {
		problems = append(problems, "subject: field required")
	}
	if strings.TrimSpace(p.FromEmail) == "" {
		problems = append(problems, "from_email: field required")
	}
	if p.Environment == "" {
		problems = append(problems, "environment: field required")
	}
	if p.TemplateID != "" && (p.BodyHTML != "" || p.BodyText != "") {
		problems = append(problems, "template_id cannot be combined with body_html or body_text")
	}
	if len(p.TemplateData) > 0 && p.TemplateID == "" {
		problems = append(problems, "template_data requires template_id")
	}
	for i, a := range p.Attachments {
		if a.Filename == "" {
			problems = append(problems, fmt.Sprintf("attachments[%d].filename: field required", i))
		}
		if _, err := base64.StdEncoding.DecodeString(a.Content); err != nil || a.Content == "" {
			problems = append(problems, fmt.Sprintf("attachments[%d].content: must be non-empty base64", i))
		}
	}
	return problems
}
