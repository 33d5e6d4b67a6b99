package sendsculpt

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON writes the payload with an explicit omit-if-absent rule: the
// required fields and environment are always written, every other field only
// when it is non-empty. No null placeholders are ever produced.
func (p EmailSendPayload) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()

	to := p.To
	if to == nil {
		to = []string{}
	}
	w.field("to", to)
	w.field("subject", p.Subject)
	w.field("from_email", p.FromEmail)

	w.fieldIf(p.BodyHTML != "", "body_html", p.BodyHTML)
	w.fieldIf(p.BodyText != "", "body_text", p.BodyText)
	w.fieldIf(len(p.CC) > 0, "cc", p.CC)
	w.fieldIf(len(p.BCC) > 0, "bcc", p.BCC)
	w.fieldIf(p.TemplateID != "", "template_id", p.TemplateID)
	w.fieldIf(len(p.TemplateData) > 0, "template_data", p.TemplateData)
	w.fieldIf(len(p.ReplyTo) > 0, "reply_to", p.ReplyTo)
	w.fieldIf(len(p.Attachments) > 0, "attachments", p.Attachments)
	w.fieldIf(p.SenderName != "", "sender_name", p.SenderName)

	w.field("environment", p.Environment)

	return w.bytes()
}

// MarshalJSON omits mime_type when it is empty.
func (a NormalizedAttachment) MarshalJSON() ([]byte, error) {
	w := newObjectWriter()
	w.field("filename", a.Filename)
	w.field("content", a.Content)
	w.fieldIf(a.MimeType != "", "mime_type", a.MimeType)
	return w.bytes()
}

// objectWriter emits a JSON object field by field, in call order, without
// escaping HTML in string values.
type objectWriter struct {
	buf bytes.Buffer
	enc *json.Encoder
	n   int
	err error
}

func newObjectWriter() *objectWriter {
	w := &objectWriter{}
	w.enc = json.NewEncoder(&w.buf)
	w.enc.SetEscapeHTML(false)
	w.buf.WriteByte('{')
	return w
}

func (w *objectWriter) field(name string, value any) {
	if w.err != nil {
		return
	}
	if w.n > 0 {
		w.buf.WriteByte(',')
	}
	w.n++
	if w.err = w.enc.Encode(name); w.err != nil {
		return
	}
	w.trimNewline()
	w.buf.WriteByte(':')
	if w.err = w.enc.Encode(value); w.err != nil {
		return
	}
	w.trimNewline()
}

func (w *objectWriter) fieldIf(present bool, name string, value any) {
	if present {
		w.field(name, value)
	}
}

// Encoder.Encode terminates every value with a newline.
func (w *objectWriter) trimNewline() {
	w.buf.Truncate(w.buf.Len() - 1)
}

func (w *objectWriter) bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	w.buf.WriteByte('}')
	return w.buf.Bytes(), nil
}
