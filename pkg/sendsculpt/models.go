package sendsculpt

// EmailSendRequest is the caller-facing description of one email. Zero values
// mean "absent": an empty string, a nil or empty slice, a nil or empty map.
type EmailSendRequest struct {
	To           []string         `json:"to" yaml:"to"`
	Subject      string           `json:"subject" yaml:"subject"`
	FromEmail    string           `json:"from_email" yaml:"from_email"`
	BodyHTML     string           `json:"body_html,omitempty" yaml:"body_html,omitempty"`
	BodyText     string           `json:"body_text,omitempty" yaml:"body_text,omitempty"`
	CC           []string         `json:"cc,omitempty" yaml:"cc,omitempty"`
	BCC          []string         `json:"bcc,omitempty" yaml:"bcc,omitempty"`
	ReplyTo      []string         `json:"reply_to,omitempty" yaml:"reply_to,omitempty"`
	TemplateID   string           `json:"template_id,omitempty" yaml:"template_id,omitempty"`
	TemplateData map[string]any   `json:"template_data,omitempty" yaml:"template_data,omitempty"`
	SenderName   string           `json:"sender_name,omitempty" yaml:"sender_name,omitempty"`
	Attachments  []AttachmentSpec `json:"attachments,omitempty" yaml:"attachments,omitempty"`
}

// AttachmentSpec names one attachment and where its bytes come from.
// Sources are consulted in the order Content, ContentBytes, FilePath and the
// first non-empty one wins.
type AttachmentSpec struct {
	Filename string `json:"filename" yaml:"filename"`
	MimeType string `json:"mime_type,omitempty" yaml:"mime_type,omitempty"`

	// Content is already base64 encoded and is sent unchanged.
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
	// ContentBytes is encoded to base64.
	ContentBytes []byte `json:"-" yaml:"-"`
	// FilePath is read through the client's fsx.FileReader and encoded.
	FilePath string `json:"file_path,omitempty" yaml:"file_path,omitempty"`
}

// NormalizedAttachment is an attachment whose content has been resolved to
// base64. Only the normalizer produces these.
type NormalizedAttachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	MimeType string `json:"mime_type,omitempty"`
}

// EmailSendPayload is the wire body of POST /send. See MarshalJSON for the
// serialization rules.
type EmailSendPayload struct {
	To           []string               `json:"to"`
	Subject      string                 `json:"subject"`
	FromEmail    string                 `json:"from_email"`
	BodyHTML     string                 `json:"body_html,omitempty"`
	BodyText     string                 `json:"body_text,omitempty"`
	CC           []string               `json:"cc,omitempty"`
	BCC          []string               `json:"bcc,omitempty"`
	TemplateID   string                 `json:"template_id,omitempty"`
	TemplateData map[string]any         `json:"template_data,omitempty"`
	ReplyTo      []string               `json:"reply_to,omitempty"`
	Attachments  []NormalizedAttachment `json:"attachments,omitempty"`
	SenderName   string                 `json:"sender_name,omitempty"`
	Environment  string                 `json:"environment"`
}

// SendResult is the accepted-send response.
type SendResult struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`

	// StatusCode is the HTTP status the API answered with.
	StatusCode int `json:"-"`
}
