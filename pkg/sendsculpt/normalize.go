package sendsculpt

import (
	"context"
	"encoding/base64"
	"maps"
	"slices"
	"strings"

	"github.com/sendsculpt/sendsculpt-go/pkg/fsx"
	"github.com/sendsculpt/sendsculpt-go/pkg/fsx/fsxlocal"
)

// Conflict descriptions reported by ErrConflictingFields.
const (
	ConflictTemplateDataWithoutID = "template_data requires template_id"
	ConflictTemplateWithBody      = "template_id excludes body_html/body_text"
)

// Normalizer validates requests and turns them into wire payloads. It holds
// no per-request state and is safe for concurrent use.
type Normalizer struct {
	files fsx.FileReader
}

// NewNormalizer returns a Normalizer that resolves attachment file paths
// through files. A nil reader reads from the local file system.
func NewNormalizer(files fsx.FileReader) *Normalizer {
	if files == nil {
		files = localFiles()
	}
	return &Normalizer{files: files}
}

// Normalize validates req and builds its payload using the local file system
// for attachment paths. A blank environment becomes DefaultEnvironment.
func Normalize(ctx context.Context, req EmailSendRequest, environment string) (*EmailSendPayload, error) {
	return NewNormalizer(nil).Normalize(ctx, req, environment)
}

// Normalize validates req, resolves its attachments and returns the payload
// stamped with environment, or DefaultEnvironment when it is blank. The
// request is not modified.
func (n *Normalizer) Normalize(ctx context.Context, req EmailSendRequest, environment string) (*EmailSendPayload, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	attachments, err := n.resolveAttachments(ctx, req.Attachments)
	if err != nil {
		return nil, err
	}

	p := &EmailSendPayload{
		To:           slices.Clone(req.To),
		Subject:      req.Subject,
		FromEmail:    req.FromEmail,
		BodyHTML:     req.BodyHTML,
		BodyText:     req.BodyText,
		CC:           slices.Clone(req.CC),
		BCC:          slices.Clone(req.BCC),
		TemplateID:   req.TemplateID,
		TemplateData: maps.Clone(req.TemplateData),
		ReplyTo:      slices.Clone(req.ReplyTo),
		Attachments:  attachments,
		SenderName:   req.SenderName,
	}

	// Always last: the client's environment wins over anything upstream.
	if isBlank(environment) {
		environment = DefaultEnvironment
	}
	p.Environment = environment
	return p, nil
}

// Validate checks required fields and option conflicts, reporting the first
// violation only.
func Validate(req EmailSendRequest) error {
	switch {
	case len(req.To) == 0:
		return missingField("to")
	case isBlank(req.Subject):
		return missingField("subject")
	case isBlank(req.FromEmail):
		return missingField("from_email")
	case len(req.TemplateData) > 0 && req.TemplateID == "":
		return conflictingFields(ConflictTemplateDataWithoutID)
	case req.TemplateID != "" && (req.BodyHTML != "" || req.BodyText != ""):
		return conflictingFields(ConflictTemplateWithBody)
	}
	return nil
}

func (n *Normalizer) resolveAttachments(ctx context.Context, specs []AttachmentSpec) ([]NormalizedAttachment, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	out := make([]NormalizedAttachment, 0, len(specs))
	for _, spec := range specs {
		att, err := n.resolveAttachment(ctx, spec)
		if err != nil {
			return nil, err
		}
		out = append(out, att)
	}
	return out, nil
}

func (n *Normalizer) resolveAttachment(ctx context.Context, spec AttachmentSpec) (NormalizedAttachment, error) {
	att := NormalizedAttachment{
		Filename: spec.Filename,
		MimeType: spec.MimeType,
	}

	switch {
	case spec.Content != "":
		att.Content = spec.Content
	case len(spec.ContentBytes) > 0:
		att.Content = EncodeContent(spec.ContentBytes)
	case spec.FilePath != "":
		data, err := n.readAttachment(ctx, spec.FilePath)
		if err != nil {
			return NormalizedAttachment{}, err
		}
		att.Content = EncodeContent(data)
		if att.MimeType == "" {
			att.MimeType = n.contentType(ctx, spec.FilePath)
		}
	default:
		return NormalizedAttachment{}, attachmentSourceMissing(spec.Filename)
	}

	return att, nil
}

func (n *Normalizer) readAttachment(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ok, err := n.files.Exists(ctx, path)
	if err != nil {
		return nil, attachmentNotFound(path, err)
	}
	if !ok {
		return nil, attachmentNotFound(path, fsx.ErrNotExist)
	}

	data, err := n.files.ReadFile(ctx, path)
	if err != nil {
		return nil, attachmentNotFound(path, err)
	}
	return data, nil
}

// contentType asks the reader for the file's MIME type. A failed Stat
// leaves the type empty; the bytes were already read.
func (n *Normalizer) contentType(ctx context.Context, path string) string {
	info, err := n.files.Stat(ctx, path)
	if err != nil {
		return ""
	}
	return info.ContentType
}

// EncodeContent returns the standard, unwrapped base64 encoding of data.
func EncodeContent(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func localFiles() fsx.FileReader {
	// An unrooted local file system cannot fail to construct.
	lfs, _ := fsxlocal.NewLocalFileSystem("")
	return lfs
}
