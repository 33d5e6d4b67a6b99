package sendsculpt

import (
	"fmt"

	"github.com/sendsculpt/sendsculpt-go/pkg/errx"
)

var sendsculptErrors = errx.NewRegistry("SENDSCULPT")

var (
	ErrMissingField            = sendsculptErrors.Register("MISSING_FIELD", errx.TypeValidation, 400, "Missing required field")
	ErrConflictingFields       = sendsculptErrors.Register("CONFLICTING_FIELDS", errx.TypeValidation, 400, "Conflicting fields")
	ErrAttachmentSourceMissing = sendsculptErrors.Register("ATTACHMENT_SOURCE_MISSING", errx.TypeValidation, 400, "Attachment must specify content, content_bytes or file_path")
	ErrAttachmentNotFound      = sendsculptErrors.Register("ATTACHMENT_NOT_FOUND", errx.TypeNotFound, 404, "Attachment file not found")
	ErrAPI                     = sendsculptErrors.Register("API_ERROR", errx.TypeExternal, 502, "API error")
	ErrMalformedResponse       = sendsculptErrors.Register("MALFORMED_RESPONSE", errx.TypeExternal, 502, "Malformed response from API")
	ErrTransport               = sendsculptErrors.Register("TRANSPORT", errx.TypeExternal, 502, "Request to API failed")
	ErrEncodePayload           = sendsculptErrors.Register("ENCODE_PAYLOAD", errx.TypeInternal, 500, "Failed to encode payload")
)

func missingField(name string) *errx.Error {
	return sendsculptErrors.NewWithMessage(ErrMissingField, fmt.Sprintf("Missing required field: %s", name)).
		WithDetail("field", name)
}

func conflictingFields(description string) *errx.Error {
	return sendsculptErrors.NewWithMessage(ErrConflictingFields, description).
		WithDetail("conflict", description)
}

func attachmentSourceMissing(filename string) *errx.Error {
	return sendsculptErrors.New(ErrAttachmentSourceMissing).
		WithDetail("filename", filename)
}

func attachmentNotFound(path string, cause error) *errx.Error {
	e := sendsculptErrors.NewWithMessage(ErrAttachmentNotFound, fmt.Sprintf("Attachment file not found: %s", path)).
		WithDetail("path", path)
	e.Err = cause
	return e
}

// apiError keeps the upstream status code as the error's HTTPStatus.
func apiError(statusCode int, diagnostic string) *errx.Error {
	return sendsculptErrors.NewWithMessage(ErrAPI, fmt.Sprintf("API Error [%d]: %s", statusCode, diagnostic)).
		WithHTTPStatus(statusCode).
		WithDetail("status_code", statusCode).
		WithDetail("diagnostic", diagnostic)
}

// StatusCode returns the HTTP status carried by an API error.
func StatusCode(err error) (int, bool) {
	e, ok := errx.Find(err, ErrAPI)
	if !ok {
		if e, ok = errx.Find(err, ErrMalformedResponse); !ok {
			return 0, false
		}
	}
	code, ok := e.Details["status_code"].(int)
	return code, ok
}

// FieldName returns the field reported by a MissingField error.
func FieldName(err error) (string, bool) {
	e, ok := errx.Find(err, ErrMissingField)
	if !ok {
		return "", false
	}
	name, ok := e.Details["field"].(string)
	return name, ok
}
