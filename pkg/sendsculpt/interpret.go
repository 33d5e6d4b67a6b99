package sendsculpt

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// diagnosticFields are probed in order on error bodies.
var diagnosticFields = []string{"detail", "errors"}

// Interpret maps a raw HTTP status and body to a SendResult. Any 2xx status
// must carry a JSON object with a non-empty string message_id; anything else becomes an ErrAPI error
// whose message is "API Error [<code>]: <diagnostic>".
func Interpret(statusCode int, body []byte) (*SendResult, error) {
	if statusCode < 200 || statusCode > 299 {
		return nil, apiError(statusCode, Diagnostic(body))
	}

	if err := checkSuccessBody(body); err != nil {
		return nil, sendsculptErrors.NewWithCause(ErrMalformedResponse, err).
			WithDetail("status_code", statusCode)
	}

	var res SendResult
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, sendsculptErrors.NewWithCause(ErrMalformedResponse, err).
			WithDetail("status_code", statusCode)
	}
	res.StatusCode = statusCode
	return &res, nil
}

// Diagnostic extracts human-readable error text from a response body. A
// "detail" (or else "errors") field is preferred: strings are used as-is,
// other JSON values as compact JSON. Any other body is used as trimmed text.
func Diagnostic(body []byte) string {
	if gjson.ValidBytes(body) {
		for _, name := range diagnosticFields {
			r := gjson.GetBytes(body, name)
			if !r.Exists() || r.Type == gjson.Null {
				continue
			}
			if r.Type == gjson.String {
				return r.String()
			}
			return compactJSON(r.Raw)
		}
	}
	return strings.TrimSpace(string(body))
}

// checkSuccessBody requires a JSON object with a non-empty string message_id.
func checkSuccessBody(body []byte) error {
	parsed := gjson.ParseBytes(body)
	if !gjson.ValidBytes(body) || !parsed.IsObject() {
		return errors.New("success body is not a JSON object")
	}
	id := parsed.Get("message_id")
	if id.Type != gjson.String || id.Str == "" {
		return errors.New("success body has no message_id")
	}
	return nil
}

func compactJSON(raw string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(raw)); err != nil {
		return raw
	}
	return buf.String()
}
