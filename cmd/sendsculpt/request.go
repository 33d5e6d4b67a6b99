package main

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/sendsculpt/sendsculpt-go/pkg/sendsculpt"
	"gopkg.in/yaml.v3"
)

// stringList is a repeatable flag that also splits on commas.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}

// pathList is a repeatable flag that keeps each value whole, since file
// names may contain commas.
type pathList []string

func (p *pathList) String() string { return strings.Join(*p, ",") }

func (p *pathList) Set(v string) error {
	if v = strings.TrimSpace(v); v != "" {
		*p = append(*p, v)
	}
	return nil
}

type sendFlags struct {
	file         string
	environment  string
	baseURL      string
	to           stringList
	cc           stringList
	bcc          stringList
	replyTo      stringList
	attach       pathList
	subject      string
	from         string
	senderName   string
	html         string
	text         string
	templateID   string
	templateData string
}

func (f *sendFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.file, "f", "", "request file (.yaml, .yml or .json)")
	fs.StringVar(&f.environment, "env", "", "environment tag, overrides SENDSCULPT_ENVIRONMENT")
	fs.StringVar(&f.baseURL, "base-url", "", "API base URL, overrides SENDSCULPT_BASE_URL")
	fs.Var(&f.to, "to", "recipient (repeatable, comma separated)")
	fs.Var(&f.cc, "cc", "cc recipient (repeatable)")
	fs.Var(&f.bcc, "bcc", "bcc recipient (repeatable)")
	fs.Var(&f.replyTo, "reply-to", "reply-to address (repeatable)")
	fs.Var(&f.attach, "attach", "attachment file path (repeatable, one path per flag)")
	fs.StringVar(&f.subject, "subject", "", "subject line")
	fs.StringVar(&f.from, "from", "", "sender address")
	fs.StringVar(&f.senderName, "sender-name", "", "sender display name")
	fs.StringVar(&f.html, "html", "", "HTML body")
	fs.StringVar(&f.text, "text", "", "plain text body")
	fs.StringVar(&f.templateID, "template-id", "", "server-side template id")
	fs.StringVar(&f.templateData, "template-data", "", "template variables as a YAML or JSON object")
}

// buildRequest loads the request file, if any, then applies flags on top.
func (f *sendFlags) buildRequest() (sendsculpt.EmailSendRequest, error) {
	var req sendsculpt.EmailSendRequest
	if f.file != "" {
		loaded, err := loadRequestFile(f.file)
		if err != nil {
			return req, err
		}
		req = loaded
	}

	if len(f.to) > 0 {
		req.To = f.to
	}
	if len(f.cc) > 0 {
		req.CC = f.cc
	}
	if len(f.bcc) > 0 {
		req.BCC = f.bcc
	}
	if len(f.replyTo) > 0 {
		req.ReplyTo = f.replyTo
	}
	setIfNotEmpty(&req.Subject, f.subject)
	setIfNotEmpty(&req.FromEmail, f.from)
	setIfNotEmpty(&req.SenderName, f.senderName)
	setIfNotEmpty(&req.BodyHTML, f.html)
	setIfNotEmpty(&req.BodyText, f.text)
	setIfNotEmpty(&req.TemplateID, f.templateID)

	if f.templateData != "" {
		var data map[string]any
		if err := yaml.Unmarshal([]byte(f.templateData), &data); err != nil {
			return req, cliErrors.NewWithCause(ErrUsage, err).WithDetail("flag", "template-data")
		}
		req.TemplateData = data
	}

	for _, path := range f.attach {
		req.Attachments = append(req.Attachments, sendsculpt.AttachmentSpec{
			Filename: filepath.Base(path),
			FilePath: path,
		})
	}

	return req, nil
}

func loadRequestFile(path string) (sendsculpt.EmailSendRequest, error) {
	var req sendsculpt.EmailSendRequest

	data, err := os.ReadFile(path)
	if err != nil {
		return req, cliErrors.NewWithCause(ErrRequestFile, err).WithDetail("path", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &req)
	default:
		err = yaml.Unmarshal(data, &req)
	}
	if err != nil {
		return req, cliErrors.NewWithCause(ErrRequestFile, err).WithDetail("path", path)
	}

	return req, nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
