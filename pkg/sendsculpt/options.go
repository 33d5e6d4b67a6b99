package sendsculpt

import (
	"net/http"
	"time"

	"github.com/sendsculpt/sendsculpt-go/pkg/fsx"
	"github.com/sendsculpt/sendsculpt-go/pkg/logx"
)

type clientOptions struct {
	baseURL     string
	environment string
	timeout     time.Duration
	httpClient  *http.Client
	transport   Transport
	files       fsx.FileReader
	logger      *logx.Logger
}

// Option configures a Client.
type Option func(*clientOptions)

// WithBaseURL overrides DefaultBaseURL. A trailing slash is ignored.
func WithBaseURL(url string) Option {
	return func(o *clientOptions) {
		o.baseURL = url
	}
}

// WithEnvironment sets the environment tag stamped on every payload, e.g.
// "live" or "sandbox". Blank values keep DefaultEnvironment.
func WithEnvironment(env string) Option {
	return func(o *clientOptions) {
		o.environment = env
	}
}

// WithTimeout sets the timeout of the default HTTP client. It has no effect
// together with WithHTTPClient or WithTransport.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = d
	}
}

// WithHTTPClient sends requests through client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTransport replaces the HTTP transport entirely.
func WithTransport(t Transport) Option {
	return func(o *clientOptions) {
		o.transport = t
	}
}

// WithFileReader resolves attachment FilePath values through files instead
// of the local file system.
func WithFileReader(files fsx.FileReader) Option {
	return func(o *clientOptions) {
		o.files = files
	}
}

// WithLogger logs through logger instead of logx's default logger.
func WithLogger(logger *logx.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}
