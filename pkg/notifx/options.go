package notifx

// SendOptions holds optional configuration for a send operation.
type SendOptions struct {
	TemplateID   string
	TemplateData map[string]any
}

// Option is a functional option for send operations.
type Option func(*SendOptions)

// WithTemplate sends a provider-side template instead of the message bodies.
func WithTemplate(id string, data map[string]any) Option {
	return func(o *SendOptions) {
		o.TemplateID = id
		o.TemplateData = data
	}
}

// ApplySendOptions folds opts into a SendOptions value. Providers call it.
func ApplySendOptions(opts []Option) SendOptions {
	var so SendOptions
	for _, o := range opts {
		o(&so)
	}
	return so
}
