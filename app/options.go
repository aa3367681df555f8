package app

import "github.com/tech-arch1tect/authkit/internal/options"

// New builds an App from functional options. Without a config option the
// environment is loaded.
func New(opts ...options.Option) (*App, error) {
	o := options.Apply(opts...)

	builder := NewApp()
	if o.Config != nil {
		builder.WithConfig(o.Config)
	}
	if o.Logger != nil {
		builder.WithLogger(o.Logger)
	}
	if o.Renderer != nil {
		builder.WithRenderer(o.Renderer)
	}

	return builder.
		WithTOTPOptions(o.TOTPOptions...).
		WithFxOptions(o.FxOptions...).
		Build()
}
