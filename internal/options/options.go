package options

import (
	"github.com/tech-arch1tect/authkit/config"
	"github.com/tech-arch1tect/authkit/services/logging"
	"github.com/tech-arch1tect/authkit/services/qrcode"
	"github.com/tech-arch1tect/authkit/services/totp"
	"go.uber.org/fx"
)

type Options struct {
	Config      *config.Config
	Logger      *logging.Service
	Renderer    qrcode.Renderer
	TOTPOptions []totp.Option
	FxOptions   []fx.Option
}

type Option func(*Options)

func WithConfig(cfg *config.Config) Option {
	return func(opts *Options) {
		opts.Config = cfg
	}
}

func WithLogger(logger *logging.Service) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

func WithRenderer(renderer qrcode.Renderer) Option {
	return func(opts *Options) {
		opts.Renderer = renderer
	}
}

func WithTOTPOptions(totpOpts ...totp.Option) Option {
	return func(opts *Options) {
		opts.TOTPOptions = append(opts.TOTPOptions, totpOpts...)
	}
}

func WithFxOptions(fxOpts ...fx.Option) Option {
	return func(opts *Options) {
		opts.FxOptions = append(opts.FxOptions, fxOpts...)
	}
}

func Apply(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
