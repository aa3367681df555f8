package app

import (
	"context"
	"fmt"

	"github.com/tech-arch1tect/authkit/config"
	"github.com/tech-arch1tect/authkit/services/logging"
	"github.com/tech-arch1tect/authkit/services/qrcode"
	"github.com/tech-arch1tect/authkit/services/totp"
	"go.uber.org/fx"
)

type AppBuilder struct {
	config      *config.Config
	logger      *logging.Service
	renderer    qrcode.Renderer
	totpOptions []totp.Option
	fxOptions   []fx.Option
	errors      []error
}

func NewApp() *AppBuilder {
	return &AppBuilder{
		totpOptions: make([]totp.Option, 0),
		fxOptions:   make([]fx.Option, 0),
		errors:      make([]error, 0),
	}
}

func (b *AppBuilder) WithConfig(cfg *config.Config) *AppBuilder {
	if cfg == nil {
		b.addError("config cannot be nil")
		return b
	}
	b.config = cfg
	return b
}

func (b *AppBuilder) WithAutoConfig() *AppBuilder {
	cfg := &config.Config{}
	if err := config.LoadConfig(cfg); err != nil {
		b.addError(fmt.Sprintf("failed to load config: %v", err))
		return b
	}
	b.config = cfg
	return b
}

// WithLogger skips building a logger from config.
func (b *AppBuilder) WithLogger(logger *logging.Service) *AppBuilder {
	if logger == nil {
		b.addError("logger cannot be nil")
		return b
	}
	b.logger = logger
	return b
}

// WithRenderer replaces the renderer selected by TOTP_QR_RENDERER.
func (b *AppBuilder) WithRenderer(renderer qrcode.Renderer) *AppBuilder {
	if renderer == nil {
		b.addError("renderer cannot be nil")
		return b
	}
	b.renderer = renderer
	return b
}

func (b *AppBuilder) WithTOTPOptions(opts ...totp.Option) *AppBuilder {
	b.totpOptions = append(b.totpOptions, opts...)
	return b
}

func (b *AppBuilder) WithFxOptions(opts ...fx.Option) *AppBuilder {
	b.fxOptions = append(b.fxOptions, opts...)
	return b
}

func (b *AppBuilder) Build() (*App, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	app := &App{}

	fxOptions := b.buildFxOptions()
	fxOptions = append(fxOptions, fx.Populate(&app.config, &app.logger, &app.totp))

	fxApp := fx.New(fxOptions...)
	if err := fxApp.Err(); err != nil {
		return nil, fmt.Errorf("failed to build application: %w", err)
	}
	app.fx = fxApp

	return app, nil
}

func (b *AppBuilder) addError(msg string) {
	b.errors = append(b.errors, fmt.Errorf("%s", msg))
}

func (b *AppBuilder) validate() error {
	if len(b.errors) > 0 {
		return fmt.Errorf("configuration errors: %v", b.errors)
	}
	return nil
}

func (b *AppBuilder) buildFxOptions() []fx.Option {
	// A nil config is loaded from the environment by the provider.
	options := []fx.Option{
		config.NewProvider(b.config),
		fx.NopLogger,
	}

	if b.logger != nil {
		options = append(options, fx.Supply(b.logger))
	} else {
		options = append(options, logging.Module)
	}

	if b.renderer != nil {
		renderer := b.renderer
		options = append(options, fx.Provide(func() qrcode.Renderer { return renderer }))
	} else {
		options = append(options, qrcode.Module)
	}

	if len(b.totpOptions) > 0 {
		totpOptions := b.totpOptions
		options = append(options, fx.Provide(func(cfg *config.Config, renderer qrcode.Renderer, logger *logging.Service) *totp.Service {
			return totp.NewService(cfg, renderer, logger, totpOptions...)
		}))
	} else {
		options = append(options, totp.Module)
	}

	options = append(options, b.fxOptions...)

	options = append(options, fx.Invoke(func(lc fx.Lifecycle, logger *logging.Service) {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				// Sync on stdout returns EINVAL on Linux.
				_ = logger.Sync()
				return nil
			},
		})
	}))

	return options
}
