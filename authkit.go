// Package authkit generates TOTP enrollment payloads and verifies the codes
// authenticator apps produce from them.
//
// The package-level functions use a shared engine with default settings:
// 30 second steps, six digits, SHA-1 and no drift tolerance. Use New to get
// an engine built from configuration instead.
package authkit

import (
	"sync"

	"github.com/tech-arch1tect/authkit/app"
	"github.com/tech-arch1tect/authkit/config"
	"github.com/tech-arch1tect/authkit/internal/options"
	"github.com/tech-arch1tect/authkit/services/logging"
	"github.com/tech-arch1tect/authkit/services/qrcode"
	"github.com/tech-arch1tect/authkit/services/totp"
	"go.uber.org/fx"
)

type (
	App        = app.App
	Enrollment = totp.Enrollment
)

var (
	ErrConfiguration = totp.ErrConfiguration
	ErrRender        = totp.ErrRender
	ErrClock         = totp.ErrClock
)

func New(opts ...options.Option) (*App, error) {
	return app.New(opts...)
}

func WithConfig(cfg *config.Config) options.Option {
	return options.WithConfig(cfg)
}

func WithLogger(logger *logging.Service) options.Option {
	return options.WithLogger(logger)
}

func WithRenderer(renderer qrcode.Renderer) options.Option {
	return options.WithRenderer(renderer)
}

func WithTOTPOptions(opts ...totp.Option) options.Option {
	return options.WithTOTPOptions(opts...)
}

// WithFxOptions adds options to the underlying fx application, such as
// fx.Invoke to receive the TOTP service in the caller's own graph.
func WithFxOptions(opts ...fx.Option) options.Option {
	return options.WithFxOptions(opts...)
}

var (
	defaultOnce   sync.Once
	defaultEngine *totp.Service
)

func engine() *totp.Service {
	defaultOnce.Do(func() {
		defaultEngine = totp.NewService(config.Default(), nil, nil)
	})
	return defaultEngine
}

// GenerateRandomString returns a new 64 character hex secret.
func GenerateRandomString() string {
	return engine().GenerateRandomString()
}

// Generate returns a QR code and a fresh secret for issuer and accountName.
// The caller must store the secret for later calls to Verify.
func Generate(issuer, accountName string) (*Enrollment, error) {
	return engine().Generate(issuer, accountName)
}

// Verify checks a six digit code against a secret from Generate. A false
// result with a nil error means the code was wrong.
func Verify(code, secret string) (bool, error) {
	return engine().Verify(code, secret)
}
