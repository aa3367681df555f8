package totp

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/tech-arch1tect/authkit/config"
	"github.com/tech-arch1tect/authkit/services/logging"
	"github.com/tech-arch1tect/authkit/services/qrcode"
	"go.uber.org/zap"
)

var (
	ErrConfiguration = errors.New("invalid TOTP configuration")
	ErrRender        = errors.New("failed to render TOTP QR code")
	ErrClock         = errors.New("system clock unavailable")
)

const (
	DefaultPeriod = 30
	Digits        = otp.DigitsSix
	Algorithm     = otp.AlgorithmSHA1
)

var unixEpoch = time.Unix(0, 0)

type Service struct {
	period   uint
	window   uint
	renderer qrcode.Renderer
	random   io.Reader
	clock    Clock
	logger   *logging.Service
}

type Option func(*Service)

// WithRandom replaces crypto/rand as the source of secret entropy.
func WithRandom(r io.Reader) Option {
	return func(s *Service) {
		s.random = r
	}
}

func WithClock(c Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

func NewService(cfg *config.Config, renderer qrcode.Renderer, logger *logging.Service, opts ...Option) *Service {
	s := &Service{
		period:   cfg.TOTP.Period,
		window:   cfg.TOTP.Window,
		renderer: renderer,
		random:   rand.Reader,
		clock:    systemClock{},
		logger:   logger.Named("totp"),
	}
	if s.period == 0 {
		s.period = DefaultPeriod
	}
	if s.window > config.MaxWindow {
		s.window = config.MaxWindow
	}
	if s.renderer == nil {
		s.renderer = qrcode.PNGRenderer{Size: 256}
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger.Debug("initializing TOTP service",
		zap.Uint("period", s.period),
		zap.Uint("window", s.window))

	return s
}

// GenerateRandomString returns 32 bytes from the random source as 64
// lowercase hex characters. It panics if the source fails.
func (s *Service) GenerateRandomString() string {
	return randomHex(s.random, SecretEntropyBytes)
}

// Generate creates a fresh secret and the QR code that enrolls it.
func (s *Service) Generate(issuer, accountName string) (*Enrollment, error) {
	secret := s.GenerateRandomString()

	key, err := s.buildKey(issuer, accountName, secret)
	if err != nil {
		return nil, err
	}

	image, err := s.renderer.Render(key.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	s.logger.Debug("TOTP enrollment generated",
		zap.String("issuer", issuer),
		zap.String("account_name", accountName))

	return &Enrollment{
		QRCode: image,
		Secret: secret,
		URL:    key.URL(),
	}, nil
}

// ProvisioningURI returns the otpauth:// URI for an existing secret.
func (s *Service) ProvisioningURI(issuer, accountName, secret string) (string, error) {
	if err := checkSecret(secret); err != nil {
		return "", err
	}

	key, err := s.buildKey(issuer, accountName, secret)
	if err != nil {
		return "", err
	}

	return key.String(), nil
}

// Verify reports whether code matches secret at the current time. Only the
// current step is accepted unless the service was configured with a window.
// Errors are reserved for configuration and clock failures; a wrong code is
// false with a nil error.
func (s *Service) Verify(code, secret string) (bool, error) {
	if err := checkSecret(secret); err != nil {
		return false, err
	}

	now, err := s.now()
	if err != nil {
		return false, err
	}

	step := time.Duration(s.period) * time.Second
	for offset := -int(s.window); offset <= int(s.window); offset++ {
		at := now.Add(time.Duration(offset) * step)
		if at.Before(unixEpoch) {
			continue
		}

		expected, err := s.codeAt(secret, at)
		if err != nil {
			return false, err
		}

		if subtle.ConstantTimeCompare([]byte(expected), []byte(code)) == 1 {
			s.logger.Debug("TOTP code accepted", zap.Int("step_offset", offset))
			return true, nil
		}
	}

	return false, nil
}

// ExpectedCode returns the code for the time step containing t.
func (s *Service) ExpectedCode(secret string, t time.Time) (string, error) {
	if err := checkSecret(secret); err != nil {
		return "", err
	}

	if t.Before(unixEpoch) {
		return "", fmt.Errorf("%w: %s is before the Unix epoch", ErrClock, t.UTC().Format(time.RFC3339))
	}

	return s.codeAt(secret, t)
}

func (s *Service) CurrentCode(secret string) (string, error) {
	now, err := s.now()
	if err != nil {
		return "", err
	}

	return s.ExpectedCode(secret, now)
}

// TTL returns how long the current code stays valid.
func (s *Service) TTL() (time.Duration, error) {
	now, err := s.now()
	if err != nil {
		return 0, err
	}

	elapsed := uint64(now.Unix()) % uint64(s.period)
	return time.Duration(uint64(s.period)-elapsed) * time.Second, nil
}

func (s *Service) Period() time.Duration {
	return time.Duration(s.period) * time.Second
}

func (s *Service) buildKey(issuer, accountName, secret string) (*otp.Key, error) {
	if strings.Contains(issuer, ":") {
		return nil, fmt.Errorf("%w: issuer must not contain ':'", ErrConfiguration)
	}
	if strings.Contains(accountName, ":") {
		return nil, fmt.Errorf("%w: account name must not contain ':'", ErrConfiguration)
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: accountName,
		Period:      s.period,
		Secret:      SecretBytes(secret),
		Digits:      Digits,
		Algorithm:   Algorithm,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return key, nil
}

func (s *Service) codeAt(secret string, t time.Time) (string, error) {
	code, err := totp.GenerateCodeCustom(encodeSecret(secret), t, totp.ValidateOpts{
		Period:    s.period,
		Digits:    Digits,
		Algorithm: Algorithm,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return code, nil
}

func (s *Service) now() (time.Time, error) {
	now := s.clock.Now()
	if now.Before(unixEpoch) {
		return time.Time{}, fmt.Errorf("%w: %s is before the Unix epoch", ErrClock, now.UTC().Format(time.RFC3339))
	}
	return now, nil
}

func checkSecret(secret string) error {
	if n := len(SecretBytes(secret)); n < MinSecretBytes {
		return fmt.Errorf("%w: secret is %d bytes, need at least %d", ErrConfiguration, n, MinSecretBytes)
	}
	return nil
}
