package totp

import (
	"github.com/tech-arch1tect/authkit/config"
	"github.com/tech-arch1tect/authkit/services/logging"
	"github.com/tech-arch1tect/authkit/services/qrcode"
	"go.uber.org/fx"
)

func NewProvider(cfg *config.Config, renderer qrcode.Renderer, logger *logging.Service) *Service {
	return NewService(cfg, renderer, logger)
}

var Module = fx.Options(
	fx.Provide(NewProvider),
)
