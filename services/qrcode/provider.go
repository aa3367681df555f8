package qrcode

import (
	"github.com/tech-arch1tect/authkit/config"
	"go.uber.org/fx"
)

func NewProvider(cfg *config.Config) (Renderer, error) {
	return NewRenderer(cfg.TOTP)
}

var Module = fx.Options(
	fx.Provide(NewProvider),
)
