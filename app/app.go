package app

import (
	"context"
	"log"
	"time"

	"github.com/tech-arch1tect/authkit/config"
	"github.com/tech-arch1tect/authkit/services/logging"
	"github.com/tech-arch1tect/authkit/services/totp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type App struct {
	fx     *fx.App
	config *config.Config
	logger *logging.Service
	totp   *totp.Service
}

func (a *App) Start() error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return a.fx.Start(ctx)
}

func (a *App) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := a.fx.Stop(ctx); err != nil {
		if a.logger != nil {
			a.logger.Error("Failed to stop application gracefully", zap.Error(err))
		} else {
			log.Printf("Failed to stop application gracefully: %v", err)
		}
	}
}

func (a *App) TOTP() *totp.Service {
	return a.totp
}

func (a *App) Logger() *logging.Service {
	return a.logger
}

func (a *App) Config() *config.Config {
	return a.config
}

// GenerateRandomString, Generate and Verify delegate to the TOTP service.

func (a *App) GenerateRandomString() string {
	return a.totp.GenerateRandomString()
}

func (a *App) Generate(issuer, accountName string) (*totp.Enrollment, error) {
	return a.totp.Generate(issuer, accountName)
}

func (a *App) Verify(code, secret string) (bool, error) {
	return a.totp.Verify(code, secret)
}
