package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App  AppConfig  `envPrefix:"APP_"`
	Log  LogConfig  `envPrefix:"LOG_"`
	TOTP TOTPConfig `envPrefix:"TOTP_"`
}

type AppConfig struct {
	Name string `env:"NAME" envDefault:"authkit"`
}

type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
	Output string `env:"OUTPUT" envDefault:"stdout"`
}

// TOTPConfig holds the RFC 6238 parameters shared by enrollment and
// verification. Digits and algorithm are fixed (6, SHA-1) and not configurable.
type TOTPConfig struct {
	Period uint `env:"PERIOD" envDefault:"30"`
	// Window is the number of steps either side of the current one that
	// verification accepts. Zero means only the current step.
	Window     uint   `env:"WINDOW" envDefault:"0"`
	QRRenderer string `env:"QR_RENDERER" envDefault:"qrcode"`
	QRSize     int    `env:"QR_SIZE" envDefault:"256"`
}

const (
	RendererQRCode  = "qrcode"
	RendererBarcode = "barcode"

	// MaxWindow caps drift tolerance at ten steps either side.
	MaxWindow = 10
)

func LoadConfig(cfg *Config) error {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	if err := env.Parse(cfg); err != nil {
		return err
	}

	return cfg.Validate()
}

// Default returns a Config populated from envDefault tags only.
func Default() *Config {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: map[string]string{}}); err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) Validate() error {
	return validateTOTPConfig(&c.TOTP)
}

func validateTOTPConfig(cfg *TOTPConfig) error {
	if cfg.Period == 0 {
		return fmt.Errorf("TOTP period must be greater than zero")
	}

	if cfg.Window > MaxWindow {
		return fmt.Errorf("TOTP window must be at most %d steps, got %d", MaxWindow, cfg.Window)
	}

	if cfg.QRSize <= 0 {
		return fmt.Errorf("TOTP QR size must be greater than zero, got %d", cfg.QRSize)
	}

	switch cfg.QRRenderer {
	case RendererQRCode, RendererBarcode:
	default:
		return fmt.Errorf("unsupported TOTP QR renderer: %s (supported: %s, %s)", cfg.QRRenderer, RendererQRCode, RendererBarcode)
	}

	return nil
}
