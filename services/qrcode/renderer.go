// Package qrcode renders enrollment URIs as base64-encoded PNG QR codes.
package qrcode

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	goqrcode "github.com/skip2/go-qrcode"
	"github.com/tech-arch1tect/authkit/config"
)

var ErrEmptyContent = errors.New("QR content cannot be empty")

// Renderer turns arbitrary text into a base64-encoded PNG image.
type Renderer interface {
	Render(content string) (string, error)
}

// PNGRenderer encodes with skip2/go-qrcode at medium error correction.
type PNGRenderer struct {
	Size int
}

func (r PNGRenderer) Render(content string) (string, error) {
	if content == "" {
		return "", ErrEmptyContent
	}

	raw, err := goqrcode.Encode(content, goqrcode.Medium, r.Size)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// BarcodeRenderer encodes with boombuler/barcode, the same backend
// pquerna/otp uses for Key.Image.
type BarcodeRenderer struct {
	Size int
}

func (r BarcodeRenderer) Render(content string) (string, error) {
	if content == "" {
		return "", ErrEmptyContent
	}

	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}

	scaled, err := barcode.Scale(code, r.Size, r.Size)
	if err != nil {
		return "", fmt.Errorf("failed to scale QR code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func NewRenderer(cfg config.TOTPConfig) (Renderer, error) {
	if cfg.QRSize <= 0 {
		return nil, fmt.Errorf("QR size must be greater than zero, got %d", cfg.QRSize)
	}

	switch cfg.QRRenderer {
	case config.RendererQRCode:
		return PNGRenderer{Size: cfg.QRSize}, nil
	case config.RendererBarcode:
		return BarcodeRenderer{Size: cfg.QRSize}, nil
	default:
		return nil, fmt.Errorf("unsupported QR renderer: %s", cfg.QRRenderer)
	}
}

// DataURI prefixes base64 PNG text for direct use in an <img> src.
func DataURI(encoded string) string {
	return "data:image/png;base64," + encoded
}
