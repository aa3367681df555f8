package qrcode

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tech-arch1tect/authkit/config"
)

const testURI = "otpauth://totp/Example:alice@example.com?algorithm=SHA1&digits=6&issuer=Example&period=30&secret=JBSWY3DPEHPK3PXP"

func renderers() map[string]Renderer {
	return map[string]Renderer{
		"qrcode":  PNGRenderer{Size: 128},
		"barcode": BarcodeRenderer{Size: 128},
	}
}

func TestRenderer_Render(t *testing.T) {
	for name, renderer := range renderers() {
		t.Run(name, func(t *testing.T) {
			encoded, err := renderer.Render(testURI)
			require.NoError(t, err)

			raw, err := base64.StdEncoding.DecodeString(encoded)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(raw))
			require.NoError(t, err)
			assert.Equal(t, 128, img.Bounds().Dx())
			assert.Equal(t, 128, img.Bounds().Dy())
		})
	}
}

func TestRenderer_Errors(t *testing.T) {
	for name, renderer := range renderers() {
		t.Run(name+" empty content", func(t *testing.T) {
			encoded, err := renderer.Render("")

			require.ErrorIs(t, err, ErrEmptyContent)
			assert.Empty(t, encoded)
		})

		t.Run(name+" content too large", func(t *testing.T) {
			encoded, err := renderer.Render(strings.Repeat("a", 5000))

			require.Error(t, err)
			assert.Empty(t, encoded)
		})
	}
}

func TestNewRenderer(t *testing.T) {
	t.Run("qrcode", func(t *testing.T) {
		r, err := NewRenderer(config.TOTPConfig{QRRenderer: config.RendererQRCode, QRSize: 200})

		require.NoError(t, err)
		assert.Equal(t, PNGRenderer{Size: 200}, r)
	})

	t.Run("barcode", func(t *testing.T) {
		r, err := NewRenderer(config.TOTPConfig{QRRenderer: config.RendererBarcode, QRSize: 64})

		require.NoError(t, err)
		assert.Equal(t, BarcodeRenderer{Size: 64}, r)
	})

	t.Run("unknown renderer", func(t *testing.T) {
		r, err := NewRenderer(config.TOTPConfig{QRRenderer: "svg", QRSize: 64})

		require.Error(t, err)
		assert.Nil(t, r)
	})

	t.Run("invalid size", func(t *testing.T) {
		r, err := NewRenderer(config.TOTPConfig{QRRenderer: config.RendererQRCode})

		require.Error(t, err)
		assert.Nil(t, r)
	})
}

func TestNewProvider(t *testing.T) {
	r, err := NewProvider(config.Default())

	require.NoError(t, err)
	assert.Equal(t, PNGRenderer{Size: 256}, r)
}

func TestDataURI(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,abc=", DataURI("abc="))
}
