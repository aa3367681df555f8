package testutils

import (
	"time"

	"github.com/tech-arch1tect/authkit/config"
)

func GetTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name: "Test App",
		},
		Log: config.LogConfig{
			Level:  "debug",
			Format: "json",
			Output: "stdout",
		},
		TOTP: config.TOTPConfig{
			Period:     30,
			Window:     0,
			QRRenderer: config.RendererQRCode,
			QRSize:     128,
		},
	}
}

// RFC6238Secret is the SHA-1 shared secret from RFC 6238 Appendix B.
const RFC6238Secret = "12345678901234567890"

// RFC6238Vectors maps Appendix B timestamps to the SHA-1 codes truncated to
// six digits.
var RFC6238Vectors = []struct {
	Time time.Time
	Code string
}{
	{time.Unix(59, 0), "287082"},
	{time.Unix(1111111109, 0), "081804"},
	{time.Unix(1111111111, 0), "050471"},
	{time.Unix(1234567890, 0), "005924"},
	{time.Unix(2000000000, 0), "279037"},
	{time.Unix(20000000000, 0), "353130"},
}

// StepStart is the first second of a 30 second step.
var StepStart = time.Unix(1700000010, 0)
