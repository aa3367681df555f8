package totp

import (
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"io"
)

const (
	// SecretEntropyBytes is the number of random bytes behind every secret.
	SecretEntropyBytes = 32
	// SecretLength is the length of the hex-encoded secret string.
	SecretLength = SecretEntropyBytes * 2
	// MinSecretBytes is the RFC 4226 minimum shared secret length (128 bits).
	MinSecretBytes = 16
)

var b32NoPadding = base32.StdEncoding.WithPadding(base32.NoPadding)

// SecretBytes is the key material HMAC is computed over: the UTF-8 bytes of
// the hex string, not the decoded random bytes. A 64 character secret is
// therefore a 64 byte key. Enrollment URIs carry these bytes base32-encoded,
// so authenticator apps derive codes from the same key.
func SecretBytes(secret string) []byte {
	return []byte(secret)
}

// encodeSecret renders key material the way pquerna/otp expects it.
func encodeSecret(secret string) string {
	return b32NoPadding.EncodeToString(SecretBytes(secret))
}

func randomHex(r io.Reader, n int) string {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		// An exhausted entropy source is not recoverable.
		panic(fmt.Sprintf("totp: reading random source: %v", err))
	}
	return hex.EncodeToString(buf)
}
