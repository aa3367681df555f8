package totp

// Enrollment is everything a user needs to register an authenticator app.
// The caller owns Secret and must persist it for later verification.
type Enrollment struct {
	// QRCode is a base64-encoded PNG of URL, without a data URI prefix.
	QRCode string `json:"qr_code"`
	// Secret doubles as the manual-entry fallback when the code cannot be scanned.
	Secret string `json:"secret"`
	URL    string `json:"url"`
}
