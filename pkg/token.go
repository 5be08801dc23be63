package pkg

import (
	"crypto/rand"
	"encoding/hex"
)

// Access tokens are opaque hex strings handed to external parties as URL path
// segments. Entity tokens (inspection/quote) are 40 hex chars and never
// expire; signing-session tokens are 64 hex chars with a 7-day window.
const (
	EntityTokenLen  = 40
	SigningTokenLen = 64
)

// NewEntityToken returns a 40-hex-char single-resource access token.
func NewEntityToken() string {
	return randomHex(EntityTokenLen / 2)
}

// NewSigningToken returns a 64-hex-char signing-session token.
func NewSigningToken() string {
	return randomHex(SigningTokenLen / 2)
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(err)
	}
	return hex.EncodeToString(b)
}
