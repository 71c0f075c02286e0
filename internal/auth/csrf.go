package auth

import (
	"crypto/rand"
	"encoding/hex"
)

const csrfTokenBytes = 32

// GetOrCreateCSRFToken returns the session's existing CSRF token unchanged,
// or generates a fresh one. created tells the handler whether the cookie
// still has to be set. Caller must hold a verified session before asking.
func GetOrCreateCSRFToken(existing string) (token string, created bool, err error) {
	if existing != "" {
		return existing, false, nil
	}
	buf := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", false, err
	}
	return hex.EncodeToString(buf), true, nil
}
