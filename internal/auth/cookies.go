package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Cookie names presented to the browser.
const (
	SessionCookieName = "auth-token"
	CSRFCookieName    = "csrf-token"
)

// SessionCookie builds the session cookie. Lax lets top-level navigation
// carry the session; the CSRF cookie compensates on state-changing calls.
func SessionCookie(token string, expiresAt time.Time, secure bool) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	}
}

// CSRFCookie builds the anti-forgery cookie.
func CSRFCookie(token string, expiresAt time.Time, secure bool) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     CSRFCookieName,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	}
}

// ExpiredCookie clears a cookie by name.
func ExpiredCookie(name string, secure bool) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	}
}
