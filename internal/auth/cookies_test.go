package auth

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestSessionCookieAttributes(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(24 * time.Hour)
	cookie := SessionCookie("tok", exp, true)

	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "tok", cookie.Value)
	assert.True(t, cookie.HTTPOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, fiber.CookieSameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, exp, cookie.Expires)
}

func TestCSRFCookieAttributes(t *testing.T) {
	t.Parallel()

	cookie := CSRFCookie("tok", time.Now().Add(time.Hour), false)

	assert.Equal(t, CSRFCookieName, cookie.Name)
	assert.True(t, cookie.HTTPOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, fiber.CookieSameSiteStrictMode, cookie.SameSite)
}

func TestExpiredCookieClearsValue(t *testing.T) {
	t.Parallel()

	cookie := ExpiredCookie(SessionCookieName, false)

	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.Expires.Before(time.Now()))
}
