package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kugicode/catalog-service/internal/session"
)

// CookieConfig controls how the session cookie is written.
type CookieConfig struct {
	Path     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

// CookieHelper manages the session cookie.
type CookieHelper struct {
	config CookieConfig
	ttl    time.Duration
}

// NewCookieHelper creates a cookie helper. The cookie max-age tracks the
// session idle expiry so the browser and the store expire together.
func NewCookieHelper(config CookieConfig, ttl time.Duration) *CookieHelper {
	if config.Path == "" {
		config.Path = "/"
	}
	return &CookieHelper{config: config, ttl: ttl}
}

// SetSessionCookie attaches the session token to the response.
func (h *CookieHelper) SetSessionCookie(c *gin.Context, token string) {
	h.setCookie(c, token, int(h.ttl.Seconds()))
}

// ClearSessionCookie removes the session cookie.
func (h *CookieHelper) ClearSessionCookie(c *gin.Context) {
	h.setCookie(c, "", -1)
}

// GetSessionToken retrieves the session token from the request cookie.
// Returns empty when the cookie is absent.
func (h *CookieHelper) GetSessionToken(c *gin.Context) string {
	token, err := c.Cookie(session.CookieName)
	if err != nil {
		return ""
	}
	return token
}

func (h *CookieHelper) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(h.config.SameSite)
	c.SetCookie(
		session.CookieName,
		value,
		maxAge,
		h.config.Path,
		h.config.Domain,
		h.config.Secure,
		true, // httpOnly - the token must not be readable by scripts
	)
}
