package handler

import (
	"Chirp/config"
	"Chirp/middleware"
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionStore remembers logged-out sessions.
type SessionStore interface {
	middleware.RevocationChecker
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

func authorize(conf *config.Config, sessions SessionStore) gin.HandlerFunc {
	return middleware.Auth([]byte(conf.Jwt.Secret), conf.Session.CookieName, sessions)
}

func optional(conf *config.Config, sessions SessionStore) gin.HandlerFunc {
	return middleware.OptionalAuth([]byte(conf.Jwt.Secret), conf.Session.CookieName, sessions)
}

func setSessionCookie(c *gin.Context, conf *config.Config, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(conf.Session.CookieName, token, int(ttl.Seconds()), "/", conf.Session.Domain, conf.Session.Secure, true)
}

func clearSessionCookie(c *gin.Context, conf *config.Config) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(conf.Session.CookieName, "", -1, "/", conf.Session.Domain, conf.Session.Secure, true)
}
