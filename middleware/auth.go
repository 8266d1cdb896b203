package middleware

import (
	"Chirp/pkg/context"
	"Chirp/pkg/jwt"
	"Chirp/pkg/log"
	"Chirp/pkg/response"
	stdctx "context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RevocationChecker reports whether a session token was logged out.
type RevocationChecker interface {
	IsRevoked(ctx stdctx.Context, tokenID string) (bool, error)
}

// Auth rejects requests without a valid session with 401 and binds the viewer
// otherwise. The token is read from the session cookie, then from an
// "Authorization: Bearer" header.
func Auth(secret []byte, cookieName string, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c, cookieName)
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeSession, token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			log.L.Error("check session revocation", zap.String("jti", claims.ID), zap.Error(err))
			response.Abort(c, http.StatusInternalServerError, response.InternalMessage)
			return
		}
		if isRevoked {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		context.SetViewer(c, claims.UserID, claims.ID)
		c.Next()
	}
}

// OptionalAuth binds the viewer when a valid session is present and lets the
// request through anonymously otherwise.
func OptionalAuth(secret []byte, cookieName string, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c, cookieName)
		if token == "" {
			c.Next()
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeSession, token)
		if err != nil {
			c.Next()
			return
		}
		isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			log.L.Warn("check session revocation", zap.String("jti", claims.ID), zap.Error(err))
			c.Next()
			return
		}
		if !isRevoked {
			context.SetViewer(c, claims.UserID, claims.ID)
		}
		c.Next()
	}
}

// SessionToken returns the raw session token of the request, if any.
func SessionToken(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
