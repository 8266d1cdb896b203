package context

import (
	"Chirp/pkg/errs"
	"Chirp/pkg/log"
	"Chirp/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID  = "user_id"
	CtxTokenID = "token_id"
)

// Wrap adapts an error-returning handler. Domain errors become their status
// with the domain message; anything else is logged and answered with a
// generic 500.
func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil {
			return
		}
		// response already written by the handler
		if c.Writer.Written() {
			return
		}

		var de *errs.Error
		if errors.As(err, &de) && de.Kind != errs.Internal {
			response.Fail(c, StatusOf(de.Kind), de.Msg)
			return
		}

		log.L.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		response.Fail(c, http.StatusInternalServerError, response.InternalMessage)
	}
}

// StatusOf maps a domain error kind to its HTTP status. Conflicts are reported
// as 400 with their domain message.
func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.Validation, errs.Conflict:
		return http.StatusBadRequest
	case errs.Unauthorized:
		return http.StatusUnauthorized
	case errs.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GetUserID returns the authenticated viewer or an unauthorized error.
func GetUserID(c *gin.Context) (int64, error) {
	uid, ok := GetViewerID(c)
	if !ok {
		return 0, errs.UnauthorizedError("Unauthorized")
	}
	return uid, nil
}

// GetViewerID returns the viewer bound by the auth middleware, if any.
func GetViewerID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, false
	}
	uid, ok := v.(int64)
	if !ok || uid == 0 {
		return 0, false
	}
	return uid, true
}

func SetViewer(c *gin.Context, userID int64, tokenID string) {
	c.Set(CtxUserID, userID)
	c.Set(CtxTokenID, tokenID)
}

func GetTokenID(c *gin.Context) string {
	return c.GetString(CtxTokenID)
}
