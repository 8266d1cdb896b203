package handler

import (
	"Chirp/pkg/errs"
	"Chirp/pkg/validate"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// idParam parses a numeric path id. Malformed ids cannot name an entity, so
// they are reported as notFound.
func idParam(c *gin.Context, name string, notFound error) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, notFound
	}
	return id, nil
}

func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return errs.ValidationError(validate.Message(err))
	}
	return nil
}

func bindQuery(c *gin.Context, req any) error {
	err := c.ShouldBindQuery(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs.ValidationError("Invalid query parameters")
	}
	return errs.ValidationError(validate.Message(err))
}
