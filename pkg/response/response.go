package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const InternalMessage = "Internal server error"

// Message is the body of every error response and of status-only replies.
type Message struct {
	Message string `json:"message"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func OK(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Message{Message: msg})
}

func Fail(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, Message{Message: msg})
}
