package util

import (
	"counter_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "resource not found")
}

// InternalServerError reports the failure message upward, per the
// catch-all error path: unexpected storage failures are logged and
// surfaced as 500 with the message, never retried.
func InternalServerError(c *gin.Context, err error) {
	logger.Log.Error("internal server error", zap.Error(err))
	Error(c, http.StatusInternalServerError, err.Error())
}
