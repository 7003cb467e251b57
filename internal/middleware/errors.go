package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/finpulse/internal/domain/dto"
	"github.com/guttosm/finpulse/internal/logger"
)

// ErrorHandler logs errors attached with c.Error once the handler returns:
// client errors at warn, server errors at error. It writes a JSON error
// body only when the handler has not already produced a response.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}
	err := c.Errors.Last().Err
	status := c.Writer.Status()
	if !c.Writer.Written() && status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}

	log := logger.FromContext(c.Request.Context())
	event := log.Error()
	if status < http.StatusInternalServerError {
		event = log.Warn()
	}
	event.Err(err).Int("status", status).Str("path", c.Request.URL.Path).Msg("request failed")

	if c.Writer.Written() {
		return
	}
	c.JSON(status, dto.NewErrorResponse(http.StatusText(status), err))
}

// AbortWithError stops the handler chain, writes a standardized error body
// and records err on the context for ErrorHandler.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
	if err != nil {
		_ = c.Error(err)
	}
}
