package shared

import (
	"github.com/sugarloaf/bakehouse/internal/http/response"
	"github.com/sugarloaf/bakehouse/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog returns a logger carrying the request id when one is set.
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError writes an error response and logs the underlying error if any.
func RespondError(c *gin.Context, status int, msg string, err error) {
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"status", status,
			"message", msg,
			"error", err,
		)
	}
	response.Error(c, status, msg)
}
