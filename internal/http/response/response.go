package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success responds 200 with the payload as-is.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created responds 201 with the payload as-is.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// SuccessWithMsg responds 200 with a message envelope around the payload.
func SuccessWithMsg(c *gin.Context, msg string, data interface{}) {
	body := gin.H{"message": msg}
	if data != nil {
		body["data"] = data
	}
	c.JSON(http.StatusOK, body)
}

// Error responds with a real HTTP status and a message body.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, attachRequestID(c, gin.H{"message": msg}))
}

// NotFound responds 404.
func NotFound(c *gin.Context, msg string) {
	Error(c, http.StatusNotFound, msg)
}

// Unauthorized responds 401.
func Unauthorized(c *gin.Context, msg string) {
	Error(c, http.StatusUnauthorized, msg)
}

// Forbidden responds 403.
func Forbidden(c *gin.Context, msg string) {
	Error(c, http.StatusForbidden, msg)
}

// BadRequest responds 400.
func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, msg)
}

// Conflict responds 409.
func Conflict(c *gin.Context, msg string) {
	Error(c, http.StatusConflict, msg)
}

// Internal responds 500.
func Internal(c *gin.Context, msg string) {
	Error(c, http.StatusInternalServerError, msg)
}

func attachRequestID(c *gin.Context, body gin.H) gin.H {
	if c == nil {
		return body
	}
	if value, ok := c.Get("request_id"); ok {
		if id, ok := value.(string); ok && id != "" {
			if _, exists := body["request_id"]; !exists {
				body["request_id"] = id
			}
		}
	}
	return body
}
