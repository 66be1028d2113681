package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the error payload of every failed request.
type ErrorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Success writes the resource or message object as-is.
func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Message writes {"message": msg} merged with optional extra fields.
func Message(c *gin.Context, status int, msg string, extra gin.H) {
	body := gin.H{"message": msg}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, ErrorBody{
		Error:   message,
		Code:    errorCode,
		Details: details,
	})
}

// Abort writes the error body and stops the handler chain.
func Abort(c *gin.Context, status int, errorCode string, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: message, Code: errorCode})
}
