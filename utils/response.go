package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope is the shape of every API response.
type Envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// Success writes a success envelope with the given status.
func Success(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Envelope{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Error writes an error envelope with the given status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Success:   false,
		Error:     message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// AbortError writes an error envelope and stops the handler chain.
func AbortError(c *gin.Context, status int, message string) {
	c.Abort()
	Error(c, status, message)
}
