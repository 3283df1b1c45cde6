package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the JSON body shared by most endpoints:
// {"success":true,"message":...} on the happy path and
// {"success":false,"error":...} on failure. A few routes deviate
// (plain-text acks, bare arrays) and write to the context directly.
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Details map[string]string `json:"details,omitempty"`
	Data    any               `json:"data,omitempty"`
}

func OK(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: true, Message: message})
}

func OKData(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, Envelope{Success: false, Error: msg})
}

// FailDetails is Fail with per-field messages attached, used on binding
// failures so callers can see which fields were rejected.
func FailDetails(c *gin.Context, status int, msg string, details map[string]string) {
	c.JSON(status, Envelope{Success: false, Error: msg, Details: details})
}

// AbortFail is Fail for middleware: it also stops the handler chain.
func AbortFail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Error: msg})
}
