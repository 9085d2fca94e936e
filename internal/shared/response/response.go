package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// development gates whether error details reach the client. Set once at
// startup, before the server accepts traffic.
var development bool

func SetDevelopment(enabled bool) {
	development = enabled
}

// Every route answers with the same envelope: {success, data|error}.
// List responses always carry both data and count, even when empty.

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func List(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"count":   count,
	})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"message": message,
	})
}

func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}

// FailWithDetails includes details only in development; production
// clients get the bare message.
func FailWithDetails(c *gin.Context, statusCode int, message string, details interface{}) {
	body := gin.H{
		"success": false,
		"error":   message,
	}
	if development && details != nil {
		body["details"] = details
	}
	c.JSON(statusCode, body)
}

// FailWithReason is used by the auth routes, which report why the token
// was rejected (missing, expired, invalid).
func FailWithReason(c *gin.Context, statusCode int, message, reason string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
		"reason":  reason,
	})
}
