package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func now() int64 {
	return time.Now().UnixMilli()
}

// OK writes a success envelope.
func OK(c *gin.Context, message string, data any) {
	env := gin.H{"success": true, "message": message, "timestamp": now()}
	if data != nil {
		env["data"] = data
	}
	c.JSON(http.StatusOK, env)
}

// Fail writes a failure envelope with the given HTTP status.
func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message, "timestamp": now()})
}

// DomainFail writes a 200 failure envelope carrying a machine-readable code.
func DomainFail(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusOK, gin.H{
		"success":   false,
		"message":   message,
		"code":      code,
		"timestamp": now(),
	})
}
