// Package respond writes the uniform JSON envelope: success responses
// carry {message, data?}, errors carry {error}.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success sends a 200 envelope. data is omitted when nil.
func Success(c *gin.Context, data interface{}, message string) {
	body := gin.H{"message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(http.StatusOK, body)
}

// Error sends an error envelope and aborts the request so no handler
// code runs after it.
func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
