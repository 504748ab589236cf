package response

import (
	"github.com/gin-gonic/gin"
)

// Success sends {"success": message}
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": message})
}

// Error sends {"error": message}. Internal details never go in here.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// AbortWithError sends the error body and stops the handler chain.
func AbortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
