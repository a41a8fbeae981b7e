package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SizeLimit cap the request body at maxBodyBytes. Reading past the cap fails with
// http.MaxBytesError, which handlers answer with 413 request entity too large.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBodyBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": "Entity too large",
			})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

		c.Next()
	}
}
