package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the global error handler: any error a handler forwards with
// c.Error that was not already answered becomes a 500. Validation and
// authorization outcomes are mapped in the controllers and never reach here.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		log.Printf("Unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, c.Errors.Last().Err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal Server Error",
		})
	}
}
