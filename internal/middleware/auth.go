package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courses-api/internal/entities"
	"courses-api/internal/service"
)

// principalKey is the gin context key the authenticated user is stored under
const principalKey = "currentUser"

// Authenticate returns a middleware that performs per-request HTTP Basic
// authentication. Every failure path (missing or malformed header, unknown
// email address, wrong password) produces the identical 401 response so the
// cause is never observable from outside.
func Authenticate(userService service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		emailAddress, password, ok := c.Request.BasicAuth()
		if !ok {
			accessDenied(c)
			return
		}

		user, err := userService.Authenticate(emailAddress, password)
		if err != nil {
			accessDenied(c)
			return
		}

		c.Set(principalKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by Authenticate
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entities.User)
	return user, ok
}

func accessDenied(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message": "Access Denied",
	})
}
