package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"courses-api/internal/middleware"
	"courses-api/internal/models"
	"courses-api/internal/service"
	"courses-api/internal/validation"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetCurrentUser handles GET /api/users - returns the authenticated user's
// public profile
func (uc *UserController) GetCurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": "Access Denied",
		})
		return
	}

	c.JSON(http.StatusOK, models.NewUserResponse(user))
}

// CreateUser handles POST /api/users - creates a new account, no auth required
func (uc *UserController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if _, err := uc.userService.Register(&req); err != nil {
		var violations *validation.Violations
		if errors.As(err, &violations) {
			c.JSON(http.StatusBadRequest, gin.H{
				"errors": violations.Messages,
			})
			return
		}
		c.Error(err)
		return
	}

	c.Header("Location", "/")
	c.Status(http.StatusCreated)
}
