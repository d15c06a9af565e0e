package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"courses-api/internal/middleware"
	"courses-api/internal/models"
	"courses-api/internal/service"
	"courses-api/internal/validation"
)

type CourseController struct {
	courseService service.CourseService
}

func NewCourseController(courseService service.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetCourses handles GET /api/courses and GET /api/courses/:id. Both return
// {"courses": [...]}; an unmatched or non-numeric id yields an empty array,
// not a 404.
func (cc *CourseController) GetCourses(c *gin.Context) {
	var filter *int64
	if idParam := c.Param("id"); idParam != "" {
		id, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			// A non-numeric id can't match any row
			c.JSON(http.StatusOK, &models.CourseListResponse{Courses: []*models.CourseResponse{}})
			return
		}
		filter = &id
	}

	response, err := cc.courseService.ListCourses(filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// CreateCourse handles POST /api/courses - the authenticated user becomes the
// owner regardless of anything in the request body
func (cc *CourseController) CreateCourse(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": "Access Denied",
		})
		return
	}

	var req models.SaveCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	course, err := cc.courseService.CreateCourse(&req, user.ID)
	if err != nil {
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

	c.Header("Location", fmt.Sprintf("/courses/%d", course.ID))
	c.Status(http.StatusCreated)
}

// UpdateCourse handles PUT /api/courses/:id - owner only
func (cc *CourseController) UpdateCourse(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": "Access Denied",
		})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	var req models.SaveCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := cc.courseService.UpdateCourse(id, &req, user.ID); err != nil {
		cc.respondMutationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteCourse handles DELETE /api/courses/:id - owner only
func (cc *CourseController) DeleteCourse(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": "Access Denied",
		})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if err := cc.courseService.DeleteCourse(id, user.ID); err != nil {
		cc.respondMutationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondMutationError maps course mutation outcomes to HTTP responses:
// missing target -> 404, non-owner -> 403, validation -> 400, rest -> global
// error handler
func (cc *CourseController) respondMutationError(c *gin.Context, err error) {
	var violations *validation.Violations
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, service.ErrNotCourseOwner):
		c.Status(http.StatusForbidden)
	case errors.As(err, &violations):
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": violations.Messages,
		})
	default:
		c.Error(err)
	}
}
