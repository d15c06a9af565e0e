package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"courses-api/internal/service"
)

type QRCodeController struct {
	courseService service.CourseService
	frontendURL   string
}

func NewQRCodeController(courseService service.CourseService, frontendURL string) *QRCodeController {
	return &QRCodeController{
		courseService: courseService,
		frontendURL:   frontendURL,
	}
}

// GenerateQRCode handles GET /api/courses/:id/qrcode - generates a QR code
// linking to the course page
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Course not found",
		})
		return
	}

	courses, err := qc.courseService.ListCourses(&id)
	if err != nil {
		c.Error(err)
		return
	}
	if len(courses.Courses) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Course not found",
		})
		return
	}

	courseURL := fmt.Sprintf("%s/courses/%d", qc.frontendURL, id)

	// Generate QR code (256x256 pixels, medium error recovery)
	qrCode, err := qrcode.New(courseURL, qrcode.Medium)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	pngData, err := qrCode.PNG(256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code image",
		})
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
