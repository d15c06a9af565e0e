package controllers

import (
	"github.com/gin-gonic/gin"

	"courses-api/internal/entities"
	"courses-api/internal/middleware"
	"courses-api/internal/models"
	"courses-api/internal/service"
)

// Shared fakes and router wiring for controller tests. The route table
// mirrors main.go, with fake services behind the controllers.

type fakeUserService struct {
	registered  *models.CreateUserRequest
	registerErr error

	authEmail    string
	authPassword string
	authUser     *entities.User
}

func (f *fakeUserService) Register(req *models.CreateUserRequest) (*entities.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.registered = req
	return &entities.User{ID: 1}, nil
}

func (f *fakeUserService) Authenticate(emailAddress, password string) (*entities.User, error) {
	if emailAddress == f.authEmail && password == f.authPassword {
		return f.authUser, nil
	}
	return nil, service.ErrInvalidCredentials
}

type fakeCourseService struct {
	listResponse *models.CourseListResponse
	listErr      error

	created      *models.SaveCourseRequest
	createdOwner int64
	createID     int64
	createErr    error

	updatedID        int64
	updatedReq       *models.SaveCourseRequest
	updatedPrincipal int64
	updateErr        error

	deletedID        int64
	deletedPrincipal int64
	deleteErr        error
}

func (f *fakeCourseService) ListCourses(id *int64) (*models.CourseListResponse, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.listResponse != nil {
		return f.listResponse, nil
	}
	return &models.CourseListResponse{Courses: []*models.CourseResponse{}}, nil
}

func (f *fakeCourseService) CreateCourse(req *models.SaveCourseRequest, ownerID int64) (*entities.Course, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = req
	f.createdOwner = ownerID
	return &entities.Course{ID: f.createID, UserID: ownerID}, nil
}

func (f *fakeCourseService) UpdateCourse(id int64, req *models.SaveCourseRequest, principalID int64) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updatedReq = req
	f.updatedPrincipal = principalID
	return nil
}

func (f *fakeCourseService) DeleteCourse(id int64, principalID int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	f.deletedPrincipal = principalID
	return nil
}

func newTestRouter(users *fakeUserService, courses *fakeCourseService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	userController := NewUserController(users)
	courseController := NewCourseController(courses)
	qrcodeController := NewQRCodeController(courses, "http://localhost:3000")

	authenticate := middleware.Authenticate(users)

	router := gin.New()
	api := router.Group("/api")
	api.Use(middleware.ErrorHandler())
	{
		api.GET("/users", authenticate, userController.GetCurrentUser)
		api.POST("/users", userController.CreateUser)

		api.GET("/courses", courseController.GetCourses)
		api.GET("/courses/:id", courseController.GetCourses)
		api.GET("/courses/:id/qrcode", qrcodeController.GenerateQRCode)
		api.POST("/courses", authenticate, courseController.CreateCourse)
		api.PUT("/courses/:id", authenticate, courseController.UpdateCourse)
		api.DELETE("/courses/:id", authenticate, courseController.DeleteCourse)
	}
	return router
}

func authedUsers() *fakeUserService {
	return &fakeUserService{
		authEmail:    "joe@smith.com",
		authPassword: "abc123",
		authUser: &entities.User{
			ID:           7,
			FirstName:    "Joe",
			LastName:     "Smith",
			EmailAddress: "joe@smith.com",
			PasswordHash: "hashed",
		},
	}
}
