package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"courses-api/internal/cache"
	"courses-api/internal/config"
	"courses-api/internal/controllers"
	"courses-api/internal/database"
	"courses-api/internal/middleware"
	"courses-api/internal/repository"
	"courses-api/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close() // Close connection when program exits

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	courseService := service.NewCourseService(courseRepo, cacheClient)

	// Initialize controllers
	userController := controllers.NewUserController(userService)
	courseController := controllers.NewCourseController(courseService)
	qrcodeController := controllers.NewQRCodeController(courseService, cfg.FrontendURL)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	signupRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitSignupRPS), cfg.RateLimitSignupBurst)

	// Per-request Basic authentication; applied per route below
	authenticate := middleware.Authenticate(userService)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes group with general rate limiting and the global error handler
	api := router.Group("/api")
	api.Use(generalRateLimiter.LimitMiddleware(), middleware.ErrorHandler())
	{
		// User routes
		api.GET("/users", authenticate, userController.GetCurrentUser)
		api.POST("/users", signupRateLimiter.LimitMiddleware(), userController.CreateUser)

		// Course routes - reads are public, mutations require auth
		api.GET("/courses", courseController.GetCourses)
		api.GET("/courses/:id", courseController.GetCourses)
		api.GET("/courses/:id/qrcode", qrcodeController.GenerateQRCode)
		api.POST("/courses", authenticate, courseController.CreateCourse)
		api.PUT("/courses/:id", authenticate, courseController.UpdateCourse)
		api.DELETE("/courses/:id", authenticate, courseController.DeleteCourse)
	}

	// Start the server
	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
