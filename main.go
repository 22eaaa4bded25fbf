package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/ctkevents/evm_backend/config"
	"github.com/ctkevents/evm_backend/middleware"
	"github.com/ctkevents/evm_backend/repositories"
	"github.com/ctkevents/evm_backend/routes"
	"github.com/ctkevents/evm_backend/services"
	"github.com/ctkevents/evm_backend/utils"
	"github.com/ctkevents/evm_backend/websocket"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Connect to Redis (optional, used for the token blacklist and OTP throttle)
	config.ConnectRedis()
	defer config.CloseRedis()

	// Connect to database
	client := config.ConnectDB()

	// Create WebSocket hub and wire it into the notification emitter
	wsHub := websocket.NewHub()
	go wsHub.Run()
	utils.SetNotificationHub(wsHub)

	// Create a new Echo instance
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.GlobalCORS())
	e.Use(middleware.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "CTKEvents Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	})

	// Uploaded event images and thumbnails are served statically
	for _, dir := range []string{"uploads/events", "uploads/thumbnails"} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create upload directory %s: %v", dir, err)
		}
	}
	e.Static("/uploads", "uploads")

	// Initialize repositories and shared services
	userRepo := repositories.NewUserRepository(client)
	razorpay := services.NewRazorpayService()

	// Register routes
	routes.RegisterAuthRoutes(e, client, userRepo)
	routes.RegisterEventRoutes(e, client)
	routes.RegisterBookingRoutes(e, client)
	routes.RegisterUserRoutes(e, client, userRepo)
	routes.RegisterContactRoutes(e, client, userRepo)
	routes.RegisterNotificationRoutes(e, client, wsHub)
	routes.RegisterPaymentRoutes(e, razorpay)

	// Background workers
	go middleware.CleanupBlacklist()
	go services.NewFeedbackSweeper(client).Run()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
