package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ctkevents/evm_backend/controllers"
	"github.com/ctkevents/evm_backend/middleware"
	"github.com/ctkevents/evm_backend/repositories"
)

// RegisterAuthRoutes sets up authentication and password-reset routes
func RegisterAuthRoutes(e *echo.Echo, db *mongo.Client, userRepo *repositories.UserRepository) {
	authController := controllers.NewAuthController(db, userRepo)
	passwordController := controllers.NewPasswordController(db, userRepo)

	// Public
	e.POST("/api/signup", authController.Signup)
	e.POST("/api/login", authController.Login)
	e.POST("/api/forget-password", passwordController.ForgetPassword)
	e.POST("/api/verifyOtp", passwordController.VerifyOTP)
	e.POST("/api/reset-password", passwordController.ResetPassword)

	// Authenticated
	auth := e.Group("/api", middleware.JWTMiddleware())
	auth.POST("/logout", authController.Logout)
	auth.POST("/authme", authController.AuthMe)
	auth.GET("/loggedin", authController.CheckAuth)
	auth.GET("/verifytoken", authController.CheckAuth)
	auth.GET("/check-auth", authController.CheckAuth)
}
