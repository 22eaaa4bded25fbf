package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ctkevents/evm_backend/controllers"
	"github.com/ctkevents/evm_backend/middleware"
	"github.com/ctkevents/evm_backend/repositories"
)

// RegisterUserRoutes sets up profile, user-administration and feedback routes
func RegisterUserRoutes(e *echo.Echo, db *mongo.Client, userRepo *repositories.UserRepository) {
	userController := controllers.NewUserController(db, userRepo)
	feedbackController := controllers.NewFeedbackController(db)

	auth := e.Group("/api", middleware.JWTMiddleware())
	auth.GET("/profilepage", userController.GetProfileDetails)
	auth.POST("/feedback", feedbackController.SubmitFeedback)

	admin := e.Group("/api", middleware.JWTMiddleware(), middleware.RequireAdmin())
	admin.GET("/users", userController.GetUsers)
	admin.GET("/viewfeedback/:id", feedbackController.ViewFeedback)
}
