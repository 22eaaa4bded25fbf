package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ctkevents/evm_backend/controllers"
	"github.com/ctkevents/evm_backend/middleware"
	"github.com/ctkevents/evm_backend/repositories"
)

// RegisterContactRoutes sets up the contact-us routes
func RegisterContactRoutes(e *echo.Echo, db *mongo.Client, userRepo *repositories.UserRepository) {
	contactController := controllers.NewContactController(db, userRepo)

	auth := e.Group("/api", middleware.JWTMiddleware())
	auth.POST("/contact-post", contactController.ContactPost)

	admin := e.Group("/api", middleware.JWTMiddleware(), middleware.RequireAdmin())
	admin.GET("/admin-get", contactController.AdminGet)
	admin.POST("/admin-post", contactController.AdminPost)
}
