package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ctkevents/evm_backend/controllers"
	"github.com/ctkevents/evm_backend/middleware"
)

// RegisterEventRoutes sets up the event catalog routes
func RegisterEventRoutes(e *echo.Echo, db *mongo.Client) {
	eventController := controllers.NewEventController(db)

	// The catalog listing is public; everything else needs a session
	e.GET("/api/getevents", eventController.GetEvents)

	auth := e.Group("/api", middleware.JWTMiddleware())
	auth.GET("/getevent/:id", eventController.GetEvent)

	admin := e.Group("/api", middleware.JWTMiddleware(), middleware.RequireAdmin())
	admin.POST("/create", eventController.CreateEvent)
	admin.PUT("/updateevent/:id", eventController.UpdateEvent)
	admin.DELETE("/delete/:id", eventController.DeleteEvent)
	admin.GET("/viewtickets/:id", eventController.ViewTickets)
	admin.POST("/upload", eventController.UploadEventImage)
}
