package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ctkevents/evm_backend/controllers"
	"github.com/ctkevents/evm_backend/middleware"
	"github.com/ctkevents/evm_backend/websocket"
)

// RegisterNotificationRoutes sets up the notification feed and live channel
func RegisterNotificationRoutes(e *echo.Echo, db *mongo.Client, hub *websocket.Hub) {
	notificationController := controllers.NewNotificationController(db, hub)

	auth := e.Group("/api", middleware.JWTMiddleware())
	auth.GET("/get-notification", notificationController.GetNotifications)
	auth.GET("/ws", notificationController.ServeWS)
}
