package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ctkevents/evm_backend/controllers"
	"github.com/ctkevents/evm_backend/middleware"
)

// RegisterBookingRoutes sets up the booking workflow routes
func RegisterBookingRoutes(e *echo.Echo, db *mongo.Client) {
	bookingController := controllers.NewBookingController(db)

	auth := e.Group("/api", middleware.JWTMiddleware())
	auth.POST("/bookevents/:id", bookingController.CreateBooking)
	auth.DELETE("/cancelticket/:id", bookingController.CancelBooking)
	auth.GET("/ticketqr/:id", bookingController.TicketQR)
}
