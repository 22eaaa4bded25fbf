package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/ctkevents/evm_backend/controllers"
	"github.com/ctkevents/evm_backend/middleware"
	"github.com/ctkevents/evm_backend/services"
)

// RegisterPaymentRoutes sets up the payment gateway routes
func RegisterPaymentRoutes(e *echo.Echo, razorpay *services.RazorpayService) {
	paymentController := controllers.NewPaymentController(razorpay)

	auth := e.Group("/api", middleware.JWTMiddleware())
	auth.POST("/create-order", paymentController.CreateOrder)
	auth.POST("/verify-payment", paymentController.VerifyPayment)
}
