package controllers

import (
	"math"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ctkevents/evm_backend/models"
	"github.com/ctkevents/evm_backend/services"
)

// PaymentController fronts the payment gateway for order creation and
// callback verification.
type PaymentController struct {
	razorpay *services.RazorpayService
}

// NewPaymentController creates a new payment controller
func NewPaymentController(razorpay *services.RazorpayService) *PaymentController {
	return &PaymentController{razorpay: razorpay}
}

// CreateOrder opens a gateway order for the given amount. The gateway expects
// paise, so the rupee amount is scaled by 100.
func (pc *PaymentController) CreateOrder(c echo.Context) error {
	var req models.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.AmountInRupees < 1 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Amount must be at least 1 rupee",
		})
	}

	receipt := "rcpt_" + uuid.NewString()
	// Round rather than truncate so 10.05 rupees becomes 1005 paise, not 1004
	order, err := pc.razorpay.CreateOrder(int64(math.Round(req.AmountInRupees*100)), "INR", receipt)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create payment order",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Order created successfully",
		Data:    order,
	})
}

// VerifyPayment validates the signed gateway callback
func (pc *PaymentController) VerifyPayment(c echo.Context) error {
	var req models.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.VerifyPaymentResponse{
			OK:    false,
			Error: "Invalid request body",
		})
	}

	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		return c.JSON(http.StatusBadRequest, models.VerifyPaymentResponse{
			OK:    false,
			Error: "Missing payment verification fields",
		})
	}

	if !pc.razorpay.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		return c.JSON(http.StatusBadRequest, models.VerifyPaymentResponse{
			OK:    false,
			Error: "Invalid signature",
		})
	}

	return c.JSON(http.StatusOK, models.VerifyPaymentResponse{OK: true})
}
