package models

// CreateOrderRequest is the request body for creating a payment order
type CreateOrderRequest struct {
	AmountInRupees float64 `json:"amountInRupees"`
}

// PaymentOrder is the gateway order as returned to the client
type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// VerifyPaymentRequest carries the signed payment callback fields
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// VerifyPaymentResponse reports signature verification
type VerifyPaymentResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
