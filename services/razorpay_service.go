package services

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/ctkevents/evm_backend/models"
)

// RazorpayService handles interactions with the Razorpay orders API
type RazorpayService struct {
	baseURL   string
	keyID     string
	keySecret string
	client    *http.Client
}

// NewRazorpayService creates a new Razorpay service instance
func NewRazorpayService() *RazorpayService {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")

	if keyID == "" || keySecret == "" {
		log.Printf("WARNING: Razorpay credentials not fully configured:")
		if keyID == "" {
			log.Printf("  - RAZORPAY_KEY_ID is missing")
		}
		if keySecret == "" {
			log.Printf("  - RAZORPAY_KEY_SECRET is missing")
		}
		log.Printf("Please set these environment variables for the payment service to work")
	}

	baseURL := os.Getenv("RAZORPAY_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.razorpay.com/v1"
	}

	return &RazorpayService{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type orderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// CreateOrder creates a payment order at the gateway. Amount is in paise.
func (s *RazorpayService) CreateOrder(amount int64, currency, receipt string) (*models.PaymentOrder, error) {
	if s.keyID == "" || s.keySecret == "" {
		return nil, fmt.Errorf("missing Razorpay credentials. Please set RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET environment variables")
	}

	payload := orderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Notes:    map[string]string{"purpose": "Event Booking"},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(s.keyID, s.keySecret)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var order orderResponse
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &models.PaymentOrder{
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	}, nil
}

// VerifySignature checks a payment callback against the shared key secret
func (s *RazorpayService) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifyPaymentSignature(orderID, paymentID, signature, s.keySecret)
}

// VerifyPaymentSignature recomputes the HMAC-SHA256 of "orderID|paymentID"
// with the given secret and compares it to the supplied signature in constant
// time.
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
