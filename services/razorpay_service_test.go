package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayment(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaymentSignature(t *testing.T) {
	secret := "shhh"
	sig := signPayment("order_1", "pay_1", secret)

	assert.True(t, VerifyPaymentSignature("order_1", "pay_1", sig, secret))
	assert.False(t, VerifyPaymentSignature("order_1", "pay_2", sig, secret))
	assert.False(t, VerifyPaymentSignature("order_2", "pay_1", sig, secret))
	assert.False(t, VerifyPaymentSignature("order_1", "pay_1", sig, "wrong"))
	assert.False(t, VerifyPaymentSignature("order_1", "pay_1", "", secret))
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "key_id", user)
		require.Equal(t, "key_secret", pass)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.EqualValues(t, 50000, payload["amount"])
		require.Equal(t, "INR", payload["currency"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_test123",
			"amount":   50000,
			"currency": "INR",
			"status":   "created",
		})
	}))
	defer server.Close()

	t.Setenv("RAZORPAY_KEY_ID", "key_id")
	t.Setenv("RAZORPAY_KEY_SECRET", "key_secret")
	t.Setenv("RAZORPAY_BASE_URL", server.URL)

	svc := NewRazorpayService()
	order, err := svc.CreateOrder(50000, "INR", "rcpt_1")
	require.NoError(t, err)
	assert.Equal(t, "order_test123", order.ID)
	assert.EqualValues(t, 50000, order.Amount)
	assert.Equal(t, "INR", order.Currency)
}

func TestCreateOrderGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad request"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	t.Setenv("RAZORPAY_KEY_ID", "key_id")
	t.Setenv("RAZORPAY_KEY_SECRET", "key_secret")
	t.Setenv("RAZORPAY_BASE_URL", server.URL)

	svc := NewRazorpayService()
	_, err := svc.CreateOrder(100, "INR", "rcpt_2")
	assert.Error(t, err)
}

func TestCreateOrderMissingCredentials(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "")
	t.Setenv("RAZORPAY_KEY_SECRET", "")

	svc := NewRazorpayService()
	_, err := svc.CreateOrder(100, "INR", "rcpt_3")
	assert.Error(t, err)
}
