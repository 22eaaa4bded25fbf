package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctkevents/evm_backend/models"
	"github.com/ctkevents/evm_backend/services"
)

func newPaymentTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/verify-payment", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestVerifyPaymentValidSignature(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "key_id")
	t.Setenv("RAZORPAY_KEY_SECRET", "key_secret")

	mac := hmac.New(sha256.New, []byte("key_secret"))
	mac.Write([]byte("order_1|pay_1"))
	signature := hex.EncodeToString(mac.Sum(nil))

	body, _ := json.Marshal(models.VerifyPaymentRequest{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: signature,
	})

	c, rec := newPaymentTestContext(t, string(body))
	pc := NewPaymentController(services.NewRazorpayService())

	require.NoError(t, pc.VerifyPayment(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.VerifyPaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Empty(t, resp.Error)
}

func TestVerifyPaymentInvalidSignature(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "key_id")
	t.Setenv("RAZORPAY_KEY_SECRET", "key_secret")

	body := `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"deadbeef"}`
	c, rec := newPaymentTestContext(t, body)
	pc := NewPaymentController(services.NewRazorpayService())

	require.NoError(t, pc.VerifyPayment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.VerifyPaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Equal(t, "Invalid signature", resp.Error)
}

func TestVerifyPaymentMissingFields(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "key_id")
	t.Setenv("RAZORPAY_KEY_SECRET", "key_secret")

	c, rec := newPaymentTestContext(t, `{}`)
	pc := NewPaymentController(services.NewRazorpayService())

	require.NoError(t, pc.VerifyPayment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrderRoundsToWholePaise(t *testing.T) {
	var gotAmount float64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		gotAmount = payload["amount"].(float64)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_round",
			"amount":   int64(gotAmount),
			"currency": "INR",
			"status":   "created",
		})
	}))
	defer server.Close()

	t.Setenv("RAZORPAY_KEY_ID", "key_id")
	t.Setenv("RAZORPAY_KEY_SECRET", "key_secret")
	t.Setenv("RAZORPAY_BASE_URL", server.URL)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/create-order", strings.NewReader(`{"amountInRupees":10.05}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	pc := NewPaymentController(services.NewRazorpayService())
	require.NoError(t, pc.CreateOrder(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1005, gotAmount)
}

func TestCreateOrderRejectsSubRupeeAmount(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "key_id")
	t.Setenv("RAZORPAY_KEY_SECRET", "key_secret")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/create-order", strings.NewReader(`{"amountInRupees":0.5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	pc := NewPaymentController(services.NewRazorpayService())
	require.NoError(t, pc.CreateOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
