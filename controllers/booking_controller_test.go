package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestReserveTickets(t *testing.T) {
	tests := []struct {
		name          string
		available     int
		requested     int
		wantRemaining int
		wantOK        bool
	}{
		{"partial reservation", 10, 4, 6, true},
		{"exact capacity", 10, 10, 0, true},
		{"single ticket", 1, 1, 0, true},
		{"insufficient leaves count unchanged", 6, 7, 6, false},
		{"nothing left", 0, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remaining, ok := ReserveTickets(tt.available, tt.requested)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRemaining, remaining)
		})
	}
}

func TestReleaseTickets(t *testing.T) {
	assert.Equal(t, 10, ReleaseTickets(6, 4))
	assert.Equal(t, 4, ReleaseTickets(0, 4))
}

// Capacity 10: book 4, a booking of 7 is rejected without touching the count,
// then cancelling the 4 restores the full capacity.
func TestInventorySequence(t *testing.T) {
	available := 10

	available, ok := ReserveTickets(available, 4)
	require.True(t, ok)
	require.Equal(t, 6, available)

	rejected, ok := ReserveTickets(available, 7)
	require.False(t, ok)
	require.Equal(t, 6, rejected)

	available = ReleaseTickets(available, 4)
	assert.Equal(t, 10, available)
}

func TestSequentialReservationArithmetic(t *testing.T) {
	capacity := 20
	available := capacity
	sizes := []int{3, 5, 2, 4}

	total := 0
	for _, n := range sizes {
		var ok bool
		available, ok = ReserveTickets(available, n)
		require.True(t, ok)
		total += n
	}
	assert.Equal(t, capacity-total, available)
}

func newBookingTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateBookingUnauthorized(t *testing.T) {
	c, rec := newBookingTestContext(t, http.MethodPost, "/api/bookevents/abc", `{}`)
	bc := NewBookingController(nil)

	require.NoError(t, bc.CreateBooking(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateBookingInvalidEventID(t *testing.T) {
	c, rec := newBookingTestContext(t, http.MethodPost, "/api/bookevents/not-an-id", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("not-an-id")
	c.Set("userId", primitive.NewObjectID().Hex())
	bc := NewBookingController(nil)

	require.NoError(t, bc.CreateBooking(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingMissingFields(t *testing.T) {
	eventID := primitive.NewObjectID().Hex()
	c, rec := newBookingTestContext(t, http.MethodPost, "/api/bookevents/"+eventID, `{}`)
	c.SetParamNames("id")
	c.SetParamValues(eventID)
	c.Set("userId", primitive.NewObjectID().Hex())
	bc := NewBookingController(nil)

	require.NoError(t, bc.CreateBooking(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "All booking details are required")
}

func TestCancelBookingInvalidID(t *testing.T) {
	c, rec := newBookingTestContext(t, http.MethodDelete, "/api/cancelticket/not-an-id", "")
	c.SetParamNames("id")
	c.SetParamValues("not-an-id")
	c.Set("userId", primitive.NewObjectID().Hex())
	bc := NewBookingController(nil)

	require.NoError(t, bc.CancelBooking(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTicketQRInvalidID(t *testing.T) {
	c, rec := newBookingTestContext(t, http.MethodGet, "/api/ticketqr/not-an-id", "")
	c.SetParamNames("id")
	c.SetParamValues("not-an-id")
	c.Set("userId", primitive.NewObjectID().Hex())
	bc := NewBookingController(nil)

	require.NoError(t, bc.TicketQR(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
