package controllers

import (
	"bytes"
	"context"
	"image/png"
	"net/http"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ctkevents/evm_backend/config"
	"github.com/ctkevents/evm_backend/middleware"
	"github.com/ctkevents/evm_backend/models"
	"github.com/ctkevents/evm_backend/utils"
)

// BookingController handles ticket reservation and cancellation.
//
// The create path persists the booking before the inventory check, so a
// failure discovered afterwards leaves the booking in place uncompensated.
// The inventory read-modify-write is not guarded against concurrent bookings.
type BookingController struct {
	db *mongo.Client
}

// NewBookingController creates a new booking controller
func NewBookingController(db *mongo.Client) *BookingController {
	return &BookingController{db: db}
}

// ReserveTickets returns the inventory left after reserving n tickets. When
// fewer than n are available it reports ok=false and the count is unchanged.
func ReserveTickets(available, n int) (int, bool) {
	if n > available {
		return available, false
	}
	return available - n, true
}

// ReleaseTickets returns tickets from a cancelled booking to the inventory
func ReleaseTickets(available, n int) int {
	return available + n
}

// CreateBooking reserves tickets against an event's inventory
func (bc *BookingController) CreateBooking(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid event ID",
		})
	}

	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "All booking details are required",
		})
	}

	utils.SendBookingNotification(bc.db, userID, req.EventName, req.NumberOfTickets)

	booking := models.Booking{
		ID:              primitive.NewObjectID(),
		EventID:         eventID,
		EventName:       req.EventName,
		UserID:          userID,
		UserName:        req.UserName,
		UserPhonenumber: req.UserPhonenumber,
		NumberOfTickets: req.NumberOfTickets,
		EventDate:       req.EventDate,
		BookingDate:     time.Now(),
	}

	bookingColl := config.GetCollection(bc.db, "bookings")
	if _, err := bookingColl.InsertOne(ctx, booking); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Internal server error while processing booking.",
		})
	}

	eventColl := config.GetCollection(bc.db, "events")
	var event models.Event
	err = eventColl.FindOne(ctx, bson.M{"_id": eventID}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Event not found.",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Internal server error while processing booking.",
		})
	}

	if _, ok := ReserveTickets(event.AvailableTickets, req.NumberOfTickets); !ok {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Not enough tickets available for this event.",
		})
	}

	_, err = eventColl.UpdateOne(ctx,
		bson.M{"_id": eventID},
		bson.M{"$inc": bson.M{"eventAvailableTickets": -req.NumberOfTickets}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Internal server error while processing booking.",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Booking created successfully.",
		Data:    booking,
	})
}

// CancelBooking reverses a reservation and returns its tickets to the event.
// A booking can only be cancelled by its owner and only once; the second
// attempt finds nothing. A missing event is tolerated: the booking is still
// deleted and the reported counter is null.
func (bc *BookingController) CancelBooking(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	bookingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid booking ID",
		})
	}

	utils.SendTicketCancellationNotification(bc.db, bookingID)

	bookingColl := config.GetCollection(bc.db, "bookings")
	var booking models.Booking
	err = bookingColl.FindOne(ctx, bson.M{"_id": bookingID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Booking not found.",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Internal server error while cancelling booking.",
		})
	}

	if booking.UserID != userID {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Forbidden: You do not have permission to cancel this booking.",
		})
	}

	var updatedAvailableTickets *int
	eventColl := config.GetCollection(bc.db, "events")
	var updatedEvent models.Event
	err = eventColl.FindOneAndUpdate(ctx,
		bson.M{"_id": booking.EventID},
		bson.M{"$inc": bson.M{"eventAvailableTickets": booking.NumberOfTickets}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updatedEvent)
	if err == nil {
		updatedAvailableTickets = &updatedEvent.AvailableTickets
	} else if err != mongo.ErrNoDocuments {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Internal server error while cancelling booking.",
		})
	}
	// A vanished event just means there is no counter left to restore

	if _, err := bookingColl.DeleteOne(ctx, bson.M{"_id": bookingID}); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Internal server error while cancelling booking.",
		})
	}

	return c.JSON(http.StatusOK, models.CancelBookingResponse{
		Message:                 "Booking cancelled successfully and tickets returned.",
		UpdatedAvailableTickets: updatedAvailableTickets,
	})
}

// TicketQR renders a PNG QR code for a booking, for door check-in. Only the
// booking's owner or an admin may fetch it.
func (bc *BookingController) TicketQR(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	bookingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid booking ID",
		})
	}

	var booking models.Booking
	err = config.GetCollection(bc.db, "bookings").FindOne(ctx, bson.M{"_id": bookingID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Booking not found.",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	if booking.UserID != userID && !middleware.IsAdminRequest(c) {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Forbidden: You do not have permission to view this ticket.",
		})
	}

	content := "ctkevents://ticket/" + booking.ID.Hex()
	qrCode, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate QR code: " + err.Error(),
		})
	}

	qrCode, err = barcode.Scale(qrCode, 256, 256)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to scale QR code: " + err.Error(),
		})
	}

	buffer := new(bytes.Buffer)
	if err := png.Encode(buffer, qrCode); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to encode QR code as PNG: " + err.Error(),
		})
	}

	return c.Blob(http.StatusOK, "image/png", buffer.Bytes())
}
