package controllers

import (
	"context"
	"net/http"
	"time"

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

// EventController handles the event catalog
type EventController struct {
	db *mongo.Client
}

// NewEventController creates a new event controller
func NewEventController(db *mongo.Client) *EventController {
	return &EventController{db: db}
}

// PartitionEvents splits events into upcoming and expired relative to a single
// instant. Every event lands in exactly one bucket; dates equal to the instant
// count as upcoming.
func PartitionEvents(events []models.Event, now time.Time) models.EventListResponse {
	resp := models.EventListResponse{
		UpcomingEvents: []models.Event{},
		ExpiredEvents:  []models.Event{},
	}
	for _, event := range events {
		if event.EventDate.Before(now) {
			resp.ExpiredEvents = append(resp.ExpiredEvents, event)
		} else {
			resp.UpcomingEvents = append(resp.UpcomingEvents, event)
		}
	}
	return resp
}

// CreateEvent adds a new event to the catalog. Available tickets start at the
// declared capacity.
func (ec *EventController) CreateEvent(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.EventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "All event fields are required",
		})
	}

	event := models.Event{
		ID:               primitive.NewObjectID(),
		EventName:        req.EventName,
		EventDate:        req.EventDate,
		EventTime:        req.EventTime,
		EventDescription: req.EventDescription,
		EventOrganizer:   req.EventOrganizer,
		EventLocation:    req.EventLocation,
		EventPhonenumber: req.EventPhonenumber,
		EventEmail:       req.EventEmail,
		EventCategory:    req.EventCategory,
		EventImage:       req.EventImage,
		EventTicketPrice: req.EventTicketPrice,
		EventCapacity:    req.EventCapacity,
		AvailableTickets: req.EventCapacity,
	}

	collection := config.GetCollection(ec.db, "events")
	if _, err := collection.InsertOne(ctx, event); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create event",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Event created successfully",
		Data:    event,
	})
}

// GetEvents lists the whole catalog split into upcoming and expired buckets
func (ec *EventController) GetEvents(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(ec.db, "events")
	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch events",
		})
	}

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode events",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Events fetched successfully",
		Data:    PartitionEvents(events, time.Now()),
	})
}

// GetEvent returns a single event, along with whether the requester is an admin
func (ec *EventController) GetEvent(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid event ID",
		})
	}

	var event models.Event
	err = config.GetCollection(ec.db, "events").FindOne(ctx, bson.M{"_id": eventID}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Event not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch event",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Event fetched successfully",
		Data: map[string]interface{}{
			"event":   event,
			"isAdmin": middleware.IsAdminRequest(c),
		},
	})
}

// UpdateEvent replaces an event's descriptive fields. Every field must be
// supplied or the call is rejected before anything is written. The available
// ticket counter is left untouched; capacity edits do not re-derive it. Users
// holding a booking are notified of the change.
func (ec *EventController) UpdateEvent(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid event ID",
		})
	}

	var req models.EventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "All event fields are required",
		})
	}

	update := bson.M{"$set": bson.M{
		"eventName":        req.EventName,
		"eventDate":        req.EventDate,
		"eventTime":        req.EventTime,
		"eventDescription": req.EventDescription,
		"eventOrganizer":   req.EventOrganizer,
		"eventLocation":    req.EventLocation,
		"eventPhonenumber": req.EventPhonenumber,
		"eventEmail":       req.EventEmail,
		"eventCategory":    req.EventCategory,
		"eventImage":       req.EventImage,
		"eventTicketPrice": req.EventTicketPrice,
		"eventCapacity":    req.EventCapacity,
	}}

	var updated models.Event
	err = config.GetCollection(ec.db, "events").FindOneAndUpdate(ctx,
		bson.M{"_id": eventID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Event not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update event",
		})
	}

	utils.SendEventUpdateNotification(ec.db, eventID)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Event updated successfully",
		Data:    updated,
	})
}

// DeleteEvent removes an event and every booking that references it. Booking
// holders are notified before the event disappears, while its name can still
// be resolved.
func (ec *EventController) DeleteEvent(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid event ID",
		})
	}

	utils.SendEventCancelNotification(ec.db, eventID)

	result, err := config.GetCollection(ec.db, "events").DeleteOne(ctx, bson.M{"_id": eventID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete event",
		})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Event not found",
		})
	}

	if _, err := config.GetCollection(ec.db, "bookings").DeleteMany(ctx, bson.M{"eventId": eventID}); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Event deleted but failed to remove its bookings",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Event and associated bookings deleted successfully",
	})
}

// ViewTickets lists every booking made against an event, newest first, along
// with the event itself.
func (ec *EventController) ViewTickets(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid event ID",
		})
	}

	var event models.Event
	err = config.GetCollection(ec.db, "events").FindOne(ctx, bson.M{"_id": eventID}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Event not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch event",
		})
	}

	cursor, err := config.GetCollection(ec.db, "bookings").Find(ctx,
		bson.M{"eventId": eventID},
		options.Find().SetSort(bson.M{"bookingDate": -1}),
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch bookings",
		})
	}

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode bookings",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Bookings fetched successfully",
		Data: map[string]interface{}{
			"event":    event,
			"bookings": bookings,
		},
	})
}

// UploadEventImage accepts a multipart image and returns its served URL
func (ec *EventController) UploadEventImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "No image file provided",
		})
	}

	if !utils.IsValidImageFile(file) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Unsupported image type",
		})
	}

	path, err := utils.SaveEventImage(file)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to save image",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Image uploaded successfully",
		Data:    map[string]string{"imageUrl": "/" + path},
	})
}
