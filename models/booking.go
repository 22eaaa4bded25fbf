package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking model. Event name/date and user name/phone are value copies taken at
// booking time; they are not re-read from the source documents afterwards.
type Booking struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EventID         primitive.ObjectID `json:"eventId" bson:"eventId"`
	EventName       string             `json:"eventName" bson:"eventName"`
	UserID          primitive.ObjectID `json:"userId" bson:"userId"`
	UserName        string             `json:"userName" bson:"userName"`
	UserPhonenumber string             `json:"userPhonenumber" bson:"userPhonenumber"`
	NumberOfTickets int                `json:"numberOfTickets" bson:"numberOfTickets"`
	EventDate       time.Time          `json:"eventDate" bson:"eventDate"`
	BookingDate     time.Time          `json:"bookingDate" bson:"bookingDate"`
}

// BookingRequest is the request body for booking tickets
type BookingRequest struct {
	EventName       string    `json:"eventName" validate:"required"`
	UserName        string    `json:"userName" validate:"required"`
	UserPhonenumber string    `json:"userPhonenumber" validate:"required"`
	NumberOfTickets int       `json:"numberOfTickets" validate:"required,min=1"`
	EventDate       time.Time `json:"eventDate" validate:"required"`
}

// CancelBookingResponse reports the inventory after a cancellation. The counter
// is nil when the event no longer exists.
type CancelBookingResponse struct {
	Message                 string `json:"message"`
	UpdatedAvailableTickets *int   `json:"updatedAvailableTickets"`
}
