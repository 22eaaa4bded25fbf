package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event model
type Event struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EventName         string             `json:"eventName" bson:"eventName"`
	EventDate         time.Time          `json:"eventDate" bson:"eventDate"`
	EventTime         string             `json:"eventTime" bson:"eventTime"`
	EventDescription  string             `json:"eventDescription" bson:"eventDescription"`
	EventOrganizer    string             `json:"eventOrganizer" bson:"eventOrganizer"`
	EventLocation     string             `json:"eventLocation" bson:"eventLocation"`
	EventPhonenumber  string             `json:"eventPhonenumber" bson:"eventPhonenumber"`
	EventEmail        string             `json:"eventEmail" bson:"eventEmail"`
	EventCategory     string             `json:"eventCategory" bson:"eventCategory"`
	EventImage        string             `json:"eventImage" bson:"eventImage"`
	EventTicketPrice  int                `json:"eventTicketPrice" bson:"eventTicketPrice"`
	EventCapacity     int                `json:"eventCapacity" bson:"eventCapacity"`
	AvailableTickets  int                `json:"eventAvailableTickets" bson:"eventAvailableTickets"`
	FeedbackRequested bool               `json:"feedbackRequested,omitempty" bson:"feedbackRequested,omitempty"`
}

// EventRequest is the request body for creating or replacing an event.
// Every field is required; availableTickets is derived server-side.
type EventRequest struct {
	EventName        string    `json:"eventName" validate:"required"`
	EventDate        time.Time `json:"eventDate" validate:"required"`
	EventTime        string    `json:"eventTime" validate:"required"`
	EventDescription string    `json:"eventDescription" validate:"required"`
	EventOrganizer   string    `json:"eventOrganizer" validate:"required"`
	EventLocation    string    `json:"eventLocation" validate:"required"`
	EventPhonenumber string    `json:"eventPhonenumber" validate:"required"`
	EventEmail       string    `json:"eventEmail" validate:"required,email"`
	EventCategory    string    `json:"eventCategory" validate:"required"`
	EventImage       string    `json:"eventImage" validate:"required"`
	EventTicketPrice int       `json:"eventTicketPrice" validate:"required"`
	EventCapacity    int       `json:"eventCapacity" validate:"required,min=1"`
}

// EventListResponse splits the catalog into upcoming and expired events
type EventListResponse struct {
	UpcomingEvents []Event `json:"upcomingEvents"`
	ExpiredEvents  []Event `json:"expiredEvents"`
}
