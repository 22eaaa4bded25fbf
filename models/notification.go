package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types
const (
	NotificationTypeBooking      = "booking"
	NotificationTypeCancellation = "cancellation"
	NotificationTypeReminder     = "reminder"
	NotificationTypeSuccess      = "success"
	NotificationTypeInfo         = "info"
	NotificationTypeWarning      = "warning"
	NotificationTypeError        = "error"
	NotificationTypeDefault      = "default"
	NotificationTypeWelcome      = "welcome"
	NotificationTypeFeedback     = "feedback"
	NotificationTypeContact      = "contact"
)

// NotificationTTLSeconds is how long a notification document lives before the
// TTL index evicts it (3 days).
const NotificationTTLSeconds = 259200

// Notification model
type Notification struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	Message   string             `json:"message" bson:"message"`
	Type      string             `json:"type" bson:"type"`
	Link      string             `json:"link,omitempty" bson:"link,omitempty"`
	IsRead    bool               `json:"isRead" bson:"isRead"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
}
