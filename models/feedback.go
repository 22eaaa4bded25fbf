package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback model. No uniqueness constraint per (user, event); a user may submit
// feedback for the same event more than once.
type Feedback struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EventID   primitive.ObjectID `json:"eventId" bson:"eventId"`
	EventName string             `json:"eventName" bson:"eventName"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	Rating    int                `json:"rating" bson:"rating"`
	Comments  string             `json:"comments" bson:"comments"`
}

// FeedbackRequest is the request body for submitting feedback
type FeedbackRequest struct {
	EventID   string `json:"eventId" validate:"required"`
	EventName string `json:"eventName" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comments  string `json:"comments" validate:"required"`
}

// FeedbackWithUser is a feedback row with the submitter's display name resolved
type FeedbackWithUser struct {
	Feedback `bson:",inline"`
	UserName string `json:"userName" bson:"userName"`
}
