package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reply status values derived for the admin inbox
const (
	ReplyStatusUnresolved   = "unresolved"
	ReplyStatusResolved     = "resolved"
	ReplyStatusUserNotFound = "user_not_found"
)

// ContactMessage model
type ContactMessage struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ContactName    string             `json:"contactName" bson:"contactName"`
	ContactEmail   string             `json:"contactEmail" bson:"contactEmail"`
	ContactMessage string             `json:"contactMessage" bson:"contactMessage"`
	IsResolved     bool               `json:"isResolved" bson:"isResolved"`
	AdminReply     string             `json:"adminReply" bson:"adminReply"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}

// ContactRequest is the request body for submitting a contact message
type ContactRequest struct {
	ContactName    string `json:"contactName" validate:"required"`
	ContactEmail   string `json:"contactEmail" validate:"required,email"`
	ContactMessage string `json:"contactMessage" validate:"required"`
}

// AdminReplyRequest is the request body for replying to a contact message
type AdminReplyRequest struct {
	ContactID  string `json:"contactId" validate:"required"`
	UserEmail  string `json:"userEmail" validate:"required"`
	AdminReply string `json:"adminReply" validate:"required"`
}

// ContactMessageWithStatus annotates a message with its derived reply status
type ContactMessageWithStatus struct {
	ContactMessage
	ReplyStatus string `json:"replyStatus"`
}
