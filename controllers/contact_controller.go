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
	"github.com/ctkevents/evm_backend/models"
	"github.com/ctkevents/evm_backend/repositories"
	"github.com/ctkevents/evm_backend/utils"
)

// ContactController handles visitor contact messages and admin replies
type ContactController struct {
	db       *mongo.Client
	userRepo *repositories.UserRepository
}

// NewContactController creates a new contact controller
func NewContactController(db *mongo.Client, userRepo *repositories.UserRepository) *ContactController {
	return &ContactController{db: db, userRepo: userRepo}
}

// DeriveReplyStatus classifies a contact message for the admin inbox. A message
// with no reply is unresolved; a replied message is resolved when the sender's
// email belongs to a registered user, and user_not_found otherwise.
func DeriveReplyStatus(adminReply string, senderIsUser bool) string {
	if adminReply == "" {
		return models.ReplyStatusUnresolved
	}
	if senderIsUser {
		return models.ReplyStatusResolved
	}
	return models.ReplyStatusUserNotFound
}

// ContactPost stores a visitor's message and alerts every admin
func (cc *ContactController) ContactPost(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "All contact fields are required",
		})
	}

	email, err := utils.SanitizeEmail(req.ContactEmail)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid email format",
		})
	}

	message := models.ContactMessage{
		ID:             primitive.NewObjectID(),
		ContactName:    req.ContactName,
		ContactEmail:   email,
		ContactMessage: req.ContactMessage,
		IsResolved:     false,
		CreatedAt:      time.Now(),
	}

	if _, err := config.GetCollection(cc.db, "contactus").InsertOne(ctx, message); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to submit message",
		})
	}

	utils.SendContactNotificationForAdmin(cc.db, message.ID, message.ContactEmail, message.ContactName, message.ContactMessage)

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Message submitted successfully",
		Data:    message,
	})
}

// AdminGet lists contact messages newest first, each annotated with its derived
// reply status.
func (cc *ContactController) AdminGet(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := config.GetCollection(cc.db, "contactus").Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch messages",
		})
	}

	var messages []models.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode messages",
		})
	}

	annotated := make([]models.ContactMessageWithStatus, 0, len(messages))
	for _, message := range messages {
		senderIsUser := false
		if _, err := cc.userRepo.FindByEmail(ctx, message.ContactEmail); err == nil {
			senderIsUser = true
		}
		annotated = append(annotated, models.ContactMessageWithStatus{
			ContactMessage: message,
			ReplyStatus:    DeriveReplyStatus(message.AdminReply, senderIsUser),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Messages fetched successfully",
		Data:    annotated,
	})
}

// AdminPost records an admin's reply to a contact message. When the sender's
// email belongs to a registered user the message is marked resolved and the
// user is notified in-app; otherwise the reply is stored but the admin is told
// to reach out by mail.
func (cc *ContactController) AdminPost(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.AdminReplyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Contact ID, user email and reply are required",
		})
	}

	contactID, err := primitive.ObjectIDFromHex(req.ContactID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid contact ID",
		})
	}

	collection := config.GetCollection(cc.db, "contactus")
	var message models.ContactMessage
	if err := collection.FindOne(ctx, bson.M{"_id": contactID}).Decode(&message); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Contact message not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	user, userErr := cc.userRepo.FindByEmail(ctx, req.UserEmail)
	resolved := userErr == nil

	_, err = collection.UpdateOne(ctx,
		bson.M{"_id": contactID},
		bson.M{"$set": bson.M{"adminReply": req.AdminReply, "isResolved": resolved}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to save reply",
		})
	}

	if !resolved {
		return c.JSON(http.StatusOK, models.Response{
			Status:  http.StatusOK,
			Message: "User not found, please mail them directly",
		})
	}

	utils.SendContactNotificationForUser(cc.db, user.ID, message.ContactMessage, req.AdminReply)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Reply sent successfully",
	})
}
