package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ctkevents/evm_backend/config"
	"github.com/ctkevents/evm_backend/models"
	"github.com/ctkevents/evm_backend/utils"
)

// FeedbackController stores event ratings and serves them to admins
type FeedbackController struct {
	db *mongo.Client
}

// NewFeedbackController creates a new feedback controller
func NewFeedbackController(db *mongo.Client) *FeedbackController {
	return &FeedbackController{db: db}
}

// SubmitFeedback records a rating and comment against an event. Repeat
// submissions by the same user are accepted as new rows.
func (fc *FeedbackController) SubmitFeedback(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	var req models.FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "All feedback fields are required and rating must be 1-5",
		})
	}

	eventID, err := primitive.ObjectIDFromHex(req.EventID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid event ID",
		})
	}

	feedback := models.Feedback{
		ID:        primitive.NewObjectID(),
		EventID:   eventID,
		EventName: req.EventName,
		UserID:    userID,
		Rating:    req.Rating,
		Comments:  req.Comments,
	}

	if _, err := config.GetCollection(fc.db, "feedbacks").InsertOne(ctx, feedback); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to submit feedback",
		})
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Feedback submitted successfully",
		Data:    feedback,
	})
}

// ViewFeedback lists an event's feedback with each submitter's display name
func (fc *FeedbackController) ViewFeedback(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid event ID",
		})
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"eventId": eventID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$user",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$addFields", Value: bson.M{"userName": "$user.userName"}}},
		{{Key: "$project", Value: bson.M{"user": 0}}},
	}

	cursor, err := config.GetCollection(fc.db, "feedbacks").Aggregate(ctx, pipeline)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch feedback",
		})
	}

	feedbacks := []models.FeedbackWithUser{}
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode feedback",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Feedback fetched successfully",
		Data:    feedbacks,
	})
}
