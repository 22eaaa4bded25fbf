package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ctkevents/evm_backend/config"
	"github.com/ctkevents/evm_backend/models"
	"github.com/ctkevents/evm_backend/repositories"
	"github.com/ctkevents/evm_backend/utils"
)

// UserController serves profile and user-administration endpoints
type UserController struct {
	db       *mongo.Client
	userRepo *repositories.UserRepository
}

// NewUserController creates a new user controller
func NewUserController(db *mongo.Client, userRepo *repositories.UserRepository) *UserController {
	return &UserController{db: db, userRepo: userRepo}
}

// GetProfileDetails returns the user's account, their bookings joined with the
// current event documents, and the feedback they have submitted.
func (uc *UserController) GetProfileDetails(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "User not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
	user.Password = ""

	// Join each booking with its event so the profile can show current event
	// details next to the snapshot taken at booking time. Bookings whose event
	// was deleted keep a null event.
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "events",
			"localField":   "eventId",
			"foreignField": "_id",
			"as":           "event",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$event",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$sort", Value: bson.M{"bookingDate": -1}}},
	}

	cursor, err := config.GetCollection(uc.db, "bookings").Aggregate(ctx, pipeline)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch bookings",
		})
	}

	bookings := []bson.M{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode bookings",
		})
	}

	feedbackCursor, err := config.GetCollection(uc.db, "feedbacks").Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch feedback",
		})
	}

	feedbacks := []models.Feedback{}
	if err := feedbackCursor.All(ctx, &feedbacks); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode feedback",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Profile fetched successfully",
		Data: map[string]interface{}{
			"user":      user,
			"bookings":  bookings,
			"feedbacks": feedbacks,
		},
	})
}

// GetUsers lists every non-admin account
func (uc *UserController) GetUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users, err := uc.userRepo.ListNonAdmins(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch users",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Users fetched successfully",
		Data:    users,
	})
}
