// utils/auth.go
package utils

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ctkevents/evm_backend/config"
	"github.com/ctkevents/evm_backend/middleware"
	"github.com/ctkevents/evm_backend/models"
	"github.com/labstack/echo/v4"
)

// GetUserFromToken loads the full user document for the authenticated request
func GetUserFromToken(c echo.Context, db *mongo.Client) (*models.User, error) {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return nil, errors.New("no token found")
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, errors.New("invalid user ID format")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err = config.GetCollection(db, "users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("user not found")
		}
		return nil, errors.New("error retrieving user")
	}

	user.Password = ""

	return &user, nil
}

// GetUserIDFromToken extracts the user ObjectID from the JWT token
func GetUserIDFromToken(c echo.Context) (primitive.ObjectID, error) {
	userID, err := middleware.ExtractUserID(c)
	if err != nil {
		return primitive.ObjectID{}, echo.ErrUnauthorized
	}
	return primitive.ObjectIDFromHex(userID)
}
