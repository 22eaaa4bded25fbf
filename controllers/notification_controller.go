package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ctkevents/evm_backend/config"
	"github.com/ctkevents/evm_backend/models"
	"github.com/ctkevents/evm_backend/utils"
	"github.com/ctkevents/evm_backend/websocket"
)

// NotificationController serves the per-user notification feed and the live
// websocket channel.
type NotificationController struct {
	db  *mongo.Client
	hub *websocket.Hub
}

// NewNotificationController creates a new notification controller
func NewNotificationController(db *mongo.Client, hub *websocket.Hub) *NotificationController {
	return &NotificationController{db: db, hub: hub}
}

// GetNotifications returns the caller's notifications, newest first. Records
// older than the TTL have already been evicted by the store.
func (nc *NotificationController) GetNotifications(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	cursor, err := config.GetCollection(nc.db, "notifications").Find(ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"timestamp": -1}),
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch notifications",
		})
	}

	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode notifications",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Notifications fetched successfully",
		Data:    notifications,
	})
}

// ServeWS upgrades the connection and registers the caller for live pushes
func (nc *NotificationController) ServeWS(c echo.Context) error {
	userID, err := utils.GetUserIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	return websocket.HandleWebSocket(c, nc.hub, userID)
}
