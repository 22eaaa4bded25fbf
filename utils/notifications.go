// utils/notifications.go
package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ctkevents/evm_backend/config"
	"github.com/ctkevents/evm_backend/models"
	"github.com/ctkevents/evm_backend/websocket"
)

var notificationHub *websocket.Hub

// SetNotificationHub wires the websocket hub so persisted notifications are
// also pushed to connected clients.
func SetNotificationHub(hub *websocket.Hub) {
	notificationHub = hub
}

// SaveNotification persists a notification for a user and mirrors it to the
// user's live websocket connection when present. Delivery is best effort.
func SaveNotification(db *mongo.Client, userID primitive.ObjectID, message, notifType, link string) error {
	collection := config.GetCollection(db, "notifications")

	notification := models.Notification{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Message:   message,
		Type:      notifType,
		Link:      link,
		IsRead:    false,
		Timestamp: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := collection.InsertOne(ctx, notification)
	if err != nil {
		return err
	}

	if notificationHub != nil {
		if err := notificationHub.SendToUser(userID, websocket.Event{
			Type:    notifType,
			Message: message,
			Data:    notification,
		}); err != nil {
			// User not connected; they will see it in the feed
			log.Printf("Websocket push skipped for user %s: %v", userID.Hex(), err)
		}
	}

	return nil
}

// DistinctBookingOwners returns the distinct set of users holding a booking
// for the given event.
func DistinctBookingOwners(db *mongo.Client, eventID primitive.ObjectID) ([]primitive.ObjectID, error) {
	collection := config.GetCollection(db, "bookings")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	values, err := collection.Distinct(ctx, "userId", bson.M{"eventId": eventID})
	if err != nil {
		return nil, err
	}

	owners := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		if id, ok := v.(primitive.ObjectID); ok {
			owners = append(owners, id)
		}
	}
	return owners, nil
}

// SendBookingNotification confirms a booking to the user who made it
func SendBookingNotification(db *mongo.Client, userID primitive.ObjectID, eventName string, numberOfTickets int) {
	message := BookingConfirmationMessage(eventName, numberOfTickets)
	if err := SaveNotification(db, userID, message, models.NotificationTypeBooking, "/profile"); err != nil {
		log.Printf("Error sending booking notification: %v", err)
	}
}

// SendTicketCancellationNotification notifies the owner of a booking that it
// has been cancelled. Looks the booking up by id; a missing booking is logged
// and skipped.
func SendTicketCancellationNotification(db *mongo.Client, bookingID primitive.ObjectID) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var booking models.Booking
	err := config.GetCollection(db, "bookings").FindOne(ctx, bson.M{"_id": bookingID}).Decode(&booking)
	if err != nil {
		log.Printf("Error sending cancellation notification, booking %s not found: %v", bookingID.Hex(), err)
		return
	}

	message := fmt.Sprintf("Your ticket for the event %q has been cancelled successfully.", booking.EventName)
	if err := SaveNotification(db, booking.UserID, message, models.NotificationTypeCancellation, "/profile"); err != nil {
		log.Printf("Error sending cancellation notification: %v", err)
	}
}

// SendWelcomeNotification greets a freshly registered user
func SendWelcomeNotification(db *mongo.Client, userID primitive.ObjectID) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := config.GetCollection(db, "users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		log.Printf("Error sending welcome notification, user %s not found: %v", userID.Hex(), err)
		return
	}

	message := fmt.Sprintf("Welcome %s! Thank you for registering on our platform.", user.UserName)
	if err := SaveNotification(db, userID, message, models.NotificationTypeWelcome, "/profile"); err != nil {
		log.Printf("Error sending welcome notification: %v", err)
	}
}

// SendEventUpdateNotification fans out an update notice to every distinct user
// holding a booking for the event. Per-recipient failures are independent.
func SendEventUpdateNotification(db *mongo.Client, eventID primitive.ObjectID) {
	fanOutToBookers(db, eventID, models.NotificationTypeInfo, "/event/"+eventID.Hex(),
		func(eventName string) string {
			return fmt.Sprintf("Event %q has been updated. Check the latest details.", eventName)
		})
}

// SendEventCancelNotification fans out a cancellation notice to every distinct
// user holding a booking for the event.
func SendEventCancelNotification(db *mongo.Client, eventID primitive.ObjectID) {
	fanOutToBookers(db, eventID, models.NotificationTypeCancellation, "/events",
		func(eventName string) string {
			return fmt.Sprintf("Event %q has been cancelled. We apologize for the inconvenience.", eventName)
		})
}

func fanOutToBookers(db *mongo.Client, eventID primitive.ObjectID, notifType, link string, format func(eventName string) string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var event models.Event
	err := config.GetCollection(db, "events").FindOne(ctx, bson.M{"_id": eventID}).Decode(&event)
	if err != nil {
		log.Printf("Error notifying bookers, event %s not found: %v", eventID.Hex(), err)
		return
	}

	owners, err := DistinctBookingOwners(db, eventID)
	if err != nil {
		log.Printf("Error computing booking owners for event %s: %v", eventID.Hex(), err)
		return
	}

	message := format(event.EventName)
	for _, userID := range owners {
		if err := SaveNotification(db, userID, message, notifType, link); err != nil {
			log.Printf("Error notifying user %s about event %s: %v", userID.Hex(), eventID.Hex(), err)
		}
	}
}

// SendContactNotificationForAdmin tells every admin about a new contact message
func SendContactNotificationForAdmin(db *mongo.Client, contactID primitive.ObjectID, contactEmail, contactName, contactMessage string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := config.GetCollection(db, "users").Find(ctx, bson.M{"isAdmin": true})
	if err != nil {
		log.Printf("Error finding admins for contact notification: %v", err)
		return
	}

	var admins []models.User
	if err := cursor.All(ctx, &admins); err != nil {
		log.Printf("Error decoding admins for contact notification: %v", err)
		return
	}

	message := fmt.Sprintf("New contact message from %s (%s): %s", contactName, contactEmail, contactMessage)
	for _, admin := range admins {
		if err := SaveNotification(db, admin.ID, message, models.NotificationTypeContact, "inbox/"+contactID.Hex()); err != nil {
			log.Printf("Error sending contact notification to admin %s: %v", admin.ID.Hex(), err)
		}
	}
}

// SendContactNotificationForUser delivers an admin reply back to the sender
func SendContactNotificationForUser(db *mongo.Client, userID primitive.ObjectID, contactMessage, adminReply string) {
	message := fmt.Sprintf("For your query %q the admin reply is: %q.", contactMessage, adminReply)
	if err := SaveNotification(db, userID, message, models.NotificationTypeContact, "/"); err != nil {
		log.Printf("Error sending contact notification to user: %v", err)
	}
}

// BookingConfirmationMessage renders the booking confirmation text
func BookingConfirmationMessage(eventName string, numberOfTickets int) string {
	return fmt.Sprintf("Booking confirmed for %d tickets for event %q.", numberOfTickets, eventName)
}

// FeedbackRequestMessage renders the post-event feedback prompt
func FeedbackRequestMessage(eventName string) string {
	return fmt.Sprintf("We hope you enjoyed %q. Please share your feedback!", eventName)
}
