package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ctkevents/evm_backend/config"
	"github.com/ctkevents/evm_backend/models"
	"github.com/ctkevents/evm_backend/utils"
)

// The sweep runs once a day at this wall-clock hour
const sweepHour = 12

// FeedbackSweeper asks attendees of past events for feedback. Each event is
// processed at most once, tracked by the persisted feedbackRequested flag.
type FeedbackSweeper struct {
	db *mongo.Client
}

// NewFeedbackSweeper creates a new feedback sweeper
func NewFeedbackSweeper(db *mongo.Client) *FeedbackSweeper {
	return &FeedbackSweeper{db: db}
}

// Run blocks, executing the sweep daily at the configured hour. Intended to
// run on its own goroutine.
func (s *FeedbackSweeper) Run() {
	for {
		time.Sleep(s.untilNextRun(time.Now()))
		if err := s.Sweep(context.Background()); err != nil {
			log.Printf("Feedback sweep failed: %v", err)
		}
	}
}

func (s *FeedbackSweeper) untilNextRun(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), sweepHour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next.Sub(now)
}

// Sweep scans expired events that have not yet been prompted and emits one
// feedback-request notification per distinct booking owner. A failure on one
// event does not abort the others.
func (s *FeedbackSweeper) Sweep(ctx context.Context) error {
	eventColl := config.GetCollection(s.db, "events")

	cursor, err := eventColl.Find(ctx, bson.M{
		"eventDate":         bson.M{"$lt": time.Now()},
		"feedbackRequested": bson.M{"$ne": true},
	})
	if err != nil {
		return err
	}

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return err
	}

	for _, event := range events {
		if err := s.sweepEvent(ctx, event); err != nil {
			log.Printf("Error requesting feedback for event %s: %v", event.ID.Hex(), err)
		}
	}

	return nil
}

func (s *FeedbackSweeper) sweepEvent(ctx context.Context, event models.Event) error {
	owners, err := utils.DistinctBookingOwners(s.db, event.ID)
	if err != nil {
		return err
	}

	message := utils.FeedbackRequestMessage(event.EventName)
	link := "/event/" + event.ID.Hex()
	for _, userID := range owners {
		if err := utils.SaveNotification(s.db, userID, message, models.NotificationTypeFeedback, link); err != nil {
			log.Printf("Error notifying user %s for event %s: %v", userID.Hex(), event.ID.Hex(), err)
		}
	}

	// Mark last so a crashed run is retried rather than silently skipped
	eventColl := config.GetCollection(s.db, "events")
	_, err = eventColl.UpdateOne(ctx,
		bson.M{"_id": event.ID},
		bson.M{"$set": bson.M{"feedbackRequested": true}},
	)
	return err
}
