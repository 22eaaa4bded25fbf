package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ctkevents/evm_backend/models"
)

func TestPartitionEvents(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	past := models.Event{ID: primitive.NewObjectID(), EventName: "Past", EventDate: now.Add(-24 * time.Hour)}
	exact := models.Event{ID: primitive.NewObjectID(), EventName: "Today", EventDate: now}
	future := models.Event{ID: primitive.NewObjectID(), EventName: "Future", EventDate: now.Add(24 * time.Hour)}

	resp := PartitionEvents([]models.Event{past, exact, future}, now)

	assert.Equal(t, []models.Event{exact, future}, resp.UpcomingEvents)
	assert.Equal(t, []models.Event{past}, resp.ExpiredEvents)
}

func TestPartitionEventsEmpty(t *testing.T) {
	resp := PartitionEvents(nil, time.Now())

	// Both buckets must serialize as [] rather than null
	assert.NotNil(t, resp.UpcomingEvents)
	assert.NotNil(t, resp.ExpiredEvents)
	assert.Empty(t, resp.UpcomingEvents)
	assert.Empty(t, resp.ExpiredEvents)
}

func TestPartitionEventsEverywhereExactlyOnce(t *testing.T) {
	now := time.Now()
	var events []models.Event
	for i := -5; i <= 5; i++ {
		events = append(events, models.Event{
			ID:        primitive.NewObjectID(),
			EventDate: now.Add(time.Duration(i) * time.Hour),
		})
	}

	resp := PartitionEvents(events, now)
	assert.Equal(t, len(events), len(resp.UpcomingEvents)+len(resp.ExpiredEvents))

	seen := map[primitive.ObjectID]int{}
	for _, e := range resp.UpcomingEvents {
		seen[e.ID]++
	}
	for _, e := range resp.ExpiredEvents {
		seen[e.ID]++
	}
	for _, e := range events {
		assert.Equal(t, 1, seen[e.ID])
	}
}
