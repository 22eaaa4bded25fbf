package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSendToUserNotConnected(t *testing.T) {
	hub := NewHub()
	err := hub.SendToUser(primitive.NewObjectID(), Event{Type: "info", Message: "hello"})
	assert.Error(t, err)
}
