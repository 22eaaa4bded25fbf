package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingConfirmationMessage(t *testing.T) {
	msg := BookingConfirmationMessage("Jazz Night", 3)
	assert.Equal(t, `Booking confirmed for 3 tickets for event "Jazz Night".`, msg)
}

func TestFeedbackRequestMessage(t *testing.T) {
	msg := FeedbackRequestMessage("Jazz Night")
	assert.Equal(t, `We hope you enjoyed "Jazz Night". Please share your feedback!`, msg)
}
