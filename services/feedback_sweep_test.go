package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUntilNextRun(t *testing.T) {
	s := &FeedbackSweeper{}

	morning := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 3*time.Hour, s.untilNextRun(morning))

	afternoon := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, 21*time.Hour, s.untilNextRun(afternoon))

	// Exactly at the sweep hour the next run is tomorrow
	noon := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 24*time.Hour, s.untilNextRun(noon))
}
