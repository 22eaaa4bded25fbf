package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ctkevents/evm_backend/models"
)

func TestDeriveReplyStatus(t *testing.T) {
	tests := []struct {
		name         string
		adminReply   string
		senderIsUser bool
		want         string
	}{
		{"no reply yet", "", false, models.ReplyStatusUnresolved},
		{"no reply even for known user", "", true, models.ReplyStatusUnresolved},
		{"replied to registered user", "Thanks, fixed.", true, models.ReplyStatusResolved},
		{"replied to unknown sender", "Thanks, fixed.", false, models.ReplyStatusUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveReplyStatus(tt.adminReply, tt.senderIsUser))
		})
	}
}
