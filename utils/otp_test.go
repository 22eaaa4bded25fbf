package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPLengthAndDigits(t *testing.T) {
	otp, err := GenerateOTP(6)
	require.NoError(t, err)
	require.Len(t, otp, 6)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9', "OTP contains non-digit %q", r)
	}
}

func TestGenerateOTPVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		otp, err := GenerateOTP(6)
		require.NoError(t, err)
		seen[otp] = true
	}
	// 20 identical six-digit draws would mean the RNG is broken
	assert.Greater(t, len(seen), 1)
}

func TestValidateOTPAttemptsNilClient(t *testing.T) {
	assert.NoError(t, ValidateOTPAttempts("someone@example.com", nil))
}
