// utils/otp.go
package utils

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
)

// GenerateOTP generates a random numeric OTP of the specified length
func GenerateOTP(length int) (string, error) {
	const digits = "0123456789"
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		result[i] = digits[num.Int64()]
	}
	return string(result), nil
}

// ValidateOTPAttempts throttles OTP verification per email. Limit is 5
// attempts per hour; a nil Redis client disables the check.
func ValidateOTPAttempts(email string, redisClient *redis.Client) error {
	if redisClient == nil {
		return nil
	}

	key := "otp_attempts:" + email
	attempts, err := redisClient.Incr(context.Background(), key).Result()
	if err != nil {
		return err
	}

	if attempts == 1 {
		redisClient.Expire(context.Background(), key, 1*time.Hour)
	}

	if attempts > 5 {
		return errors.New("too many OTP attempts")
	}

	return nil
}
