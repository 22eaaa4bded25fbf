// middleware/token_blacklist.go
package middleware

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/ctkevents/evm_backend/config"
)

// Logged-out tokens are rejected until their natural expiry. Entries live in
// Redis when available (shared across instances, evicted by key TTL) with an
// in-process map as fallback.

const blacklistKeyPrefix = "token_blacklist:"

var (
	tokenBlacklist   = make(map[string]time.Time)
	tokenBlacklistMu sync.RWMutex
)

// BlacklistToken adds a token to the blacklist until the given expiry
func BlacklistToken(token string, expiry time.Time) {
	ttl := time.Until(expiry)
	if ttl <= 0 {
		return
	}

	if redisClient := config.GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := redisClient.Set(ctx, blacklistKeyPrefix+token, "1", ttl).Err()
		if err == nil {
			return
		}
		log.Printf("Failed to blacklist token in Redis, using in-process fallback: %v", err)
	}

	tokenBlacklistMu.Lock()
	tokenBlacklist[token] = expiry
	tokenBlacklistMu.Unlock()
}

// IsTokenBlacklisted checks if a token has been logged out
func IsTokenBlacklisted(token string) bool {
	if redisClient := config.GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		exists, err := redisClient.Exists(ctx, blacklistKeyPrefix+token).Result()
		if err == nil && exists > 0 {
			return true
		}
	}

	tokenBlacklistMu.RLock()
	expiry, found := tokenBlacklist[token]
	tokenBlacklistMu.RUnlock()

	return found && time.Now().Before(expiry)
}

// CleanupBlacklist periodically removes expired tokens from the in-process map.
// Redis entries expire on their own via key TTL.
func CleanupBlacklist() {
	for {
		time.Sleep(1 * time.Hour)
		now := time.Now()
		tokenBlacklistMu.Lock()
		for token, expiry := range tokenBlacklist {
			if now.After(expiry) {
				delete(tokenBlacklist, token)
			}
		}
		tokenBlacklistMu.Unlock()
	}
}
