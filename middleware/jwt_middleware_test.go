package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenString, err := GenerateJWT("64f1c0ffee0000000000abcd", true)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims := &JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "64f1c0ffee0000000000abcd", claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
}

func TestGenerateJWTMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT("someid", false)
	assert.Error(t, err)
}

func TestJwtCustomClaimsValid(t *testing.T) {
	valid := JwtCustomClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	assert.NoError(t, valid.Valid())

	expired := JwtCustomClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	assert.Error(t, expired.Valid())
}

func TestBlacklistToken(t *testing.T) {
	token := "some.session.token"
	assert.False(t, IsTokenBlacklisted(token))

	BlacklistToken(token, time.Now().Add(time.Hour))
	assert.True(t, IsTokenBlacklisted(token))
}

func TestBlacklistTokenAlreadyExpired(t *testing.T) {
	token := "already.expired.token"
	BlacklistToken(token, time.Now().Add(-time.Minute))
	assert.False(t, IsTokenBlacklisted(token))
}
