package auth_test

import (
	"testing"
	"time"

	"recruitment-intake-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-test-secret-test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := auth.NewAccessToken(testSecret, 42, "admin", time.Minute)
	assert.NoError(t, err)
	assert.NotEmpty(t, token.Token)

	claims, err := auth.ParseAccessToken(testSecret, token.Token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	token, err := auth.NewAccessToken(testSecret, 42, "user", time.Minute)
	assert.NoError(t, err)

	_, err = auth.ParseAccessToken("a-different-secret-entirely", token.Token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	token, err := auth.NewAccessToken(testSecret, 42, "user", -time.Minute)
	assert.NoError(t, err)

	_, err = auth.ParseAccessToken(testSecret, token.Token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	_, err := auth.ParseAccessToken(testSecret, "not.a.jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestNewRefreshTokenIsUnique(t *testing.T) {
	a, err := auth.NewRefreshToken(time.Hour)
	assert.NoError(t, err)
	b, err := auth.NewRefreshToken(time.Hour)
	assert.NoError(t, err)

	assert.Len(t, a.Raw, 96)
	assert.NotEqual(t, a.Raw, b.Raw)
	assert.True(t, a.Exp.After(time.Now()))
}

func TestHashRefreshRaw(t *testing.T) {
	h1 := auth.HashRefreshRaw("token-a")
	h2 := auth.HashRefreshRaw("token-a")
	h3 := auth.HashRefreshRaw("token-b")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64)
	assert.NotContains(t, h1, "token-a")
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse", 4)
	assert.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hash)

	assert.True(t, auth.VerifyPassword(hash, "correct-horse"))
	assert.False(t, auth.VerifyPassword(hash, "wrong-horse"))
	assert.False(t, auth.VerifyPassword("not-a-bcrypt-hash", "correct-horse"))
}
