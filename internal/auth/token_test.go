package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignParseRoundTrip(t *testing.T) {
	tok, err := Sign("test-secret", 42, time.Hour)
	require.NoError(t, err)

	id, err := Parse("test-secret", tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestParseWrongSecret(t *testing.T) {
	tok, err := Sign("test-secret", 42, 0)
	require.NoError(t, err)

	_, err = Parse("other-secret", tok)
	assert.True(t, errors.Is(err, ErrInvalidToken))
	assert.Contains(t, err.Error(), "invalid token")
}

func TestParseExpired(t *testing.T) {
	claims := Claims{UserID: 42}
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = Parse("test-secret", expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{UserID: 42}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = Parse("test-secret", tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsMissingUser(t *testing.T) {
	tok, err := Sign("test-secret", 0, 0)
	require.NoError(t, err)

	_, err = Parse("test-secret", tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSignEmptySecret(t *testing.T) {
	_, err := Sign("", 1, 0)
	assert.Error(t, err)
}
