package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	tok, exp, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.ParseAccessToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestJWTManager_RejectsForeignSecret(t *testing.T) {
	tok, _, err := NewJWTManager("other", time.Hour).GenerateAccessToken("user-1")
	require.NoError(t, err)

	_, err = NewJWTManager("secret", time.Hour).ParseAccessToken(tok)
	require.Error(t, err)
}

func TestJWTManager_RejectsExpired(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)
	tok, _, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(tok)
	require.Error(t, err)
}

func TestJWTManager_RejectsNoneAlgorithm(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-1"})
	s, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTManager("secret", time.Hour).ParseAccessToken(s)
	require.Error(t, err)
}

func TestJWTManager_RejectsForeignIssuer(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	s, err := tok.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWTManager("secret", time.Hour).ParseAccessToken(s)
	require.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestJWTManager_RequiresExpiry(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID:           "user-1",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: TokenIssuer},
	})
	s, err := tok.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWTManager("secret", time.Hour).ParseAccessToken(s)
	require.Error(t, err)
}
