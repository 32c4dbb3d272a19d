package test

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// Token signs a session token for the given user ID with the secret
// configured in AUTH_SECRET. Tests use it to act as different users.
func Token(t *testing.T, sub string) string {
	secret, ok := os.LookupEnv("AUTH_SECRET")
	require.True(t, ok, "environment variable AUTH_SECRET must be set")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": sub + "@example.com",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

// AuthHeader returns the request headers for a session of the given user.
func AuthHeader(t *testing.T, sub string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + Token(t, sub)}
}
