package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// User is the caller identity as resolved from the session token. The
// identity provider owns the user; this is a read-only view of it.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ErrUnauthorized is returned for requests without a resolvable session.
var ErrUnauthorized = errors.New("you need to be authenticated to use this endpoint")

const contextUser = "notekeeper-user"

// Guard resolves the caller for every request. It verifies session tokens
// issued by the external identity provider, it does not issue them.
type Guard struct {
	keyFunc jwt.Keyfunc
}

// NewGuard configures the session guard from the environment.
//
// If AUTH_JWKS_URL is set, tokens are verified against the public keys the
// identity provider publishes there. Otherwise AUTH_SECRET is used as a
// shared HS256 secret.
func NewGuard() (*Guard, error) {
	if jwksURL, ok := os.LookupEnv("AUTH_JWKS_URL"); ok {
		jwks, err := keyfunc.NewDefault([]string{jwksURL})
		if err != nil {
			return nil, fmt.Errorf("failed to create JWKS from resource at %s: %w", jwksURL, err)
		}

		return &Guard{keyFunc: jwks.Keyfunc}, nil
	}

	secret, ok := os.LookupEnv("AUTH_SECRET")
	if !ok || secret == "" {
		return nil, errors.New("either AUTH_JWKS_URL or AUTH_SECRET must be set")
	}

	key := []byte(secret)
	return &Guard{keyFunc: func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	}}, nil
}

// ResolveUser returns the caller for the request, or nil when the request
// carries no valid session. "No session" is not an error.
func (g *Guard) ResolveUser(r *http.Request) *User {
	header := r.Header.Get("Authorization")

	// Only the Bearer scheme is supported, a token without it is rejected
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return nil
	}

	raw := strings.TrimSpace(header[len(prefix):])
	if raw == "" {
		return nil
	}

	token, err := jwt.Parse(raw, g.keyFunc)
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil
	}

	email, _ := claims["email"].(string)
	return &User{ID: sub, Email: email}
}

// Middleware aborts unauthenticated requests with 401 before any handler
// performs data access and stores the caller in the gin context.
func (g *Guard) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := g.ResolveUser(c.Request)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrUnauthorized.Error()})
			return
		}

		c.Set(contextUser, user)
		c.Next()
	}
}

// UserFromContext returns the caller that Middleware resolved.
func UserFromContext(c *gin.Context) *User {
	value, _ := c.Get(contextUser)
	user, _ := value.(*User)
	return user
}
