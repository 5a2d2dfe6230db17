// Package auth issues and verifies the bearer tokens guarding the API.
// The signing secret is injected at startup; nothing here is ever baked
// into source, and a request with a bad or expired token gets a 401 with
// no session state left behind.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrNoSecret     = errors.New("auth: signing secret is empty")
	ErrInvalidToken = errors.New("auth: invalid token")
)

// ClaimsKey is the Locals key the middleware stores verified claims under.
const ClaimsKey = "authClaims"

// Claims is the token payload: subject is the user id.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager signs and verifies tokens with an HS256 secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// New returns a Manager. The secret must be non-empty.
func New(secret string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl}, nil
}

// Issue returns a signed token for the given user.
func (m *Manager) Issue(userID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return tok, nil
}

// Verify parses and validates a token, returning its claims.
func (m *Manager) Verify(token string) (*Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("auth: unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

// Middleware returns a Fiber handler that requires a valid bearer token
// and stores the claims in c.Locals(ClaimsKey).
func (m *Manager) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.Status(401).JSON(fiber.Map{"error": "missing bearer token"})
		}
		claims, err := m.Verify(token)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "could not validate credentials"})
		}
		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}
