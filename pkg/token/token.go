package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// Sessions stay valid for 15 days; the frontend keeps the token in a cookie.
	SessionTTL = 15 * 24 * time.Hour
	// Password reset links are short-lived.
	ResetTTL = 15 * time.Minute

	purposeSession = "session"
	purposeReset   = "password_reset"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carried by every HireHub bearer token.
type Claims struct {
	Email   string `json:"email"`
	Role    string `json:"role"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// Manager issues and validates HS256 bearer tokens.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// IssueSession returns a signed session token for the given user.
func (m *Manager) IssueSession(userID, email, role string) (string, error) {
	return m.issue(userID, email, role, purposeSession, SessionTTL)
}

// IssueReset returns a short-lived token for the password reset flow.
func (m *Manager) IssueReset(userID, email string) (string, error) {
	return m.issue(userID, email, "", purposeReset, ResetTTL)
}

func (m *Manager) issue(userID, email, role, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:   email,
		Role:    role,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// ParseSession validates a session token and returns its claims.
func (m *Manager) ParseSession(tokenString string) (*Claims, error) {
	return m.parse(tokenString, purposeSession)
}

// ParseReset validates a password-reset token and returns its claims.
// A session token is not accepted here, so a leaked session cookie
// cannot be replayed as a reset link.
func (m *Manager) ParseReset(tokenString string) (*Claims, error) {
	return m.parse(tokenString, purposeReset)
}

func (m *Manager) parse(tokenString, purpose string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Purpose != purpose {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
