package middleware

import (
	"context"
	"net/http"
	"strings"

	"hirehub/internal/delivery/http/response"
	"hirehub/internal/domain"
	"hirehub/pkg/token"

	"github.com/gin-gonic/gin"
)

// bearerToken pulls the session token from the Authorization header or,
// failing that, the "token" cookie set at login.
func bearerToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie
	}
	return ""
}

// AuthMiddleware rejects requests without a valid session token and places
// the caller's identity on the request context.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.ParseSession(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		setSession(c, claims.Subject, claims.Email, claims.Role)

		c.Next()
	}
}

// setSession places the identity both on gin's key store (for handlers
// using c.GetString) and on the request context (for usecases reading
// through the typed domain keys).
func setSession(c *gin.Context, userID, email, role string) {
	c.Set(string(domain.KeyUserID), userID)
	c.Set(string(domain.KeyUserEmail), email)
	c.Set(string(domain.KeyUserRole), role)

	ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, userID)
	ctx = context.WithValue(ctx, domain.KeyUserEmail, email)
	ctx = context.WithValue(ctx, domain.KeyUserRole, role)
	c.Request = c.Request.WithContext(ctx)
}

// OptionalAuth parses a session token when one is present but never rejects
// the request. Used on public endpoints whose behavior is richer for owners,
// such as viewing one's own inactive job posting.
func OptionalAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := bearerToken(c); tokenString != "" {
			if claims, err := tokens.ParseSession(tokenString); err == nil {
				setSession(c, claims.Subject, claims.Email, claims.Role)
			}
		}
		c.Next()
	}
}
