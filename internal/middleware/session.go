package middleware

import (
	"errors"   // Error classification
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"tourism_backend/internal/service" // Auth service for session checks

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Context keys set by SessionAuthMiddleware.
const (
	CtxUserID   = "userID"
	CtxUsername = "username"
)

// SessionAuthMiddleware resolves the bearer token through the session
// registry and stores the caller's identity in the request context.
func SessionAuthMiddleware(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			// No token at all, reject before touching the registry
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		sess, err := auth.Authorize(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				// Unknown, expired or revoked token
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
				return
			}
			// Session store failure is not an auth decision; a valid token
			// must not be told to re-login because Redis is down
			logrus.WithField("error", err.Error()).Error("Session lookup failed")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
			return
		}
		c.Set(CtxUserID, sess.UserID)     // Store userID in context
		c.Set(CtxUsername, sess.Username) // Store username in context
		c.Next()                          // Proceed to the next handler
	}
}

// ExtractToken pulls the session token from the Authorization header,
// accepting both "Bearer <token>" and a bare token value.
func ExtractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}
