package api

import (
	"errors"
	"net/http" // HTTP status codes

	"tourism_backend/internal/middleware"
	"tourism_backend/internal/service"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// SignupRequest is the registration payload
type SignupRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
	Email    string `json:"email"`                       // Optional contact email
	FullName string `json:"full_name"`                   // Optional display name
}

// LoginRequest is the credential payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupHandler registers a new user
func SignupHandler(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			// Malformed body never reaches the service
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body"})
			return
		}
		err := auth.Signup(c.Request.Context(), service.SignupInput{
			Username: req.Username,
			Password: req.Password,
			Email:    req.Email,
			FullName: req.FullName,
		})
		if err != nil {
			if errors.Is(err, service.ErrUsernameTaken) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
				return
			}
			// Full detail stays in the log, the client gets a generic message
			logrus.WithFields(logrus.Fields{
				"username": req.Username,
				"error":    err.Error(),
			}).Error("Signup failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "User signed up successfully"})
	}
}

// LoginHandler authenticates a user and returns a session token
func LoginHandler(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body"})
			return
		}
		result, err := auth.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			// Same message for unknown username and wrong password
			if errors.Is(err, service.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"username": req.Username,
				"error":    err.Error(),
			}).Error("Login failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":    "Login successful",
			"session_id": result.Token,
			"username":   result.Username,
			"user_id":    result.UserID,
		})
	}
}

// LogoutHandler revokes the caller's session token. Idempotent: logging out
// an already-revoked token returns the same success response.
func LogoutHandler(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := middleware.ExtractToken(c)
		if token != "" {
			if err := auth.Logout(c.Request.Context(), token); err != nil {
				logrus.WithField("error", err.Error()).Error("Logout failed")
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// ForgotPasswordHandler resets a user's password
func ForgotPasswordHandler(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Same shape: username plus the new password
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request body"})
			return
		}
		err := auth.ResetPassword(c.Request.Context(), req.Username, req.Password)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, service.ErrSamePassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": "New password must be different from the current password"})
		default:
			logrus.WithFields(logrus.Fields{
				"username": req.Username,
				"error":    err.Error(),
			}).Error("Password reset failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
	}
}

// ProtectedHandler reports the identity behind a valid session. Used by the
// frontend to check whether its stored token is still alive.
func ProtectedHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString(middleware.CtxUsername)
		c.JSON(http.StatusOK, gin.H{
			"message": "Session is active",
			"user":    username,
		})
	}
}
