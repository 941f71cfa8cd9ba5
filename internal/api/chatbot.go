package api

import (
	"net/http" // HTTP status codes

	"tourism_backend/internal/chatbot"
	"tourism_backend/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// ChatbotRequest carries the user's free-text query and, optionally, their
// session token for a personalized reply.
type ChatbotRequest struct {
	Query     string `json:"query" binding:"required"`
	SessionID string `json:"session_id"`
}

// RecommendRequest carries the traveller's interests
type RecommendRequest struct {
	Interests []string `json:"interests"`
}

// ChatbotHandler classifies the query against the canned-response table.
// Personalization is cosmetic: a resolvable session token prefixes the
// reply with the username, an unresolvable one is simply ignored.
func ChatbotHandler(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatbotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid chatbot request"})
			return
		}
		response := chatbot.Classify(req.Query)
		if req.SessionID != "" {
			if sess, err := auth.Authorize(c.Request.Context(), req.SessionID); err == nil && sess != nil {
				response = sess.Username + ", " + response
			}
		}
		c.JSON(http.StatusOK, gin.H{"response": response})
	}
}

// RecommendHandler returns up to five destinations for the given interests
func RecommendHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RecommendRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid recommendation request"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"recommendations": chatbot.Recommend(req.Interests)})
	}
}
