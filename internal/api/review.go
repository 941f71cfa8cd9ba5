package api

import (
	"net/http" // HTTP status codes

	"tourism_backend/internal/domain"
	"tourism_backend/internal/service"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ReviewRequest is the payload for posting a destination review
type ReviewRequest struct {
	Destination string `json:"destination" binding:"required"`
	Rating      int    `json:"rating" binding:"required"` // Scale is caller-supplied
	Comment     string `json:"comment"`
	UserID      uint   `json:"user_id" binding:"required"`
}

// AddReviewHandler stores a review; requires a valid session
func AddReviewHandler(reviews service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid review request"})
			return
		}
		review := &domain.Review{
			Destination: req.Destination,
			Rating:      req.Rating,
			Comment:     req.Comment,
			UserID:      req.UserID,
		}
		if err := reviews.Add(c.Request.Context(), review); err != nil {
			logrus.WithFields(logrus.Fields{
				"destination": req.Destination,
				"user_id":     req.UserID,
				"error":       err.Error(),
			}).Error("Review creation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Review added successfully"})
	}
}

// ListReviewsHandler returns reviews for a destination with the authoring
// usernames. Public, no session required.
func ListReviewsHandler(reviews service.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		destination := c.Param("destination")
		list, err := reviews.ListByDestination(c.Request.Context(), destination)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"destination": destination,
				"error":       err.Error(),
			}).Error("Review listing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if list == nil {
			list = []domain.ReviewWithAuthor{} // No reviews serializes as [], not null
		}
		c.JSON(http.StatusOK, gin.H{"reviews": list})
	}
}
