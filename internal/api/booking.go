package api

import (
	"errors"
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"

	"tourism_backend/internal/domain"
	"tourism_backend/internal/service"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// dateLayout is the wire format for optional stay dates.
const dateLayout = "2006-01-02"

// BookingRequest is the payload for creating or updating a booking
type BookingRequest struct {
	HotelName        string  `json:"hotel_name" binding:"required"`
	NumberOfRooms    int     `json:"number_of_rooms" binding:"required,gt=0"`
	NumberOfAdults   int     `json:"number_of_adults" binding:"required,gt=0"`
	NumberOfChildren int     `json:"number_of_children" binding:"gte=0"`
	CostPerRoom      float64 `json:"cost_per_room" binding:"required,gt=0"`
	PhoneNumber      string  `json:"phone_number"`
	Email            string  `json:"email"`
	UserID           uint    `json:"user_id" binding:"required"`
	UserName         string  `json:"user_name" binding:"required"`
	CheckIn          string  `json:"check_in"`  // Optional, YYYY-MM-DD
	CheckOut         string  `json:"check_out"` // Optional, YYYY-MM-DD
}

// toDomain converts the request into a booking model, parsing the optional
// stay dates. Returns an error when a supplied date does not parse.
func (r *BookingRequest) toDomain() (*domain.Booking, error) {
	booking := &domain.Booking{
		HotelName:        r.HotelName,
		NumberOfRooms:    r.NumberOfRooms,
		NumberOfAdults:   r.NumberOfAdults,
		NumberOfChildren: r.NumberOfChildren,
		CostPerRoom:      r.CostPerRoom,
		PhoneNumber:      r.PhoneNumber,
		Email:            r.Email,
		UserID:           r.UserID,
		UserName:         r.UserName,
	}
	if r.CheckIn != "" {
		t, err := time.Parse(dateLayout, r.CheckIn)
		if err != nil {
			return nil, err
		}
		booking.CheckIn = &t
	}
	if r.CheckOut != "" {
		t, err := time.Parse(dateLayout, r.CheckOut)
		if err != nil {
			return nil, err
		}
		booking.CheckOut = &t
	}
	return booking, nil
}

// CreateBookingHandler validates and persists a new booking
func CreateBookingHandler(bookings service.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid booking request"})
			return
		}
		booking, err := req.toDomain()
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Dates must use the YYYY-MM-DD format"})
			return
		}
		if err := bookings.Create(c.Request.Context(), booking); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": booking.UserID,
				"hotel":   booking.HotelName,
				"error":   err.Error(),
			}).Error("Booking creation failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"booking_id": booking.ID,
			"reference":  booking.Reference,
			"user_id":    booking.UserID,
			"total_cost": booking.TotalCost,
		}).Info("Booking created")
		c.JSON(http.StatusCreated, gin.H{
			"message":    "Booking created successfully",
			"booking_id": booking.ID,
			"reference":  booking.Reference,
			"total_cost": booking.TotalCost,
		})
	}
}

// ListBookingsHandler returns a user's bookings, newest first
func ListBookingsHandler(bookings service.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid user id"})
			return
		}
		list, err := bookings.ListByUser(c.Request.Context(), uint(userID))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("Booking listing failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
			return
		}
		if list == nil {
			list = []domain.Booking{} // Empty history serializes as [], not null
		}
		c.JSON(http.StatusOK, gin.H{"bookings": list})
	}
}

// GetLatestBookingHandler returns the user's most recent booking, served
// from the advisory snapshot when available
func GetLatestBookingHandler(bookings service.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid user id"})
			return
		}
		booking, err := bookings.Latest(c.Request.Context(), uint(userID))
		if err != nil {
			if errors.Is(err, service.ErrBookingNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "No bookings found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Error("Latest booking lookup failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
			return
		}
		c.JSON(http.StatusOK, booking)
	}
}

// GetBookingHandler returns a single booking by ID
func GetBookingHandler(bookings service.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid booking id"})
			return
		}
		booking, err := bookings.Get(c.Request.Context(), uint(id))
		if err != nil {
			if errors.Is(err, service.ErrBookingNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}
			logrus.WithFields(logrus.Fields{"booking_id": id, "error": err.Error()}).Error("Booking lookup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		c.JSON(http.StatusOK, booking)
	}
}

// UpdateBookingHandler overwrites an existing booking and reprices it
func UpdateBookingHandler(bookings service.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid booking id"})
			return
		}
		var req BookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid booking request"})
			return
		}
		booking, err := req.toDomain()
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Dates must use the YYYY-MM-DD format"})
			return
		}
		booking.ID = uint(id)
		updated, err := bookings.Update(c.Request.Context(), booking)
		if err != nil {
			if errors.Is(err, service.ErrBookingNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}
			logrus.WithFields(logrus.Fields{"booking_id": id, "error": err.Error()}).Error("Booking update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":    "Booking updated successfully",
			"booking_id": updated.ID,
			"total_cost": updated.TotalCost,
		})
	}
}

// DeleteBookingHandler removes a booking by ID
func DeleteBookingHandler(bookings service.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid booking id"})
			return
		}
		if err := bookings.Delete(c.Request.Context(), uint(id)); err != nil {
			if errors.Is(err, service.ErrBookingNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}
			logrus.WithFields(logrus.Fields{"booking_id": id, "error": err.Error()}).Error("Booking deletion failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
	}
}
