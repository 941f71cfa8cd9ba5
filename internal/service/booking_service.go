package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"tourism_backend/internal/domain"
	"tourism_backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

// lastBookingTTL bounds how long the advisory "latest booking per user"
// snapshot stays in Redis.
const lastBookingTTL = 24 * time.Hour

// ComputeTotalCost derives the booking total from the room count, the
// nightly rate and the adult headcount.
func ComputeTotalCost(rooms int, costPerRoom float64, adults int) float64 {
	return float64(rooms) * costPerRoom * float64(adults)
}

// SnapshotCache holds the advisory per-user booking snapshots. Entries are
// hints: a miss or a failure falls through to the database.
type SnapshotCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// BookingService validates, prices and persists hotel bookings.
type BookingService interface {
	Create(ctx context.Context, booking *domain.Booking) error
	ListByUser(ctx context.Context, userID uint) ([]domain.Booking, error)
	Latest(ctx context.Context, userID uint) (*domain.Booking, error)
	Get(ctx context.Context, id uint) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	Delete(ctx context.Context, id uint) error
}

type bookingService struct {
	bookings repository.BookingRepository
	cache    SnapshotCache // nil disables the advisory snapshot
}

func NewBookingService(bookings repository.BookingRepository, store SnapshotCache) BookingService {
	return &bookingService{bookings: bookings, cache: store}
}

func lastBookingKey(userID uint) string {
	return "booking:last:user:" + strconv.FormatUint(uint64(userID), 10)
}

// Create prices the booking, assigns a confirmation reference and persists
// it. The per-user snapshot written afterwards is advisory only: a cache
// failure is logged and the booking still succeeds.
func (s *bookingService) Create(ctx context.Context, booking *domain.Booking) error {
	booking.TotalCost = ComputeTotalCost(booking.NumberOfRooms, booking.CostPerRoom, booking.NumberOfAdults)
	booking.Reference = uuid.NewString()
	if err := s.bookings.Create(ctx, booking); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, lastBookingKey(booking.UserID), booking, lastBookingTTL); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": booking.UserID,
				"error":   err.Error(),
			}).Warn("Failed to cache latest booking")
		}
	}
	return nil
}

func (s *bookingService) ListByUser(ctx context.Context, userID uint) ([]domain.Booking, error) {
	return s.bookings.FindByUserID(ctx, userID)
}

// Latest returns the user's most recent booking, served from the advisory
// snapshot when one exists. A cache miss or failure falls through to the
// database; an empty history is ErrBookingNotFound.
func (s *bookingService) Latest(ctx context.Context, userID uint) (*domain.Booking, error) {
	if s.cache != nil {
		var cached domain.Booking
		hit, err := s.cache.GetJSON(ctx, lastBookingKey(userID), &cached)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"error":   err.Error(),
			}).Warn("Failed to read latest booking snapshot")
		} else if hit {
			return &cached, nil
		}
	}
	list, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrBookingNotFound
	}
	return &list[0], nil
}

func (s *bookingService) Get(ctx context.Context, id uint) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

// Update overwrites the mutable fields of an existing booking and reprices
// it. The stale snapshot is dropped rather than rewritten.
func (s *bookingService) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	existing, err := s.bookings.FindByID(ctx, booking.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	existing.HotelName = booking.HotelName
	existing.NumberOfRooms = booking.NumberOfRooms
	existing.NumberOfAdults = booking.NumberOfAdults
	existing.NumberOfChildren = booking.NumberOfChildren
	existing.CostPerRoom = booking.CostPerRoom
	existing.PhoneNumber = booking.PhoneNumber
	existing.Email = booking.Email
	existing.CheckIn = booking.CheckIn
	existing.CheckOut = booking.CheckOut
	existing.TotalCost = ComputeTotalCost(existing.NumberOfRooms, existing.CostPerRoom, existing.NumberOfAdults)
	if err := s.bookings.Update(ctx, existing); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Delete(ctx, lastBookingKey(existing.UserID))
	}
	return existing, nil
}

func (s *bookingService) Delete(ctx context.Context, id uint) error {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	deleted, err := s.bookings.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBookingNotFound
	}
	if s.cache != nil {
		_ = s.cache.Delete(ctx, lastBookingKey(booking.UserID))
	}
	return nil
}
