package repository

import (
	"context"

	"tourism_backend/internal/domain"

	"gorm.io/gorm"
)

// ReviewRepository is the data-access contract for destination reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	FindByDestination(ctx context.Context, destination string) ([]domain.ReviewWithAuthor, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// FindByDestination returns all reviews for a destination joined with the
// authoring username. Ordering is unspecified.
func (r *reviewRepository) FindByDestination(ctx context.Context, destination string) ([]domain.ReviewWithAuthor, error) {
	var reviews []domain.ReviewWithAuthor
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Select("reviews.id, reviews.destination, reviews.rating, reviews.comment, reviews.user_id, reviews.created_at, users.username").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.destination = ?", destination).
		Scan(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
