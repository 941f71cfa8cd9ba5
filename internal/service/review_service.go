package service

import (
	"context"

	"tourism_backend/internal/domain"
	"tourism_backend/internal/repository"
)

// ReviewService persists and lists destination reviews.
type ReviewService interface {
	Add(ctx context.Context, review *domain.Review) error
	ListByDestination(ctx context.Context, destination string) ([]domain.ReviewWithAuthor, error)
}

type reviewService struct {
	reviews repository.ReviewRepository
}

func NewReviewService(reviews repository.ReviewRepository) ReviewService {
	return &reviewService{reviews: reviews}
}

func (s *reviewService) Add(ctx context.Context, review *domain.Review) error {
	return s.reviews.Create(ctx, review)
}

func (s *reviewService) ListByDestination(ctx context.Context, destination string) ([]domain.ReviewWithAuthor, error) {
	return s.reviews.FindByDestination(ctx, destination)
}
