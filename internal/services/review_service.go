package services

import (
	"fmt"
	"time"

	"agromarket/internal/models"
	"agromarket/internal/repositories"
)

// ReviewService handles product reviews and keeps the reviewed product's
// aggregate rating in sync.
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
	now         func() time.Time
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		now:         time.Now,
	}
}

// AddReview stores a review and recomputes the product's rating as the plain
// mean over all of its reviews.
func (s *ReviewService) AddReview(review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}

	product, err := s.productRepo.GetByID(review.ProductID)
	if err != nil {
		return err
	}

	review.CreatedAt = s.now()
	if err := s.reviewRepo.Create(review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	reviews, err := s.reviewRepo.GetByProductID(review.ProductID)
	if err != nil {
		return fmt.Errorf("failed to recompute rating for product %s: %w", review.ProductID, err)
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	product.Rating = float64(sum) / float64(len(reviews))
	product.ReviewCount = len(reviews)

	if err := s.productRepo.Update(product); err != nil {
		return fmt.Errorf("failed to update product rating: %w", err)
	}
	return nil
}

// ListProductReviews retrieves all reviews for a product.
func (s *ReviewService) ListProductReviews(productID string) ([]models.Review, error) {
	return s.reviewRepo.GetByProductID(productID)
}
