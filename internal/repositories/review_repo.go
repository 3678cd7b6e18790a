package repositories

import "agromarket/internal/models"

// ReviewRepository defines the interface for product review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByProductID(productID string) ([]models.Review, error)
}
