package services

import (
	"time"

	"agromarket/internal/market"
	"agromarket/internal/models"
	"agromarket/internal/repositories"
	"agromarket/internal/session"
)

// CatalogService handles business logic related to marketplace listings.
type CatalogService struct {
	repo repositories.ProductRepository
	now  func() time.Time
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
		now:  time.Now,
	}
}

// ListCatalog retrieves the listings matching the filter, in stable store
// order. Spoilage is evaluated against the current date.
func (s *CatalogService) ListCatalog(filter market.Filter) ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return filter.Apply(products, s.now()), nil
}

// GetProduct retrieves a single listing by its ID.
func (s *CatalogService) GetProduct(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// Spoilage reports the freshness status of a listing as of today.
func (s *CatalogService) Spoilage(p *models.Product) market.Spoilage {
	return market.EvaluateSpoilage(p.ExpirationDate, s.now())
}

// CreateProduct creates a new listing owned by the session's user. Ratings
// always start at zero; they only move through reviews and order ratings.
func (s *CatalogService) CreateProduct(sess session.Session, product *models.Product) error {
	product.SellerID = sess.UserID
	product.Rating = 0
	product.ReviewCount = 0
	return s.repo.Create(product)
}

// UpdateProduct updates an existing listing. Ownership and the accumulated
// rating are carried over from the stored record; edits cannot touch them.
func (s *CatalogService) UpdateProduct(product *models.Product) error {
	existing, err := s.repo.GetByID(product.ID)
	if err != nil {
		return err
	}
	product.SellerID = existing.SellerID
	product.SellerName = existing.SellerName
	product.Rating = existing.Rating
	product.ReviewCount = existing.ReviewCount
	product.Model = existing.Model
	return s.repo.Update(product)
}

// DeleteProduct deletes a listing by its ID.
func (s *CatalogService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
