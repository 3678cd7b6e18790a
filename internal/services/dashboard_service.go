package services

import (
	"agromarket/internal/market"
	"agromarket/internal/models"
	"agromarket/internal/repositories"
)

// DashboardStats is what the producer dashboard renders.
type DashboardStats struct {
	TotalSales     float64        `json:"total_sales"`
	TotalItemsSold int            `json:"total_items_sold"`
	ListingCount   int            `json:"listing_count"`
	AverageRating  float64        `json:"average_rating"`
	RecentOrders   []models.Order `json:"recent_orders"`
}

// DashboardService computes producer analytics over the order and listing
// collections.
type DashboardService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository) *DashboardService {
	return &DashboardService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// Stats aggregates the seller's dashboard numbers: overall sales totals, the
// five most recent orders, and the review-weighted average rating across the
// seller's listings. Empty collections yield zero values, never errors.
func (s *DashboardService) Stats(sellerName string) (*DashboardStats, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}

	mine := market.BySeller(products, sellerName)
	return &DashboardStats{
		TotalSales:     market.TotalSales(orders),
		TotalItemsSold: market.TotalItemsSold(orders),
		ListingCount:   len(mine),
		AverageRating:  market.SellerAverageRating(mine),
		RecentOrders:   market.RecentOrders(orders, market.DefaultRecentOrders),
	}, nil
}
