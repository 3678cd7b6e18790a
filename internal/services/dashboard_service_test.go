package services_test

import (
	"testing"
	"time"

	"agromarket/internal/models"
	"agromarket/internal/repositories"
	"agromarket/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestDashboardService_Stats(t *testing.T) {
	orderRepo := repositories.NewMockOrderRepository()
	productRepo := repositories.NewMockProductRepository()
	service := services.NewDashboardService(orderRepo, productRepo)

	for _, p := range []models.Product{
		{ID: "p1", Name: "Tomatoes", SellerName: "Maria's Farm", Rating: 5, ReviewCount: 2},
		{ID: "p2", Name: "Honey", SellerName: "Maria's Farm", Rating: 3, ReviewCount: 1},
		{ID: "p3", Name: "Cheese", SellerName: "Other Farm", Rating: 1, ReviewCount: 50},
	} {
		p := p
		assert.NoError(t, productRepo.Create(&p))
	}

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		order := models.Order{
			Total:     10,
			Status:    models.OrderStatusPending,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			Items:     []models.OrderItem{{ProductID: "p1", Quantity: 2}},
		}
		assert.NoError(t, orderRepo.Create(&order))
	}

	stats, err := service.Stats("Maria's Farm")
	assert.NoError(t, err)
	assert.InDelta(t, 70.0, stats.TotalSales, 1e-9)
	assert.Equal(t, 14, stats.TotalItemsSold)
	assert.Equal(t, 2, stats.ListingCount)
	assert.InDelta(t, 13.0/3.0, stats.AverageRating, 1e-9)
	assert.Len(t, stats.RecentOrders, 5)
	// Newest first.
	assert.True(t, stats.RecentOrders[0].CreatedAt.After(stats.RecentOrders[4].CreatedAt))
}

func TestDashboardService_Stats_Empty(t *testing.T) {
	service := services.NewDashboardService(repositories.NewMockOrderRepository(), repositories.NewMockProductRepository())

	stats, err := service.Stats("Nobody's Farm")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, stats.TotalSales)
	assert.Equal(t, 0, stats.TotalItemsSold)
	assert.Equal(t, 0.0, stats.AverageRating)
	assert.Empty(t, stats.RecentOrders)
}
