package market_test

import (
	"testing"
	"time"

	"agromarket/internal/market"
	"agromarket/internal/models"

	"github.com/stretchr/testify/assert"
)

func orderAt(id string, total float64, created time.Time, quantities ...int) models.Order {
	o := models.Order{ID: id, Total: total, CreatedAt: created, Status: models.OrderStatusPending}
	for _, q := range quantities {
		o.Items = append(o.Items, models.OrderItem{Quantity: q})
	}
	return o
}

func TestTotalSales(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		orderAt("o1", 10.50, now),
		orderAt("o2", 4.25, now),
	}
	assert.InDelta(t, 14.75, market.TotalSales(orders), 1e-9)
	assert.Equal(t, 0.0, market.TotalSales(nil))
}

func TestTotalItemsSold(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		orderAt("o1", 0, now, 2, 3),
		orderAt("o2", 0, now, 1),
	}
	assert.Equal(t, 6, market.TotalItemsSold(orders))
	assert.Equal(t, 0, market.TotalItemsSold(nil))
}

func TestRecentOrders(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	orders := make([]models.Order, 0, 7)
	for i := 0; i < 7; i++ {
		orders = append(orders, orderAt(string(rune('a'+i)), 0, base.Add(time.Duration(i)*time.Hour)))
	}

	recent := market.RecentOrders(orders, market.DefaultRecentOrders)
	assert.Len(t, recent, 5)
	assert.Equal(t, "g", recent[0].ID)
	assert.Equal(t, "c", recent[4].ID)

	// Input order is untouched.
	assert.Equal(t, "a", orders[0].ID)
}

func TestRecentOrders_StableOnTies(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	orders := []models.Order{
		orderAt("first", 0, ts),
		orderAt("second", 0, ts),
		orderAt("third", 0, ts),
	}
	recent := market.RecentOrders(orders, 5)
	assert.Equal(t, []string{"first", "second", "third"}, []string{recent[0].ID, recent[1].ID, recent[2].ID})
}

func TestRecentOrders_FewerThanN(t *testing.T) {
	orders := []models.Order{orderAt("only", 0, time.Now())}
	assert.Len(t, market.RecentOrders(orders, 5), 1)
	assert.Empty(t, market.RecentOrders(nil, 5))
}

func TestSellerAverageRating(t *testing.T) {
	products := []models.Product{
		{SellerName: "Maria's Farm", Rating: 5, ReviewCount: 2},
		{SellerName: "Maria's Farm", Rating: 3, ReviewCount: 1},
	}
	// (5*2 + 3*1) / 3
	assert.InDelta(t, 13.0/3.0, market.SellerAverageRating(products), 1e-9)
}

func TestSellerAverageRating_NoReviews(t *testing.T) {
	products := []models.Product{
		{SellerName: "New Farm", Rating: 0, ReviewCount: 0},
	}
	assert.Equal(t, 0.0, market.SellerAverageRating(products))
	assert.Equal(t, 0.0, market.SellerAverageRating(nil))
}

func TestBySeller(t *testing.T) {
	products := []models.Product{
		{ID: "p1", SellerName: "A"},
		{ID: "p2", SellerName: "B"},
		{ID: "p3", SellerName: "A"},
	}
	got := market.BySeller(products, "A")
	assert.Equal(t, []string{"p1", "p3"}, []string{got[0].ID, got[1].ID})
}
