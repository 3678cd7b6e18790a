package market

import (
	"sort"

	"agromarket/internal/models"
)

// DefaultRecentOrders is how many orders the dashboard ranking shows.
const DefaultRecentOrders = 5

// TotalSales sums the totals of all orders. An empty slice yields 0.
func TotalSales(orders []models.Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.Total
	}
	return total
}

// TotalItemsSold sums the item quantities across all orders.
func TotalItemsSold(orders []models.Order) int {
	var count int
	for _, o := range orders {
		for _, item := range o.Items {
			count += item.Quantity
		}
	}
	return count
}

// RecentOrders returns the n most recently created orders, newest first.
// The sort is stable so orders sharing a timestamp keep their relative
// order. The input is not mutated.
func RecentOrders(orders []models.Order, n int) []models.Order {
	out := make([]models.Order, len(orders))
	copy(out, orders)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// BySeller returns the listings belonging to one seller, in input order.
func BySeller(products []models.Product, sellerName string) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.SellerName == sellerName {
			out = append(out, p)
		}
	}
	return out
}

// SellerAverageRating computes the review-count-weighted mean rating across
// a seller's listings. It is 0 when the listings carry no reviews at all.
func SellerAverageRating(products []models.Product) float64 {
	var weighted float64
	var reviews int
	for _, p := range products {
		weighted += p.Rating * float64(p.ReviewCount)
		reviews += p.ReviewCount
	}
	if reviews == 0 {
		return 0
	}
	return weighted / float64(reviews)
}
