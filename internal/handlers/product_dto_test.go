package handlers

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"agromarket/internal/market"
	"agromarket/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestProductFromPayload(t *testing.T) {
	payload := ProductPayload{
		Name:           "Cherry Tomatoes",
		Description:    "Sweet and ripe",
		Price:          3.50,
		Unit:           "kg",
		Category:       "Vegetables",
		Location:       "Kalamata",
		SellerName:     "Maria's Farm",
		ImageURL:       "https://example.com/tomatoes.jpg",
		Organic:        true,
		HarvestDate:    "2024-06-08",
		ExpirationDate: "2024-06-20",
		MaxQuantity:    20,
	}

	product := productFromPayload(payload)

	assert.Equal(t, "Cherry Tomatoes", product.Name)
	assert.Equal(t, "Sweet and ripe", product.Description)
	assert.Equal(t, 3.50, product.Price)
	assert.Equal(t, "kg", product.Unit)
	assert.Equal(t, "Vegetables", product.Category)
	assert.Equal(t, "Kalamata", product.Location)
	assert.Equal(t, "Maria's Farm", product.SellerName)
	assert.Equal(t, "https://example.com/tomatoes.jpg", product.ImageURL)
	assert.True(t, product.Organic)
	assert.Equal(t, "2024-06-08", product.HarvestDate)
	assert.Equal(t, "2024-06-20", product.ExpirationDate)
	assert.Equal(t, 20, product.MaxQuantity)

	// Server-derived fields never come from the wire.
	assert.Empty(t, product.ID)
	assert.Empty(t, product.SellerID)
	assert.Equal(t, 0.0, product.Rating)
	assert.Equal(t, 0, product.ReviewCount)
}

func TestProductToResponse(t *testing.T) {
	product := models.Product{
		ID:             "p1",
		Name:           "Cherry Tomatoes",
		Description:    "Sweet and ripe",
		Price:          3.50,
		Unit:           "kg",
		Category:       "Vegetables",
		Location:       "Kalamata",
		SellerID:       "user-1",
		SellerName:     "Maria's Farm",
		ImageURL:       "https://example.com/tomatoes.jpg",
		Organic:        true,
		HarvestDate:    "2024-06-08",
		ExpirationDate: "2024-06-20",
		MaxQuantity:    20,
		Rating:         4.5,
		ReviewCount:    8,
	}

	resp := productToResponse(product, market.SpoilageExpiringSoon)

	assert.Equal(t, "p1", resp.ID)
	assert.Equal(t, "user-1", resp.SellerID)
	assert.Equal(t, "Maria's Farm", resp.SellerName)
	assert.Equal(t, 4.5, resp.Rating)
	assert.Equal(t, 8, resp.ReviewCount)
	assert.Equal(t, "expiring-soon", resp.Spoilage)
	assert.True(t, resp.Purchasable)
}

func TestProductToResponse_ExpiredNotPurchasable(t *testing.T) {
	resp := productToResponse(models.Product{ID: "p1"}, market.SpoilageExpired)
	assert.Equal(t, "expired", resp.Spoilage)
	assert.False(t, resp.Purchasable)
}

func TestProductRoundTrip(t *testing.T) {
	payload := ProductPayload{
		Name:        "Honey",
		Price:       12.0,
		Unit:        "jar",
		Category:    "Honey & Jams",
		Location:    "Crete",
		SellerName:  "Apiary Elias",
		HarvestDate: "2024-05-01",
		MaxQuantity: 5,
	}
	resp := productToResponse(productFromPayload(payload), market.SpoilageNone)

	assert.Equal(t, payload.Name, resp.Name)
	assert.Equal(t, payload.Price, resp.Price)
	assert.Equal(t, payload.Unit, resp.Unit)
	assert.Equal(t, payload.Category, resp.Category)
	assert.Equal(t, payload.Location, resp.Location)
	assert.Equal(t, payload.SellerName, resp.SellerName)
	assert.Equal(t, payload.HarvestDate, resp.HarvestDate)
	assert.Equal(t, payload.MaxQuantity, resp.MaxQuantity)
}

// captureFilter runs filterFromQuery against a real request.
func captureFilter(t *testing.T, target string) market.Filter {
	t.Helper()
	var got market.Filter
	app := fiber.New()
	app.Get("/products", func(c *fiber.Ctx) error {
		got = filterFromQuery(c)
		return c.SendStatus(fiber.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	return got
}

func TestFilterFromQuery_Defaults(t *testing.T) {
	f := captureFilter(t, "/products")
	assert.Equal(t, market.CategoryAll, f.Category)
	assert.Empty(t, f.Query)
	assert.False(t, f.OrganicOnly)
	assert.False(t, f.ShowExpired)
	assert.Equal(t, 0.0, f.MinPrice)
	assert.Equal(t, 0.0, f.MaxPrice)
}

func TestFilterFromQuery_AllParameters(t *testing.T) {
	f := captureFilter(t, "/products?category=Herbs&q=oregano&organic_only=true&show_expired=true&min_price=1.5&max_price=9.99")
	assert.Equal(t, "Herbs", f.Category)
	assert.Equal(t, "oregano", f.Query)
	assert.True(t, f.OrganicOnly)
	assert.True(t, f.ShowExpired)
	assert.Equal(t, 1.5, f.MinPrice)
	assert.Equal(t, 9.99, f.MaxPrice)
}

func TestFilterFromQuery_MalformedPriceIgnored(t *testing.T) {
	f := captureFilter(t, "/products?min_price=abc&max_price=xyz")
	assert.Equal(t, 0.0, f.MinPrice)
	assert.Equal(t, 0.0, f.MaxPrice)
	assert.False(t, math.IsInf(f.MaxPrice, 1))
}
