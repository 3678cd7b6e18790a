package handlers

import (
	"strconv"

	"agromarket/internal/market"
	"agromarket/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ProductPayload is the wire shape for creating or updating a listing.
// Ratings and ownership are never accepted from the client; they are derived
// server-side.
type ProductPayload struct {
	Name           string  `json:"name" validate:"required,min=2,max=100"`
	Description    string  `json:"description" validate:"omitempty,max=1000"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	Unit           string  `json:"unit" validate:"required,max=30"`
	Category       string  `json:"category" validate:"required,max=50"`
	Location       string  `json:"location" validate:"required,max=100"`
	SellerName     string  `json:"seller_name" validate:"required,max=100"`
	ImageURL       string  `json:"image_url" validate:"omitempty,max=500"`
	Organic        bool    `json:"organic"`
	HarvestDate    string  `json:"harvest_date" validate:"required,datetime=2006-01-02"`
	ExpirationDate string  `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
	MaxQuantity    int     `json:"max_quantity" validate:"gte=0"`
}

// ProductResponse is the wire shape of a listing, extended with the derived
// spoilage status so clients need not recompute it.
type ProductResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	Unit           string  `json:"unit"`
	Category       string  `json:"category"`
	Location       string  `json:"location"`
	SellerID       string  `json:"seller_id"`
	SellerName     string  `json:"seller_name"`
	ImageURL       string  `json:"image_url"`
	Organic        bool    `json:"organic"`
	HarvestDate    string  `json:"harvest_date"`
	ExpirationDate string  `json:"expiration_date,omitempty"`
	MaxQuantity    int     `json:"max_quantity"`
	Rating         float64 `json:"rating"`
	ReviewCount    int     `json:"review_count"`
	Spoilage       string  `json:"spoilage"`
	Purchasable    bool    `json:"purchasable"`
}

// productFromPayload maps the wire payload onto the internal model. The
// mapping is total: every payload field lands on exactly one model field.
func productFromPayload(p ProductPayload) models.Product {
	return models.Product{
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Unit:           p.Unit,
		Category:       p.Category,
		Location:       p.Location,
		SellerName:     p.SellerName,
		ImageURL:       p.ImageURL,
		Organic:        p.Organic,
		HarvestDate:    p.HarvestDate,
		ExpirationDate: p.ExpirationDate,
		MaxQuantity:    p.MaxQuantity,
	}
}

// productToResponse maps the internal model onto the wire shape, attaching
// the derived spoilage classification. Expired listings are flagged as not
// purchasable; catalog cards and the detail view both key off this.
func productToResponse(p models.Product, spoilage market.Spoilage) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Unit:           p.Unit,
		Category:       p.Category,
		Location:       p.Location,
		SellerID:       p.SellerID,
		SellerName:     p.SellerName,
		ImageURL:       p.ImageURL,
		Organic:        p.Organic,
		HarvestDate:    p.HarvestDate,
		ExpirationDate: p.ExpirationDate,
		MaxQuantity:    p.MaxQuantity,
		Rating:         p.Rating,
		ReviewCount:    p.ReviewCount,
		Spoilage:       string(spoilage),
		Purchasable:    spoilage != market.SpoilageExpired,
	}
}

// filterFromQuery maps catalog query parameters onto a filter configuration.
// Absent parameters keep their defaults: category "All", no query, both
// price bounds open, expired listings hidden.
func filterFromQuery(c *fiber.Ctx) market.Filter {
	f := market.DefaultFilter()
	if v := c.Query("category"); v != "" {
		f.Category = v
	}
	f.Query = c.Query("q")
	f.OrganicOnly = c.QueryBool("organic_only")
	f.ShowExpired = c.QueryBool("show_expired")
	if v := c.Query("min_price"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = min
		}
	}
	if v := c.Query("max_price"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = max
		}
	}
	return f
}
