package models

import "gorm.io/gorm"

// Product represents a producer's listing in the marketplace.
// Harvest and expiration dates use the YYYY-MM-DD wire format; an empty
// expiration date means the listing has no declared shelf life.
type Product struct {
	ID             string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name           string  `json:"name" gorm:"index" validate:"required,min=2,max=100"`
	Description    string  `json:"description" validate:"omitempty,max=1000"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	Unit           string  `json:"unit" validate:"required,max=30"` // e.g. "kg", "bunch", "piece"
	Category       string  `json:"category" gorm:"index" validate:"required,max=50"`
	Location       string  `json:"location" validate:"required,max=100"`
	SellerID       string  `json:"seller_id" gorm:"index;type:varchar(36)"`
	SellerName     string  `json:"seller_name" gorm:"index" validate:"required,max=100"`
	ImageURL       string  `json:"image_url" validate:"omitempty,max=500"`
	Organic        bool    `json:"organic" gorm:"index"`
	HarvestDate    string  `json:"harvest_date" validate:"required,datetime=2006-01-02"`
	ExpirationDate string  `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
	MaxQuantity    int     `json:"max_quantity" validate:"gte=0"`
	Rating         float64 `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount    int     `json:"review_count" validate:"gte=0"`
	gorm.Model     // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
