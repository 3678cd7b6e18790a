package models

import "time"

// Review represents a standalone product review. Creating one recomputes the
// product's rating as the plain mean over all of its reviews.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductID string    `json:"product_id" gorm:"index;type:varchar(36)" validate:"required"`
	Author    string    `json:"author" validate:"required,max=100"`
	Rating    int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string    `json:"comment" validate:"omitempty,max=1000"`
	CreatedAt time.Time `json:"created_at"`
}
