package models

import "gorm.io/gorm"

// User roles.
const (
	RoleBuyer    = "BUYER"
	RoleProducer = "PRODUCER"
)

// User represents a registered buyer or producer.
// Certifications and Preferences hold JSON-encoded string arrays.
type User struct {
	ID             string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username       string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Password       string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Name           string `json:"name" validate:"required,max=100"`
	Role           string `json:"role" validate:"required,oneof=BUYER PRODUCER"`
	Location       string `json:"location" validate:"required,max=100"`
	FarmName       string `json:"farm_name,omitempty" validate:"omitempty,max=100"`
	Certifications string `json:"certifications,omitempty"` // e.g. ["PDO","Organic"]
	Preferences    string `json:"preferences,omitempty"`    // e.g. ["Vegetables","Dairy"]
	gorm.Model     // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
