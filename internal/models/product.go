package models

import "gorm.io/gorm"

// Product represents a product in the storefront catalog.
// Prices are whole VND. The catalog is read-only to the cart and checkout.
type Product struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" validate:"required,min=3,max=100"`
	Category    string `json:"category" validate:"required,max=100"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	Image       string `json:"image" validate:"omitempty,url"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Origin      string `json:"origin,omitempty" validate:"omitempty,max=100"`
	Volume      string `json:"volume,omitempty" validate:"omitempty,max=50"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
