package repositories

import (
	"thanhha/internal/models"
)

// ProductRepository is the data-access surface for the storefront catalog.
// GetAll returns products in a stable order so listings do not shuffle
// between reads.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
