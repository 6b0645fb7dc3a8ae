package services

import (
	"thanhha/internal/models"
	"thanhha/internal/repositories"
)

// ProductFilter narrows a catalog listing. Zero values mean "no constraint";
// MaxPrice of 0 is treated as unbounded.
type ProductFilter struct {
	Category string
	MinPrice int64
	MaxPrice int64
}

// ProductService handles business logic related to the product catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// FilterProducts retrieves the products matching the filter, preserving
// catalog order. Price bounds follow the storefront's range chips: min is
// inclusive, max is exclusive.
func (s *ProductService) FilterProducts(filter ProductFilter) ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if p.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && p.Price >= filter.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}
