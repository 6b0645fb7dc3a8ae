package services_test

import (
	"fmt"
	"testing"

	"thanhha/internal/models"
	"thanhha/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var catalog = []models.Product{
	{ID: "1", Name: "Rượu Táo Mèo", Category: "Trái Cây Rừng", Price: 320000},
	{ID: "2", Name: "Rượu Ba Kích Tím", Category: "Hỗ Trợ Sức Khỏe", Price: 480000},
	{ID: "3", Name: "Rượu Đông Trùng Hạ Thảo", Category: "Dược Liệu Quý", Price: 550000},
	{ID: "4", Name: "Rượu Sâm Ngọc Linh", Category: "Sâm & Nấm", Price: 1250000},
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("GetAll").Return(catalog, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 4)
	assert.Equal(t, catalog, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_FilterProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// No constraints: everything, in catalog order.
	mockRepo.On("GetAll").Return(catalog, nil).Once()
	products, err := service.FilterProducts(services.ProductFilter{})
	assert.NoError(t, err)
	assert.Equal(t, catalog, products)

	// Category match.
	mockRepo.On("GetAll").Return(catalog, nil).Once()
	products, err = service.FilterProducts(services.ProductFilter{Category: "Sâm & Nấm"})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "4", products[0].ID)

	// Price range "500k - 1tr": min inclusive, max exclusive.
	mockRepo.On("GetAll").Return(catalog, nil).Once()
	products, err = service.FilterProducts(services.ProductFilter{MinPrice: 500000, MaxPrice: 1000000})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "3", products[0].ID)

	// Min price exactly at a product's price includes it.
	mockRepo.On("GetAll").Return(catalog, nil).Once()
	products, err = service.FilterProducts(services.ProductFilter{MinPrice: 1250000})
	assert.NoError(t, err)
	assert.Len(t, products, 1)

	// Nothing matches.
	mockRepo.On("GetAll").Return(catalog, nil).Once()
	products, err = service.FilterProducts(services.ProductFilter{Category: "Không Có"})
	assert.NoError(t, err)
	assert.Empty(t, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProduct := &catalog[0]

	// Test successful retrieval
	mockRepo.On("GetByID", "1").Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Test product not found
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99 not found")).Once()
	product, err = service.GetProductByID("99")
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newProduct := &models.Product{Name: "Rượu Nếp Cẩm", Category: "Trái Cây Rừng", Price: 250000}

	// Test successful creation
	mockRepo.On("Create", newProduct).Return(nil).Once()
	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test creation failure (e.g., database error)
	mockRepo.On("Create", newProduct).Return(fmt.Errorf("database error")).Once()
	err = service.CreateProduct(newProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	updatedProduct := &models.Product{ID: "1", Name: "Rượu Táo Mèo Thượng Hạng", Category: "Trái Cây Rừng", Price: 350000}

	mockRepo.On("Update", updatedProduct).Return(nil).Once()
	err := service.UpdateProduct(updatedProduct)
	assert.NoError(t, err)

	mockRepo.On("Update", mock.Anything).Return(fmt.Errorf("product with ID 99 not found for update")).Once()
	err = service.UpdateProduct(&models.Product{ID: "99", Name: "Không Tồn Tại", Category: "x", Price: 1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for update")
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	mockRepo.On("Delete", "1").Return(nil).Once()
	err := service.DeleteProduct("1")
	assert.NoError(t, err)

	mockRepo.On("Delete", "99").Return(fmt.Errorf("product with ID 99 not found for deletion")).Once()
	err = service.DeleteProduct("99")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found for deletion")
	mockRepo.AssertExpectations(t)
}
