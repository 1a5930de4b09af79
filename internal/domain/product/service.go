// internal/domain/product/service.go
package product

import (
	"fmt"
	"strings"

	"github.com/your-org/stockmaster-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles product catalog business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new product service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CreateProductRequest represents product creation data
type CreateProductRequest struct {
	SKU      string   `json:"sku" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	Category Category `json:"category" binding:"required"`
	Type     string   `json:"type"`
	Weight   float64  `json:"weight"`
}

// UpdateProductRequest represents product update data. The SKU is immutable
// and deliberately absent.
type UpdateProductRequest struct {
	Name     *string   `json:"name"`
	Category *Category `json:"category"`
	Type     *string   `json:"type"`
	Weight   *float64  `json:"weight"`
}

// CreateProduct creates a new product
func (s *Service) CreateProduct(req *CreateProductRequest) (*Product, error) {
	if !req.Category.IsValid() {
		return nil, fmt.Errorf("invalid category '%s'", req.Category)
	}

	sku := strings.TrimSpace(req.SKU)
	if sku == "" {
		return nil, fmt.Errorf("sku must not be empty")
	}

	// Check if SKU already exists
	var existing Product
	if err := s.db.Where("sku = ?", sku).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("product with sku '%s' already exists", sku)
	}

	product := &Product{
		SKU:      sku,
		Name:     req.Name,
		Category: req.Category,
		Type:     req.Type,
		Weight:   req.Weight,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *Service) GetProduct(id uint) (*Product, error) {
	var product Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProducts retrieves all products, optionally filtered by category
func (s *Service) GetProducts(category string) ([]Product, error) {
	var products []Product
	query := s.db.Order("name")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return products, nil
}

// UpdateProduct applies a partial update to a product
func (s *Service) UpdateProduct(id uint, req *UpdateProductRequest) (*Product, error) {
	var product Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		if !req.Category.IsValid() {
			return nil, fmt.Errorf("invalid category '%s'", *req.Category)
		}
		product.Category = *req.Category
	}
	if req.Type != nil {
		product.Type = *req.Type
	}
	if req.Weight != nil {
		product.Weight = *req.Weight
	}

	if err := s.db.Save(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &product, nil
}

// DeleteProduct soft-deletes a product
func (s *Service) DeleteProduct(id uint) error {
	result := s.db.Delete(&Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
