// internal/domain/product/entity.go
package product

import (
	"time"

	"gorm.io/gorm"
)

// Category represents the product category
type Category string

const (
	CategoryRawMaterial  Category = "RAW"
	CategoryFinishedGood Category = "FIN"
	CategoryPart         Category = "PART"
)

// IsValid reports whether the category is one of the known values
func (c Category) IsValid() bool {
	switch c {
	case CategoryRawMaterial, CategoryFinishedGood, CategoryPart:
		return true
	}
	return false
}

// Product represents the product entity. The SKU is the immutable identity key.
type Product struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	SKU       string         `gorm:"uniqueIndex;not null;size:100" json:"sku"`
	Name      string         `gorm:"not null;size:200" json:"name"`
	Category  Category       `gorm:"not null;size:10" json:"category"`
	Type      string         `gorm:"size:100" json:"type"`
	Weight    float64        `json:"weight"` // Weight in kilograms
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name for Product
func (Product) TableName() string {
	return "products"
}
