// internal/domain/inventory/entity.go
package inventory

import (
	"time"

	"github.com/your-org/stockmaster-backend/internal/domain/product"
	"github.com/your-org/stockmaster-backend/internal/domain/warehouse"
)

// MoveType represents the kind of stock movement
type MoveType string

const (
	MoveTypeIn         MoveType = "IN"         // Receipt into a location
	MoveTypeOut        MoveType = "OUT"        // Delivery out of a location
	MoveTypeInternal   MoveType = "INTERNAL"   // Location-to-location transfer
	MoveTypeAdjustment MoveType = "ADJUSTMENT" // Counted-quantity correction
)

// Stock holds the quantity of one product at one sub-location. Rows are
// created on demand by inbound mutations and are only ever written through
// the ledger primitives.
type Stock struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ProductID     uint      `gorm:"not null;index;uniqueIndex:idx_stocks_product_location" json:"product_id"`
	SubLocationID uint      `gorm:"not null;index;uniqueIndex:idx_stocks_product_location" json:"sub_location_id"`
	Quantity      float64   `gorm:"not null;default:0" json:"quantity"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	Product     product.Product       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE;" json:"product,omitempty"`
	SubLocation warehouse.SubLocation `gorm:"foreignKey:SubLocationID;constraint:OnDelete:CASCADE;" json:"sub_location,omitempty"`
}

// TableName overrides the table name for Stock
func (Stock) TableName() string {
	return "stocks"
}

// MoveHistory is the append-only audit record of a single stock quantity
// change. Rows are never updated or deleted; location references are nulled
// if a location is removed so the historical record survives.
type MoveHistory struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	OperationReference string    `gorm:"not null;size:50;index" json:"operation_reference"`
	ProductID          uint      `gorm:"not null;index" json:"product_id"`
	FromLocationID     *uint     `gorm:"index" json:"from_location_id"` // nil for inbound
	ToLocationID       *uint     `gorm:"index" json:"to_location_id"`   // nil for outbound
	Quantity           float64   `gorm:"not null" json:"quantity"`
	MoveType           MoveType  `gorm:"not null;size:20;index" json:"move_type"`
	Date               time.Time `gorm:"not null" json:"date"`
	UserID             *uint     `gorm:"index" json:"user_id"`

	// Relationships
	Product      product.Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	FromLocation *warehouse.SubLocation `gorm:"foreignKey:FromLocationID;constraint:OnDelete:SET NULL;" json:"from_location,omitempty"`
	ToLocation   *warehouse.SubLocation `gorm:"foreignKey:ToLocationID;constraint:OnDelete:SET NULL;" json:"to_location,omitempty"`
}

// TableName overrides the table name for MoveHistory
func (MoveHistory) TableName() string {
	return "move_histories"
}
