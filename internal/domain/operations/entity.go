// internal/domain/operations/entity.go
package operations

import (
	"time"

	"github.com/your-org/stockmaster-backend/internal/domain/product"
	"github.com/your-org/stockmaster-backend/internal/domain/warehouse"
)

// OperationType identifies the document family for reference generation
type OperationType string

const (
	OperationTypeReceipt  OperationType = "IN"
	OperationTypeDelivery OperationType = "OUT"
	OperationTypeTransfer OperationType = "INT"
)

// AdjustmentType classifies why a stock adjustment was made
type AdjustmentType string

const (
	AdjustmentTypeCount  AdjustmentType = "COUNT"  // Physical count
	AdjustmentTypeDamage AdjustmentType = "DAMAGE" // Damage/Loss
	AdjustmentTypeGain   AdjustmentType = "GAIN"   // Gain/Found
	AdjustmentTypeOther  AdjustmentType = "OTHER"
)

// IsValid reports whether the adjustment type is one of the known values
func (a AdjustmentType) IsValid() bool {
	switch a {
	case AdjustmentTypeCount, AdjustmentTypeDamage, AdjustmentTypeGain, AdjustmentTypeOther:
		return true
	}
	return false
}

// Receipt is an inbound operation document. It sits in draft until validated;
// validation applies every line item to the stock ledger and is one-way.
type Receipt struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Reference   string    `gorm:"uniqueIndex;size:50" json:"reference"`
	WarehouseID uint      `gorm:"not null;index" json:"warehouse_id"`
	Supplier    string    `gorm:"not null;size:200" json:"supplier"`
	Date        time.Time `gorm:"not null" json:"date"`
	Notes       string    `gorm:"type:text" json:"notes"`
	Validated   bool      `gorm:"default:false" json:"validated"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Warehouse warehouse.Warehouse `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
	Items     []ReceiptItem       `gorm:"foreignKey:ReceiptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items,omitempty"`
}

// ReceiptItem is one product/location/quantity line of a receipt. Items have
// no identity outside their parent document.
type ReceiptItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	ReceiptID  uint    `gorm:"not null;index" json:"receipt_id"`
	ProductID  uint    `gorm:"not null;index" json:"product_id"`
	LocationID uint    `gorm:"not null;index" json:"location_id"`
	Quantity   float64 `gorm:"not null" json:"quantity"`
	UnitPrice  *int64  `json:"unit_price"` // In cents

	// Relationships
	Product  product.Product       `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Location warehouse.SubLocation `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

// Delivery is an outbound operation document
type Delivery struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Reference   string    `gorm:"uniqueIndex;size:50" json:"reference"`
	WarehouseID uint      `gorm:"not null;index" json:"warehouse_id"`
	Customer    string    `gorm:"not null;size:200" json:"customer"`
	Date        time.Time `gorm:"not null" json:"date"`
	Notes       string    `gorm:"type:text" json:"notes"`
	Validated   bool      `gorm:"default:false" json:"validated"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Warehouse warehouse.Warehouse `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
	Items     []DeliveryItem      `gorm:"foreignKey:DeliveryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items,omitempty"`
}

// DeliveryItem is one product/location/quantity line of a delivery
type DeliveryItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	DeliveryID uint    `gorm:"not null;index" json:"delivery_id"`
	ProductID  uint    `gorm:"not null;index" json:"product_id"`
	LocationID uint    `gorm:"not null;index" json:"location_id"`
	Quantity   float64 `gorm:"not null" json:"quantity"`

	// Relationships
	Product  product.Product       `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Location warehouse.SubLocation `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

// InternalTransfer moves stock between locations, possibly across warehouses.
// References are scoped to the source warehouse.
type InternalTransfer struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Reference       string    `gorm:"uniqueIndex;size:50" json:"reference"`
	FromWarehouseID uint      `gorm:"not null;index" json:"from_warehouse_id"`
	ToWarehouseID   uint      `gorm:"not null;index" json:"to_warehouse_id"`
	Date            time.Time `gorm:"not null" json:"date"`
	Notes           string    `gorm:"type:text" json:"notes"`
	Validated       bool      `gorm:"default:false" json:"validated"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relationships
	FromWarehouse warehouse.Warehouse `gorm:"foreignKey:FromWarehouseID" json:"from_warehouse,omitempty"`
	ToWarehouse   warehouse.Warehouse `gorm:"foreignKey:ToWarehouseID" json:"to_warehouse,omitempty"`
	Items         []TransferItem      `gorm:"foreignKey:TransferID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items,omitempty"`
}

// TransferItem is one product moving between two locations
type TransferItem struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	TransferID     uint    `gorm:"not null;index" json:"transfer_id"`
	ProductID      uint    `gorm:"not null;index" json:"product_id"`
	FromLocationID uint    `gorm:"not null;index" json:"from_location_id"`
	ToLocationID   uint    `gorm:"not null;index" json:"to_location_id"`
	Quantity       float64 `gorm:"not null" json:"quantity"`

	// Relationships
	Product      product.Product       `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	FromLocation warehouse.SubLocation `gorm:"foreignKey:FromLocationID" json:"from_location,omitempty"`
	ToLocation   warehouse.SubLocation `gorm:"foreignKey:ToLocationID" json:"to_location,omitempty"`
}

// StockAdjustment corrects a stock row to a counted quantity. It carries one
// implicit line and is applied to the ledger at creation time, not via a
// separate validate call.
type StockAdjustment struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Reference       string         `gorm:"uniqueIndex;size:50" json:"reference"`
	ProductID       uint           `gorm:"not null;index" json:"product_id"`
	LocationID      uint           `gorm:"not null;index" json:"location_id"`
	CountedQuantity float64        `gorm:"not null" json:"counted_quantity"`
	AdjustmentType  AdjustmentType `gorm:"not null;size:20;default:'COUNT'" json:"adjustment_type"`
	Reason          string         `gorm:"type:text" json:"reason"`
	Date            time.Time      `gorm:"not null" json:"date"`
	CreatedAt       time.Time      `json:"created_at"`

	// Relationships
	Product  product.Product       `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Location warehouse.SubLocation `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

// OperationSequence is the per-(warehouse, operation type) counter behind
// reference generation. It is bumped with a conditional upsert inside the
// document-creation transaction, which serializes concurrent allocations.
type OperationSequence struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	WarehouseID   uint          `gorm:"not null;uniqueIndex:idx_operation_sequences_scope" json:"warehouse_id"`
	OperationType OperationType `gorm:"not null;size:10;uniqueIndex:idx_operation_sequences_scope" json:"operation_type"`
	NextValue     uint          `gorm:"not null;default:0" json:"next_value"`
}
