// internal/domain/operations/service.go
package operations

import (
	"fmt"
	"time"

	"github.com/your-org/stockmaster-backend/internal/config"
	"github.com/your-org/stockmaster-backend/internal/domain/inventory"
	"github.com/your-org/stockmaster-backend/internal/domain/warehouse"
	"gorm.io/gorm"
)

// Service handles operation documents: their draft lifecycle, reference
// allocation and the one-way validate transition that applies line items to
// the stock ledger.
type Service struct {
	db     *gorm.DB
	config *config.Config
	ledger *inventory.Service
}

// NewService creates a new operations service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
		ledger: inventory.NewService(db, cfg),
	}
}

// ReceiptItemRequest represents one line of a receipt
type ReceiptItemRequest struct {
	ProductID  uint    `json:"product_id" binding:"required"`
	LocationID uint    `json:"location_id" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice  *int64  `json:"unit_price"` // In cents
}

// CreateReceiptRequest represents receipt creation data
type CreateReceiptRequest struct {
	WarehouseID uint                 `json:"warehouse_id" binding:"required"`
	Supplier    string               `json:"supplier" binding:"required"`
	Date        string               `json:"date"` // YYYY-MM-DD, defaults to today
	Notes       string               `json:"notes"`
	Items       []ReceiptItemRequest `json:"items"`
}

// UpdateReceiptRequest represents a draft receipt update. A nil Items slice
// leaves the existing lines untouched.
type UpdateReceiptRequest struct {
	Supplier *string              `json:"supplier"`
	Date     *string              `json:"date"`
	Notes    *string              `json:"notes"`
	Items    []ReceiptItemRequest `json:"items"`
}

// parseDate parses a YYYY-MM-DD document date, defaulting to today
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s', expected YYYY-MM-DD", value)
	}
	return date, nil
}

// loadWarehouse fetches a warehouse inside the given transaction
func loadWarehouse(tx *gorm.DB, id uint) (*warehouse.Warehouse, error) {
	var wh warehouse.Warehouse
	if err := tx.First(&wh, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: id %d", inventory.ErrWarehouseNotFound, id)
		}
		return nil, fmt.Errorf("failed to load warehouse: %w", err)
	}
	return &wh, nil
}

// RECEIPTS

// CreateReceipt creates a draft receipt with its line items and allocates its
// reference within the same transaction
func (s *Service) CreateReceipt(req *CreateReceiptRequest) (*Receipt, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	wh, err := loadWarehouse(tx, req.WarehouseID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	receipt := &Receipt{
		WarehouseID: req.WarehouseID,
		Supplier:    req.Supplier,
		Date:        date,
		Notes:       req.Notes,
	}
	for _, item := range req.Items {
		receipt.Items = append(receipt.Items, ReceiptItem{
			ProductID:  item.ProductID,
			LocationID: item.LocationID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}

	if err := tx.Create(receipt).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create receipt: %w", err)
	}

	reference, err := nextReference(tx, wh, OperationTypeReceipt)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	receipt.Reference = reference
	if err := tx.Model(receipt).Update("reference", reference).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to assign reference: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return receipt, nil
}

// GetReceipt retrieves a receipt with its line items
func (s *Service) GetReceipt(id uint) (*Receipt, error) {
	var receipt Receipt
	err := s.db.
		Preload("Warehouse").
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Location").
		First(&receipt, id).Error
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// GetReceipts lists receipts, newest first
func (s *Service) GetReceipts() ([]Receipt, error) {
	var receipts []Receipt
	if err := s.db.Preload("Warehouse").Order("created_at DESC").Find(&receipts).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve receipts: %w", err)
	}
	return receipts, nil
}

// UpdateReceipt updates a draft receipt. Validated receipts are immutable.
func (s *Service) UpdateReceipt(id uint, req *UpdateReceiptRequest) (*Receipt, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var receipt Receipt
	if err := tx.First(&receipt, id).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if receipt.Validated {
		tx.Rollback()
		return nil, fmt.Errorf("%w: receipt %s", ErrDocumentLocked, receipt.Reference)
	}

	if req.Supplier != nil {
		receipt.Supplier = *req.Supplier
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		receipt.Date = date
	}
	if req.Notes != nil {
		receipt.Notes = *req.Notes
	}

	if err := tx.Save(&receipt).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update receipt: %w", err)
	}

	if req.Items != nil {
		if err := tx.Where("receipt_id = ?", receipt.ID).Delete(&ReceiptItem{}).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to replace receipt items: %w", err)
		}
		for _, item := range req.Items {
			line := ReceiptItem{
				ReceiptID:  receipt.ID,
				ProductID:  item.ProductID,
				LocationID: item.LocationID,
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPrice,
			}
			if err := tx.Create(&line).Error; err != nil {
				tx.Rollback()
				return nil, fmt.Errorf("failed to replace receipt items: %w", err)
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return s.GetReceipt(receipt.ID)
}

// DeleteReceipt deletes a draft receipt and its items
func (s *Service) DeleteReceipt(id uint) error {
	var receipt Receipt
	if err := s.db.First(&receipt, id).Error; err != nil {
		return err
	}
	if receipt.Validated {
		return fmt.Errorf("%w: receipt %s", ErrDocumentLocked, receipt.Reference)
	}
	if err := s.db.Delete(&receipt).Error; err != nil {
		return fmt.Errorf("failed to delete receipt: %w", err)
	}
	return nil
}

// ValidateReceipt applies every line item to the stock ledger and marks the
// receipt validated, all as one atomic unit. A failing line rolls back every
// previously applied one.
func (s *Service) ValidateReceipt(id uint, userID *uint) (*Receipt, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var receipt Receipt
	if err := tx.Preload("Items").First(&receipt, id).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if receipt.Validated {
		tx.Rollback()
		return nil, fmt.Errorf("%w: receipt %s", ErrAlreadyValidated, receipt.Reference)
	}

	move := inventory.Move{Reference: receipt.Reference, UserID: userID}
	for _, item := range receipt.Items {
		if err := s.ledger.Increase(tx, move, item.ProductID, item.LocationID, item.Quantity); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	receipt.Validated = true
	if err := tx.Save(&receipt).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to mark receipt validated: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &receipt, nil
}
