// internal/domain/operations/transfers.go
package operations

import (
	"fmt"

	"github.com/your-org/stockmaster-backend/internal/domain/inventory"
)

// TransferItemRequest represents one line of an internal transfer
type TransferItemRequest struct {
	ProductID      uint    `json:"product_id" binding:"required"`
	FromLocationID uint    `json:"from_location_id" binding:"required"`
	ToLocationID   uint    `json:"to_location_id" binding:"required"`
	Quantity       float64 `json:"quantity" binding:"required,gt=0"`
}

// CreateTransferRequest represents internal transfer creation data
type CreateTransferRequest struct {
	FromWarehouseID uint                  `json:"from_warehouse_id" binding:"required"`
	ToWarehouseID   uint                  `json:"to_warehouse_id" binding:"required"`
	Date            string                `json:"date"`
	Notes           string                `json:"notes"`
	Items           []TransferItemRequest `json:"items"`
}

// UpdateTransferRequest represents a draft transfer update
type UpdateTransferRequest struct {
	Date  *string               `json:"date"`
	Notes *string               `json:"notes"`
	Items []TransferItemRequest `json:"items"`
}

// CreateTransfer creates a draft internal transfer. The reference is scoped
// to the source warehouse.
func (s *Service) CreateTransfer(req *CreateTransferRequest) (*InternalTransfer, error) {
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

	fromWh, err := loadWarehouse(tx, req.FromWarehouseID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if _, err := loadWarehouse(tx, req.ToWarehouseID); err != nil {
		tx.Rollback()
		return nil, err
	}

	transfer := &InternalTransfer{
		FromWarehouseID: req.FromWarehouseID,
		ToWarehouseID:   req.ToWarehouseID,
		Date:            date,
		Notes:           req.Notes,
	}
	for _, item := range req.Items {
		transfer.Items = append(transfer.Items, TransferItem{
			ProductID:      item.ProductID,
			FromLocationID: item.FromLocationID,
			ToLocationID:   item.ToLocationID,
			Quantity:       item.Quantity,
		})
	}

	if err := tx.Create(transfer).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	reference, err := nextReference(tx, fromWh, OperationTypeTransfer)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	transfer.Reference = reference
	if err := tx.Model(transfer).Update("reference", reference).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to assign reference: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return transfer, nil
}

// GetTransfer retrieves a transfer with its line items
func (s *Service) GetTransfer(id uint) (*InternalTransfer, error) {
	var transfer InternalTransfer
	err := s.db.
		Preload("FromWarehouse").
		Preload("ToWarehouse").
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.FromLocation").
		Preload("Items.ToLocation").
		First(&transfer, id).Error
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}

// GetTransfers lists transfers, newest first
func (s *Service) GetTransfers() ([]InternalTransfer, error) {
	var transfers []InternalTransfer
	err := s.db.
		Preload("FromWarehouse").
		Preload("ToWarehouse").
		Order("created_at DESC").
		Find(&transfers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve transfers: %w", err)
	}
	return transfers, nil
}

// UpdateTransfer updates a draft transfer. Validated transfers are immutable.
func (s *Service) UpdateTransfer(id uint, req *UpdateTransferRequest) (*InternalTransfer, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var transfer InternalTransfer
	if err := tx.First(&transfer, id).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if transfer.Validated {
		tx.Rollback()
		return nil, fmt.Errorf("%w: transfer %s", ErrDocumentLocked, transfer.Reference)
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		transfer.Date = date
	}
	if req.Notes != nil {
		transfer.Notes = *req.Notes
	}

	if err := tx.Save(&transfer).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update transfer: %w", err)
	}

	if req.Items != nil {
		if err := tx.Where("transfer_id = ?", transfer.ID).Delete(&TransferItem{}).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to replace transfer items: %w", err)
		}
		for _, item := range req.Items {
			line := TransferItem{
				TransferID:     transfer.ID,
				ProductID:      item.ProductID,
				FromLocationID: item.FromLocationID,
				ToLocationID:   item.ToLocationID,
				Quantity:       item.Quantity,
			}
			if err := tx.Create(&line).Error; err != nil {
				tx.Rollback()
				return nil, fmt.Errorf("failed to replace transfer items: %w", err)
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return s.GetTransfer(transfer.ID)
}

// DeleteTransfer deletes a draft transfer and its items
func (s *Service) DeleteTransfer(id uint) error {
	var transfer InternalTransfer
	if err := s.db.First(&transfer, id).Error; err != nil {
		return err
	}
	if transfer.Validated {
		return fmt.Errorf("%w: transfer %s", ErrDocumentLocked, transfer.Reference)
	}
	if err := s.db.Delete(&transfer).Error; err != nil {
		return fmt.Errorf("failed to delete transfer: %w", err)
	}
	return nil
}

// ValidateTransfer moves stock for every line item and marks the transfer
// validated. The whole document applies as one atomic unit; a failing line
// rolls back every previously moved one.
func (s *Service) ValidateTransfer(id uint, userID *uint) (*InternalTransfer, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var transfer InternalTransfer
	if err := tx.Preload("Items").First(&transfer, id).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if transfer.Validated {
		tx.Rollback()
		return nil, fmt.Errorf("%w: transfer %s", ErrAlreadyValidated, transfer.Reference)
	}

	move := inventory.Move{Reference: transfer.Reference, UserID: userID}
	for _, item := range transfer.Items {
		if err := s.ledger.Transfer(tx, move, item.ProductID, item.FromLocationID, item.ToLocationID, item.Quantity); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	transfer.Validated = true
	if err := tx.Save(&transfer).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to mark transfer validated: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &transfer, nil
}
