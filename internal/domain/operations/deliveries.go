// internal/domain/operations/deliveries.go
package operations

import (
	"fmt"

	"github.com/your-org/stockmaster-backend/internal/domain/inventory"
)

// DeliveryItemRequest represents one line of a delivery
type DeliveryItemRequest struct {
	ProductID  uint    `json:"product_id" binding:"required"`
	LocationID uint    `json:"location_id" binding:"required"`
	Quantity   float64 `json:"quantity" binding:"required,gt=0"`
}

// CreateDeliveryRequest represents delivery creation data
type CreateDeliveryRequest struct {
	WarehouseID uint                  `json:"warehouse_id" binding:"required"`
	Customer    string                `json:"customer" binding:"required"`
	Date        string                `json:"date"`
	Notes       string                `json:"notes"`
	Items       []DeliveryItemRequest `json:"items"`
}

// UpdateDeliveryRequest represents a draft delivery update
type UpdateDeliveryRequest struct {
	Customer *string               `json:"customer"`
	Date     *string               `json:"date"`
	Notes    *string               `json:"notes"`
	Items    []DeliveryItemRequest `json:"items"`
}

// CreateDelivery creates a draft delivery with its line items
func (s *Service) CreateDelivery(req *CreateDeliveryRequest) (*Delivery, error) {
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

	delivery := &Delivery{
		WarehouseID: req.WarehouseID,
		Customer:    req.Customer,
		Date:        date,
		Notes:       req.Notes,
	}
	for _, item := range req.Items {
		delivery.Items = append(delivery.Items, DeliveryItem{
			ProductID:  item.ProductID,
			LocationID: item.LocationID,
			Quantity:   item.Quantity,
		})
	}

	if err := tx.Create(delivery).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create delivery: %w", err)
	}

	reference, err := nextReference(tx, wh, OperationTypeDelivery)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	delivery.Reference = reference
	if err := tx.Model(delivery).Update("reference", reference).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to assign reference: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return delivery, nil
}

// GetDelivery retrieves a delivery with its line items
func (s *Service) GetDelivery(id uint) (*Delivery, error) {
	var delivery Delivery
	err := s.db.
		Preload("Warehouse").
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Location").
		First(&delivery, id).Error
	if err != nil {
		return nil, err
	}
	return &delivery, nil
}

// GetDeliveries lists deliveries, newest first
func (s *Service) GetDeliveries() ([]Delivery, error) {
	var deliveries []Delivery
	if err := s.db.Preload("Warehouse").Order("created_at DESC").Find(&deliveries).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve deliveries: %w", err)
	}
	return deliveries, nil
}

// UpdateDelivery updates a draft delivery. Validated deliveries are immutable.
func (s *Service) UpdateDelivery(id uint, req *UpdateDeliveryRequest) (*Delivery, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var delivery Delivery
	if err := tx.First(&delivery, id).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if delivery.Validated {
		tx.Rollback()
		return nil, fmt.Errorf("%w: delivery %s", ErrDocumentLocked, delivery.Reference)
	}

	if req.Customer != nil {
		delivery.Customer = *req.Customer
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		delivery.Date = date
	}
	if req.Notes != nil {
		delivery.Notes = *req.Notes
	}

	if err := tx.Save(&delivery).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update delivery: %w", err)
	}

	if req.Items != nil {
		if err := tx.Where("delivery_id = ?", delivery.ID).Delete(&DeliveryItem{}).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to replace delivery items: %w", err)
		}
		for _, item := range req.Items {
			line := DeliveryItem{
				DeliveryID: delivery.ID,
				ProductID:  item.ProductID,
				LocationID: item.LocationID,
				Quantity:   item.Quantity,
			}
			if err := tx.Create(&line).Error; err != nil {
				tx.Rollback()
				return nil, fmt.Errorf("failed to replace delivery items: %w", err)
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return s.GetDelivery(delivery.ID)
}

// DeleteDelivery deletes a draft delivery and its items
func (s *Service) DeleteDelivery(id uint) error {
	var delivery Delivery
	if err := s.db.First(&delivery, id).Error; err != nil {
		return err
	}
	if delivery.Validated {
		return fmt.Errorf("%w: delivery %s", ErrDocumentLocked, delivery.Reference)
	}
	if err := s.db.Delete(&delivery).Error; err != nil {
		return fmt.Errorf("failed to delete delivery: %w", err)
	}
	return nil
}

// ValidateDelivery decreases stock for every line item and marks the delivery
// validated, all as one atomic unit. Insufficient stock on any line leaves
// every stock row untouched.
func (s *Service) ValidateDelivery(id uint, userID *uint) (*Delivery, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var delivery Delivery
	if err := tx.Preload("Items").First(&delivery, id).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if delivery.Validated {
		tx.Rollback()
		return nil, fmt.Errorf("%w: delivery %s", ErrAlreadyValidated, delivery.Reference)
	}

	move := inventory.Move{Reference: delivery.Reference, UserID: userID}
	for _, item := range delivery.Items {
		if err := s.ledger.Decrease(tx, move, item.ProductID, item.LocationID, item.Quantity); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	delivery.Validated = true
	if err := tx.Save(&delivery).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to mark delivery validated: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &delivery, nil
}
