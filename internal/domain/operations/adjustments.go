// internal/domain/operations/adjustments.go
package operations

import (
	"fmt"

	"github.com/your-org/stockmaster-backend/internal/domain/inventory"
	"github.com/your-org/stockmaster-backend/internal/domain/product"
	"github.com/your-org/stockmaster-backend/internal/domain/warehouse"
	"gorm.io/gorm"
)

// CreateAdjustmentRequest represents stock adjustment data. Adjustments carry
// one implicit line and are applied to the ledger at creation time.
type CreateAdjustmentRequest struct {
	ProductID       uint           `json:"product_id" binding:"required"`
	LocationID      uint           `json:"location_id" binding:"required"`
	CountedQuantity *float64       `json:"counted_quantity" binding:"required"`
	AdjustmentType  AdjustmentType `json:"adjustment_type"`
	Reason          string         `json:"reason"`
	Date            string         `json:"date"`
}

// CreateAdjustment records a counted quantity and immediately sets the stock
// row to it, logging the signed delta. Creation and stock mutation share one
// transaction.
func (s *Service) CreateAdjustment(req *CreateAdjustmentRequest, userID *uint) (*StockAdjustment, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	adjustmentType := req.AdjustmentType
	if adjustmentType == "" {
		adjustmentType = AdjustmentTypeCount
	}
	if !adjustmentType.IsValid() {
		return nil, fmt.Errorf("invalid adjustment type '%s'", adjustmentType)
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var prod product.Product
	if err := tx.First(&prod, req.ProductID).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found: id %d", req.ProductID)
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	var location warehouse.SubLocation
	if err := tx.First(&location, req.LocationID).Error; err != nil {
		tx.Rollback()
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("sub-location not found: id %d", req.LocationID)
		}
		return nil, fmt.Errorf("failed to load sub-location: %w", err)
	}

	adjustment := &StockAdjustment{
		ProductID:       req.ProductID,
		LocationID:      req.LocationID,
		CountedQuantity: *req.CountedQuantity,
		AdjustmentType:  adjustmentType,
		Reason:          req.Reason,
		Date:            date,
	}

	if err := tx.Create(adjustment).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create adjustment: %w", err)
	}

	adjustment.Reference = adjustmentReference(adjustment.ID)
	if err := tx.Model(adjustment).Update("reference", adjustment.Reference).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to assign reference: %w", err)
	}

	move := inventory.Move{Reference: adjustment.Reference, UserID: userID}
	if _, err := s.ledger.SetAbsolute(tx, move, req.ProductID, req.LocationID, *req.CountedQuantity); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return adjustment, nil
}

// GetAdjustment retrieves a stock adjustment
func (s *Service) GetAdjustment(id uint) (*StockAdjustment, error) {
	var adjustment StockAdjustment
	err := s.db.
		Preload("Product").
		Preload("Location").
		First(&adjustment, id).Error
	if err != nil {
		return nil, err
	}
	return &adjustment, nil
}

// GetAdjustments lists stock adjustments, newest first
func (s *Service) GetAdjustments() ([]StockAdjustment, error) {
	var adjustments []StockAdjustment
	err := s.db.
		Preload("Product").
		Preload("Location").
		Order("created_at DESC").
		Find(&adjustments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve adjustments: %w", err)
	}
	return adjustments, nil
}
