// internal/domain/inventory/ledger.go
package inventory

import (
	"errors"
	"fmt"
	"time"

	"github.com/your-org/stockmaster-backend/internal/config"
	"gorm.io/gorm"
)

// Service is the stock ledger. It owns every write to the stocks table and
// appends exactly one move-history row per successful mutation. All primitives
// run inside the transaction handed to them so a document validation can apply
// several line items as one atomic unit.
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new inventory service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// DB exposes the underlying handle for callers that need to open the
// enclosing transaction themselves.
func (s *Service) DB() *gorm.DB {
	return s.db
}

// Move carries the audit context of a mutation: the operation reference it
// belongs to and the acting user.
type Move struct {
	Reference string
	UserID    *uint
}

// Increase adds qty to the stock of a product at a location, creating the
// stock row on demand. Records one IN movement.
func (s *Service) Increase(tx *gorm.DB, move Move, productID, locationID uint, qty float64) error {
	if qty <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidQuantity, qty)
	}

	if err := s.applyIncrease(tx, productID, locationID, qty); err != nil {
		return err
	}

	return s.recordMove(tx, move, MoveTypeIn, productID, nil, &locationID, qty)
}

// Decrease removes qty from the stock of a product at a location. Fails with
// ErrStockNotFound if the row is absent and ErrInsufficientStock if the row
// holds less than qty. Records one OUT movement.
func (s *Service) Decrease(tx *gorm.DB, move Move, productID, locationID uint, qty float64) error {
	if qty <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidQuantity, qty)
	}

	if err := s.applyDecrease(tx, productID, locationID, qty); err != nil {
		return err
	}

	return s.recordMove(tx, move, MoveTypeOut, productID, &locationID, nil, qty)
}

// Transfer moves qty from one location to another as a single unit. If the
// decrease fails the increase never happens. Records one INTERNAL movement.
func (s *Service) Transfer(tx *gorm.DB, move Move, productID, fromLocationID, toLocationID uint, qty float64) error {
	if qty <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidQuantity, qty)
	}
	if fromLocationID == toLocationID {
		return fmt.Errorf("cannot transfer stock onto the same location %d", fromLocationID)
	}

	if err := s.applyDecrease(tx, productID, fromLocationID, qty); err != nil {
		return err
	}
	if err := s.applyIncrease(tx, productID, toLocationID, qty); err != nil {
		return err
	}

	return s.recordMove(tx, move, MoveTypeInternal, productID, &fromLocationID, &toLocationID, qty)
}

// SetAbsolute sets the stock of a product at a location to countedQty,
// creating the row on demand, and returns the signed delta that was applied.
// Records one ADJUSTMENT movement carrying the delta.
func (s *Service) SetAbsolute(tx *gorm.DB, move Move, productID, locationID uint, countedQty float64) (float64, error) {
	if countedQty < 0 {
		return 0, fmt.Errorf("%w: counted quantity %v is negative", ErrInvalidQuantity, countedQty)
	}

	stock, err := s.fetchOrCreate(tx, productID, locationID)
	if err != nil {
		return 0, err
	}

	delta := countedQty - stock.Quantity

	// Optimistic guard: only apply against the quantity we just read. A zero
	// row count means another mutation slipped in between read and write.
	result := tx.Model(&Stock{}).
		Where("id = ? AND quantity = ?", stock.ID, stock.Quantity).
		Updates(map[string]interface{}{
			"quantity":   countedQty,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to adjust stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, fmt.Errorf("%w: stock %d changed during adjustment", ErrConcurrencyConflict, stock.ID)
	}

	if err := s.recordMove(tx, move, MoveTypeAdjustment, productID, nil, &locationID, delta); err != nil {
		return 0, err
	}

	return delta, nil
}

// applyIncrease mutates the stock row without recording history
func (s *Service) applyIncrease(tx *gorm.DB, productID, locationID uint, qty float64) error {
	stock, err := s.fetchOrCreate(tx, productID, locationID)
	if err != nil {
		return err
	}

	result := tx.Model(&Stock{}).
		Where("id = ?", stock.ID).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", qty),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to increase stock: %w", result.Error)
	}
	return nil
}

// applyDecrease mutates the stock row without recording history. The quantity
// guard in the WHERE clause makes the read-check-write a single statement, so
// two racing decrements can never both succeed past the available quantity.
func (s *Service) applyDecrease(tx *gorm.DB, productID, locationID uint, qty float64) error {
	result := tx.Model(&Stock{}).
		Where("product_id = ? AND sub_location_id = ? AND quantity >= ?", productID, locationID, qty).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity - ?", qty),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to decrease stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing row from one that is simply too small.
		var stock Stock
		err := tx.Where("product_id = ? AND sub_location_id = ?", productID, locationID).First(&stock).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w for product %d at location %d", ErrStockNotFound, productID, locationID)
		}
		if err != nil {
			return fmt.Errorf("failed to check stock: %w", err)
		}
		return fmt.Errorf("%w for product %d at location %d: available %v, requested %v",
			ErrInsufficientStock, productID, locationID, stock.Quantity, qty)
	}
	return nil
}

// fetchOrCreate returns the stock row for a product/location pair, creating it
// with quantity 0 when absent
func (s *Service) fetchOrCreate(tx *gorm.DB, productID, locationID uint) (*Stock, error) {
	var stock Stock
	err := tx.Where("product_id = ? AND sub_location_id = ?", productID, locationID).First(&stock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stock = Stock{
			ProductID:     productID,
			SubLocationID: locationID,
			Quantity:      0,
		}
		if createErr := tx.Create(&stock).Error; createErr != nil {
			// A concurrent inbound mutation may have created the row first;
			// the unique (product, location) index turns that into an error.
			return nil, fmt.Errorf("%w: %v", ErrConcurrencyConflict, createErr)
		}
		return &stock, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stock: %w", err)
	}
	return &stock, nil
}

// recordMove appends the audit entry for a mutation
func (s *Service) recordMove(tx *gorm.DB, move Move, moveType MoveType, productID uint, fromLocationID, toLocationID *uint, qty float64) error {
	history := &MoveHistory{
		OperationReference: move.Reference,
		ProductID:          productID,
		FromLocationID:     fromLocationID,
		ToLocationID:       toLocationID,
		Quantity:           qty,
		MoveType:           moveType,
		Date:               time.Now().UTC(),
		UserID:             move.UserID,
	}
	if err := tx.Create(history).Error; err != nil {
		return fmt.Errorf("failed to record movement: %w", err)
	}
	return nil
}
