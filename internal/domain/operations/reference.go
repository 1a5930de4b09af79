// internal/domain/operations/reference.go
package operations

import (
	"fmt"

	"github.com/your-org/stockmaster-backend/internal/domain/warehouse"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// nextReference allocates the next reference for a warehouse and operation
// type, formatted as {warehouseCode}/{operationType}/{0001}. The counter row
// is bumped with a single conditional upsert; the row lock it takes holds
// until the enclosing transaction commits, so two concurrent allocations for
// the same scope cannot observe the same value.
func nextReference(tx *gorm.DB, wh *warehouse.Warehouse, opType OperationType) (string, error) {
	seq := OperationSequence{
		WarehouseID:   wh.ID,
		OperationType: opType,
		NextValue:     1,
	}

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "warehouse_id"}, {Name: "operation_type"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"next_value": gorm.Expr("operation_sequences.next_value + 1"),
		}),
	}).Create(&seq).Error
	if err != nil {
		return "", fmt.Errorf("failed to bump reference sequence: %w", err)
	}

	// Re-read inside the same transaction to pick up the post-upsert value.
	if err := tx.Where("warehouse_id = ? AND operation_type = ?", wh.ID, opType).First(&seq).Error; err != nil {
		return "", fmt.Errorf("failed to read reference sequence: %w", err)
	}

	code := fmt.Sprintf("WH%d", wh.ID)
	if wh.Code != nil && *wh.Code != "" {
		code = *wh.Code
	}

	return fmt.Sprintf("%s/%s/%04d", code, opType, seq.NextValue), nil
}

// adjustmentReference formats the reference of a stock adjustment from its
// row ID
func adjustmentReference(id uint) string {
	return fmt.Sprintf("ADJ-%04d", id)
}
