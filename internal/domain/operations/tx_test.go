// internal/domain/operations/tx_test.go
package operations_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/stockmaster-backend/internal/domain/operations"
	"github.com/your-org/stockmaster-backend/internal/testutil"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestValidateReceiptSurfacesCommitFailure drives the validate transition
// over a mocked connection whose COMMIT fails. The caller must see the error
// instead of a receipt reported as validated while nothing persisted.
func TestValidateReceiptSurfacesCommitFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "receipts"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "reference", "warehouse_id", "supplier", "date", "notes", "validated", "created_at", "updated_at",
		}).AddRow(1, "MAIN/IN/0001", 1, "Acme", now, "", false, now, now))
	mock.ExpectQuery(`SELECT (.+) FROM "receipt_items"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "receipt_id", "product_id", "location_id", "quantity", "unit_price",
		}))
	mock.ExpectExec(`UPDATE "receipts"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(assert.AnError)

	svc := operations.NewService(db, testutil.NewTestConfig())

	_, err = svc.ValidateReceipt(1, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}
