// internal/domain/inventory/ledger_test.go
package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/stockmaster-backend/internal/domain/inventory"
	"github.com/your-org/stockmaster-backend/internal/domain/product"
	"github.com/your-org/stockmaster-backend/internal/domain/warehouse"
	"github.com/your-org/stockmaster-backend/internal/testutil"
	"gorm.io/gorm"
)

type ledgerFixture struct {
	db      *gorm.DB
	ledger  *inventory.Service
	product product.Product
	locA    warehouse.SubLocation
	locB    warehouse.SubLocation
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	cfg := testutil.NewTestConfig()

	prod := product.Product{SKU: "RAW-001", Name: "Steel Rod", Category: product.CategoryRawMaterial}
	require.NoError(t, db.Create(&prod).Error)

	wh := warehouse.Warehouse{Name: "Main", Code: testutil.StringPtr("MAIN"), IsActive: true}
	require.NoError(t, db.Create(&wh).Error)

	locA := warehouse.SubLocation{WarehouseID: wh.ID, Aisle: "A1", Rack: "R1", Bin: "B1"}
	require.NoError(t, db.Create(&locA).Error)
	locB := warehouse.SubLocation{WarehouseID: wh.ID, Aisle: "A2", Rack: "R1", Bin: "B1"}
	require.NoError(t, db.Create(&locB).Error)

	return &ledgerFixture{
		db:      db,
		ledger:  inventory.NewService(db, cfg),
		product: prod,
		locA:    locA,
		locB:    locB,
	}
}

func (f *ledgerFixture) quantity(t *testing.T, locationID uint) float64 {
	t.Helper()
	var stock inventory.Stock
	err := f.db.Where("product_id = ? AND sub_location_id = ?", f.product.ID, locationID).First(&stock).Error
	require.NoError(t, err)
	return stock.Quantity
}

func (f *ledgerFixture) moves(t *testing.T) []inventory.MoveHistory {
	t.Helper()
	var moves []inventory.MoveHistory
	require.NoError(t, f.db.Order("id").Find(&moves).Error)
	return moves
}

func TestIncreaseCreatesRowOnDemand(t *testing.T) {
	f := newLedgerFixture(t)
	move := inventory.Move{Reference: "MAIN/IN/0001"}

	err := f.ledger.Increase(f.db, move, f.product.ID, f.locA.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, float64(10), f.quantity(t, f.locA.ID))

	err = f.ledger.Increase(f.db, move, f.product.ID, f.locA.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, float64(15), f.quantity(t, f.locA.ID))

	moves := f.moves(t)
	require.Len(t, moves, 2)
	for _, m := range moves {
		assert.Equal(t, inventory.MoveTypeIn, m.MoveType)
		assert.Nil(t, m.FromLocationID)
		require.NotNil(t, m.ToLocationID)
		assert.Equal(t, f.locA.ID, *m.ToLocationID)
		assert.Equal(t, "MAIN/IN/0001", m.OperationReference)
	}
}

func TestIncreaseRejectsNonPositiveQuantity(t *testing.T) {
	f := newLedgerFixture(t)
	move := inventory.Move{Reference: "MAIN/IN/0001"}

	err := f.ledger.Increase(f.db, move, f.product.ID, f.locA.ID, 0)
	assert.ErrorIs(t, err, inventory.ErrInvalidQuantity)

	err = f.ledger.Increase(f.db, move, f.product.ID, f.locA.ID, -3)
	assert.ErrorIs(t, err, inventory.ErrInvalidQuantity)

	assert.Empty(t, f.moves(t))
}

func TestDecreaseInsufficientStockLeavesQuantityUntouched(t *testing.T) {
	f := newLedgerFixture(t)
	move := inventory.Move{Reference: "MAIN/OUT/0001"}

	require.NoError(t, f.ledger.Increase(f.db, inventory.Move{Reference: "MAIN/IN/0001"}, f.product.ID, f.locA.ID, 10))

	err := f.ledger.Decrease(f.db, move, f.product.ID, f.locA.ID, 15)
	assert.ErrorIs(t, err, inventory.ErrInsufficientStock)
	assert.Equal(t, float64(10), f.quantity(t, f.locA.ID))

	// Only the inbound movement was recorded.
	moves := f.moves(t)
	require.Len(t, moves, 1)
	assert.Equal(t, inventory.MoveTypeIn, moves[0].MoveType)
}

func TestDecreaseMissingRowReportsStockNotFound(t *testing.T) {
	f := newLedgerFixture(t)

	err := f.ledger.Decrease(f.db, inventory.Move{Reference: "MAIN/OUT/0001"}, f.product.ID, f.locA.ID, 1)
	assert.ErrorIs(t, err, inventory.ErrStockNotFound)
}

func TestDecreaseToExactlyZero(t *testing.T) {
	f := newLedgerFixture(t)

	require.NoError(t, f.ledger.Increase(f.db, inventory.Move{Reference: "MAIN/IN/0001"}, f.product.ID, f.locA.ID, 10))
	require.NoError(t, f.ledger.Decrease(f.db, inventory.Move{Reference: "MAIN/OUT/0001"}, f.product.ID, f.locA.ID, 10))

	assert.Equal(t, float64(0), f.quantity(t, f.locA.ID))

	moves := f.moves(t)
	require.Len(t, moves, 2)
	out := moves[1]
	assert.Equal(t, inventory.MoveTypeOut, out.MoveType)
	require.NotNil(t, out.FromLocationID)
	assert.Equal(t, f.locA.ID, *out.FromLocationID)
	assert.Nil(t, out.ToLocationID)
}

func TestTransferConservesTotalQuantity(t *testing.T) {
	f := newLedgerFixture(t)

	require.NoError(t, f.ledger.Increase(f.db, inventory.Move{Reference: "MAIN/IN/0001"}, f.product.ID, f.locA.ID, 10))

	err := f.ledger.Transfer(f.db, inventory.Move{Reference: "MAIN/INT/0001"}, f.product.ID, f.locA.ID, f.locB.ID, 5)
	require.NoError(t, err)

	assert.Equal(t, float64(5), f.quantity(t, f.locA.ID))
	assert.Equal(t, float64(5), f.quantity(t, f.locB.ID))

	// One IN plus exactly one INTERNAL movement, never a decoupled OUT/IN pair.
	moves := f.moves(t)
	require.Len(t, moves, 2)
	internal := moves[1]
	assert.Equal(t, inventory.MoveTypeInternal, internal.MoveType)
	require.NotNil(t, internal.FromLocationID)
	require.NotNil(t, internal.ToLocationID)
	assert.Equal(t, f.locA.ID, *internal.FromLocationID)
	assert.Equal(t, f.locB.ID, *internal.ToLocationID)
	assert.Equal(t, float64(5), internal.Quantity)
}

func TestTransferInsufficientSourceFails(t *testing.T) {
	f := newLedgerFixture(t)

	require.NoError(t, f.ledger.Increase(f.db, inventory.Move{Reference: "MAIN/IN/0001"}, f.product.ID, f.locA.ID, 3))

	err := f.ledger.Transfer(f.db, inventory.Move{Reference: "MAIN/INT/0001"}, f.product.ID, f.locA.ID, f.locB.ID, 5)
	assert.ErrorIs(t, err, inventory.ErrInsufficientStock)

	assert.Equal(t, float64(3), f.quantity(t, f.locA.ID))

	var count int64
	f.db.Model(&inventory.Stock{}).Where("sub_location_id = ?", f.locB.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestTransferRejectsSameLocation(t *testing.T) {
	f := newLedgerFixture(t)

	require.NoError(t, f.ledger.Increase(f.db, inventory.Move{Reference: "MAIN/IN/0001"}, f.product.ID, f.locA.ID, 10))

	err := f.ledger.Transfer(f.db, inventory.Move{Reference: "MAIN/INT/0001"}, f.product.ID, f.locA.ID, f.locA.ID, 5)
	assert.Error(t, err)
	assert.Equal(t, float64(10), f.quantity(t, f.locA.ID))
}

func TestSetAbsoluteRecordsSignedDelta(t *testing.T) {
	f := newLedgerFixture(t)

	require.NoError(t, f.ledger.Increase(f.db, inventory.Move{Reference: "MAIN/IN/0001"}, f.product.ID, f.locA.ID, 10))

	delta, err := f.ledger.SetAbsolute(f.db, inventory.Move{Reference: "ADJ-0001"}, f.product.ID, f.locA.ID, 8)
	require.NoError(t, err)
	assert.Equal(t, float64(-2), delta)
	assert.Equal(t, float64(8), f.quantity(t, f.locA.ID))

	moves := f.moves(t)
	require.Len(t, moves, 2)
	adj := moves[1]
	assert.Equal(t, inventory.MoveTypeAdjustment, adj.MoveType)
	assert.Equal(t, float64(-2), adj.Quantity)
	assert.Equal(t, "ADJ-0001", adj.OperationReference)
}

func TestSetAbsoluteCreatesRowFromNothing(t *testing.T) {
	f := newLedgerFixture(t)

	delta, err := f.ledger.SetAbsolute(f.db, inventory.Move{Reference: "ADJ-0001"}, f.product.ID, f.locA.ID, 12)
	require.NoError(t, err)
	assert.Equal(t, float64(12), delta)
	assert.Equal(t, float64(12), f.quantity(t, f.locA.ID))
}

func TestSetAbsoluteRejectsNegativeCount(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.ledger.SetAbsolute(f.db, inventory.Move{Reference: "ADJ-0001"}, f.product.ID, f.locA.ID, -1)
	assert.ErrorIs(t, err, inventory.ErrInvalidQuantity)
}

func TestEveryMutationAppendsExactlyOneMovement(t *testing.T) {
	f := newLedgerFixture(t)

	require.NoError(t, f.ledger.Increase(f.db, inventory.Move{Reference: "r1"}, f.product.ID, f.locA.ID, 10))
	require.NoError(t, f.ledger.Decrease(f.db, inventory.Move{Reference: "r2"}, f.product.ID, f.locA.ID, 2))
	require.NoError(t, f.ledger.Transfer(f.db, inventory.Move{Reference: "r3"}, f.product.ID, f.locA.ID, f.locB.ID, 4))
	_, err := f.ledger.SetAbsolute(f.db, inventory.Move{Reference: "r4"}, f.product.ID, f.locB.ID, 1)
	require.NoError(t, err)

	moves := f.moves(t)
	require.Len(t, moves, 4)
	assert.Equal(t, inventory.MoveTypeIn, moves[0].MoveType)
	assert.Equal(t, inventory.MoveTypeOut, moves[1].MoveType)
	assert.Equal(t, inventory.MoveTypeInternal, moves[2].MoveType)
	assert.Equal(t, inventory.MoveTypeAdjustment, moves[3].MoveType)
}

func TestMoveAttributionCarriesUser(t *testing.T) {
	f := newLedgerFixture(t)

	userID := uint(42)
	require.NoError(t, f.ledger.Increase(f.db, inventory.Move{Reference: "r1", UserID: &userID}, f.product.ID, f.locA.ID, 1))

	moves := f.moves(t)
	require.Len(t, moves, 1)
	require.NotNil(t, moves[0].UserID)
	assert.Equal(t, userID, *moves[0].UserID)
}
