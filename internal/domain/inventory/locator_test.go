// internal/domain/inventory/locator_test.go
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

// seedWarehouse creates a warehouse with one sub-location and returns both
func seedWarehouse(t *testing.T, db *gorm.DB, name, code string, lat, lon *float64) (warehouse.Warehouse, warehouse.SubLocation) {
	t.Helper()

	wh := warehouse.Warehouse{Name: name, Latitude: lat, Longitude: lon, IsActive: true}
	if code != "" {
		wh.Code = testutil.StringPtr(code)
	}
	require.NoError(t, db.Create(&wh).Error)

	loc := warehouse.SubLocation{WarehouseID: wh.ID, Aisle: "A1", Rack: "R1", Bin: "B1"}
	require.NoError(t, db.Create(&loc).Error)

	return wh, loc
}

func coords(lat, lon float64) (*float64, *float64) {
	return &lat, &lon
}

func seedStock(t *testing.T, db *gorm.DB, productID, locationID uint, qty float64) {
	t.Helper()
	require.NoError(t, db.Create(&inventory.Stock{
		ProductID:     productID,
		SubLocationID: locationID,
		Quantity:      qty,
	}).Error)
}

func TestFindNearestAbundantStockPicksClosest(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := inventory.NewService(db, testutil.NewTestConfig())

	prod := product.Product{SKU: "P1", Name: "Widget", Category: product.CategoryPart}
	require.NoError(t, db.Create(&prod).Error)

	// Source in central Paris; candidates roughly 12, 45 and 3 km away.
	srcLat, srcLon := coords(48.8566, 2.3522)
	source, _ := seedWarehouse(t, db, "Source", "SRC", srcLat, srcLon)

	lat12, lon12 := coords(48.9566, 2.4222)
	_, locMid := seedWarehouse(t, db, "Mid", "MID", lat12, lon12)

	lat45, lon45 := coords(49.25, 2.55)
	_, locFar := seedWarehouse(t, db, "Far", "FAR", lat45, lon45)

	lat3, lon3 := coords(48.8766, 2.3722)
	near, locNear := seedWarehouse(t, db, "Near", "NEAR", lat3, lon3)

	seedStock(t, db, prod.ID, locMid.ID, 20)
	seedStock(t, db, prod.ID, locFar.ID, 20)
	seedStock(t, db, prod.ID, locNear.ID, 20)

	result, err := svc.FindNearestAbundantStock(source.ID, prod.ID, 6)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, near.Name, result.Warehouse)
	assert.Equal(t, locNear.Code, result.SubLocation)
	assert.Equal(t, float64(20), result.StockQuantity)
	assert.Less(t, result.DistanceKM, 5.0)
}

func TestFindNearestAbundantStockFiltersBelowThreshold(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := inventory.NewService(db, testutil.NewTestConfig())

	prod := product.Product{SKU: "P1", Name: "Widget", Category: product.CategoryPart}
	require.NoError(t, db.Create(&prod).Error)

	srcLat, srcLon := coords(48.8566, 2.3522)
	source, _ := seedWarehouse(t, db, "Source", "SRC", srcLat, srcLon)

	lat, lon := coords(48.8766, 2.3722)
	_, loc := seedWarehouse(t, db, "Near", "NEAR", lat, lon)

	// Holds stock, but below the abundance threshold.
	seedStock(t, db, prod.ID, loc.ID, 5)

	result, err := svc.FindNearestAbundantStock(source.ID, prod.ID, 6)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestFindNearestAbundantStockSkipsWarehousesWithoutCoordinates(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := inventory.NewService(db, testutil.NewTestConfig())

	prod := product.Product{SKU: "P1", Name: "Widget", Category: product.CategoryPart}
	require.NoError(t, db.Create(&prod).Error)

	srcLat, srcLon := coords(48.8566, 2.3522)
	source, _ := seedWarehouse(t, db, "Source", "SRC", srcLat, srcLon)

	_, locBlind := seedWarehouse(t, db, "Blind", "BLD", nil, nil)
	seedStock(t, db, prod.ID, locBlind.ID, 100)

	lat, lon := coords(49.25, 2.55)
	far, locFar := seedWarehouse(t, db, "Far", "FAR", lat, lon)
	seedStock(t, db, prod.ID, locFar.ID, 20)

	result, err := svc.FindNearestAbundantStock(source.ID, prod.ID, 6)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, far.Name, result.Warehouse)
}

func TestFindNearestAbundantStockExcludesSourceWarehouse(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := inventory.NewService(db, testutil.NewTestConfig())

	prod := product.Product{SKU: "P1", Name: "Widget", Category: product.CategoryPart}
	require.NoError(t, db.Create(&prod).Error)

	srcLat, srcLon := coords(48.8566, 2.3522)
	source, srcLoc := seedWarehouse(t, db, "Source", "SRC", srcLat, srcLon)
	seedStock(t, db, prod.ID, srcLoc.ID, 100)

	result, err := svc.FindNearestAbundantStock(source.ID, prod.ID, 6)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestFindNearestAbundantStockTieBreaksOnLowestStockID(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := inventory.NewService(db, testutil.NewTestConfig())

	prod := product.Product{SKU: "P1", Name: "Widget", Category: product.CategoryPart}
	require.NoError(t, db.Create(&prod).Error)

	srcLat, srcLon := coords(48.8566, 2.3522)
	source, _ := seedWarehouse(t, db, "Source", "SRC", srcLat, srcLon)

	// Two candidates at the identical point, so identical distance.
	lat1, lon1 := coords(48.9, 2.4)
	first, locFirst := seedWarehouse(t, db, "First", "FST", lat1, lon1)
	lat2, lon2 := coords(48.9, 2.4)
	_, locSecond := seedWarehouse(t, db, "Second", "SND", lat2, lon2)

	seedStock(t, db, prod.ID, locFirst.ID, 10)
	seedStock(t, db, prod.ID, locSecond.ID, 10)

	result, err := svc.FindNearestAbundantStock(source.ID, prod.ID, 6)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, first.Name, result.Warehouse)
}

func TestFindNearestAbundantStockUnknownSource(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := inventory.NewService(db, testutil.NewTestConfig())

	_, err := svc.FindNearestAbundantStock(999, 1, 6)
	assert.ErrorIs(t, err, inventory.ErrWarehouseNotFound)
}

func TestFindNearestAbundantStockDistanceIsRounded(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := inventory.NewService(db, testutil.NewTestConfig())

	prod := product.Product{SKU: "P1", Name: "Widget", Category: product.CategoryPart}
	require.NoError(t, db.Create(&prod).Error)

	srcLat, srcLon := coords(48.8566, 2.3522)
	source, _ := seedWarehouse(t, db, "Source", "SRC", srcLat, srcLon)

	lat, lon := coords(48.8666, 2.3622)
	_, loc := seedWarehouse(t, db, "Near", "NEAR", lat, lon)
	seedStock(t, db, prod.ID, loc.ID, 10)

	result, err := svc.FindNearestAbundantStock(source.ID, prod.ID, 6)
	require.NoError(t, err)
	require.NotNil(t, result)

	// Two decimal places at most.
	rounded := float64(int(result.DistanceKM*100+0.5)) / 100
	assert.InDelta(t, rounded, result.DistanceKM, 1e-9)
}
