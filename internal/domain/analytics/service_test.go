// internal/domain/analytics/service_test.go
package analytics_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/stockmaster-backend/internal/domain/analytics"
	"github.com/your-org/stockmaster-backend/internal/domain/inventory"
	"github.com/your-org/stockmaster-backend/internal/domain/operations"
	"github.com/your-org/stockmaster-backend/internal/domain/product"
	"github.com/your-org/stockmaster-backend/internal/domain/warehouse"
	"github.com/your-org/stockmaster-backend/internal/infrastructure/database/redis"
	"github.com/your-org/stockmaster-backend/internal/testutil"
	"gorm.io/gorm"
)

func newCache(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	return &redis.Client{
		Redis: goredis.NewClient(&goredis.Options{Addr: mr.Addr()}),
	}
}

func seedInventory(t *testing.T, db *gorm.DB) {
	t.Helper()

	prodA := product.Product{SKU: "A", Name: "Alpha", Category: product.CategoryRawMaterial}
	prodB := product.Product{SKU: "B", Name: "Beta", Category: product.CategoryPart}
	require.NoError(t, db.Create(&prodA).Error)
	require.NoError(t, db.Create(&prodB).Error)

	wh := warehouse.Warehouse{Name: "Main", Code: testutil.StringPtr("MAIN"), IsActive: true}
	require.NoError(t, db.Create(&wh).Error)
	loc := warehouse.SubLocation{WarehouseID: wh.ID, Aisle: "A1"}
	require.NoError(t, db.Create(&loc).Error)

	// prodA is healthy, prodB sits under the low-stock threshold of 10.
	require.NoError(t, db.Create(&inventory.Stock{ProductID: prodA.ID, SubLocationID: loc.ID, Quantity: 50}).Error)
	require.NoError(t, db.Create(&inventory.Stock{ProductID: prodB.ID, SubLocationID: loc.ID, Quantity: 3}).Error)

	require.NoError(t, db.Create(&operations.Receipt{Reference: "MAIN/IN/0001", WarehouseID: wh.ID, Supplier: "Acme"}).Error)
	require.NoError(t, db.Create(&operations.Delivery{Reference: "MAIN/OUT/0001", WarehouseID: wh.ID, Customer: "Globex", Validated: true}).Error)
}

func TestGetDashboardKPIsComputesAggregates(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := analytics.NewService(db, newCache(t), testutil.NewTestConfig())
	seedInventory(t, db)

	kpis, err := svc.GetDashboardKPIs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), kpis.TotalProducts)
	assert.Equal(t, int64(1), kpis.TotalWarehouses)
	assert.Equal(t, float64(53), kpis.TotalStockUnits)
	assert.Equal(t, int64(1), kpis.LowStockProducts)
	assert.Equal(t, int64(0), kpis.OutOfStockItems)
	assert.Equal(t, int64(1), kpis.PendingReceipts)
	assert.Equal(t, int64(0), kpis.PendingDeliveries)
}

func TestGetDashboardKPIsServedFromCache(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := analytics.NewService(db, newCache(t), testutil.NewTestConfig())
	seedInventory(t, db)

	first, err := svc.GetDashboardKPIs(context.Background())
	require.NoError(t, err)

	// Mutate underlying data; the cached snapshot must win until invalidated.
	require.NoError(t, db.Create(&product.Product{SKU: "C", Name: "Gamma", Category: product.CategoryPart}).Error)

	second, err := svc.GetDashboardKPIs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.TotalProducts, second.TotalProducts)

	require.NoError(t, svc.InvalidateDashboard(context.Background()))

	third, err := svc.GetDashboardKPIs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.TotalProducts+1, third.TotalProducts)
}

func TestGetDashboardKPIsWorksWithoutCache(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := analytics.NewService(db, nil, testutil.NewTestConfig())
	seedInventory(t, db)

	kpis, err := svc.GetDashboardKPIs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), kpis.TotalProducts)
}
