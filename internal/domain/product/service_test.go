// internal/domain/product/service_test.go
package product_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/stockmaster-backend/internal/domain/product"
	"github.com/your-org/stockmaster-backend/internal/testutil"
	"gorm.io/gorm"
)

func TestCreateProductEnforcesUniqueSKU(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := product.NewService(db, testutil.NewTestConfig())

	_, err := svc.CreateProduct(&product.CreateProductRequest{SKU: "RAW-001", Name: "Steel", Category: product.CategoryRawMaterial})
	require.NoError(t, err)

	_, err = svc.CreateProduct(&product.CreateProductRequest{SKU: "RAW-001", Name: "Other", Category: product.CategoryPart})
	assert.Error(t, err)
}

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := product.NewService(db, testutil.NewTestConfig())

	_, err := svc.CreateProduct(&product.CreateProductRequest{SKU: "X-001", Name: "X", Category: "BOGUS"})
	assert.Error(t, err)
}

func TestGetProductsFiltersByCategory(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := product.NewService(db, testutil.NewTestConfig())

	_, err := svc.CreateProduct(&product.CreateProductRequest{SKU: "RAW-001", Name: "Steel", Category: product.CategoryRawMaterial})
	require.NoError(t, err)
	_, err = svc.CreateProduct(&product.CreateProductRequest{SKU: "FIN-001", Name: "Chair", Category: product.CategoryFinishedGood})
	require.NoError(t, err)

	all, err := svc.GetProducts("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	raw, err := svc.GetProducts("RAW")
	require.NoError(t, err)
	require.Len(t, raw, 1)
	assert.Equal(t, "RAW-001", raw[0].SKU)
}

func TestUpdateProductKeepsSKU(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := product.NewService(db, testutil.NewTestConfig())

	created, err := svc.CreateProduct(&product.CreateProductRequest{SKU: "RAW-001", Name: "Steel", Category: product.CategoryRawMaterial})
	require.NoError(t, err)

	name := "Steel Sheet"
	weight := 12.5
	updated, err := svc.UpdateProduct(created.ID, &product.UpdateProductRequest{Name: &name, Weight: &weight})
	require.NoError(t, err)

	assert.Equal(t, "RAW-001", updated.SKU)
	assert.Equal(t, "Steel Sheet", updated.Name)
	assert.Equal(t, 12.5, updated.Weight)
}

func TestDeleteProductIsSoft(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := product.NewService(db, testutil.NewTestConfig())

	created, err := svc.CreateProduct(&product.CreateProductRequest{SKU: "RAW-001", Name: "Steel", Category: product.CategoryRawMaterial})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(created.ID))

	_, err = svc.GetProduct(created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The row survives for history, flagged as deleted.
	var count int64
	db.Unscoped().Model(&product.Product{}).Where("id = ?", created.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	assert.ErrorIs(t, svc.DeleteProduct(created.ID), gorm.ErrRecordNotFound)
}
