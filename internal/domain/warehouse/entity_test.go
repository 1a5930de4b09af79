// internal/domain/warehouse/entity_test.go
package warehouse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/stockmaster-backend/internal/domain/warehouse"
	"github.com/your-org/stockmaster-backend/internal/testutil"
)

func TestBuildCode(t *testing.T) {
	tests := []struct {
		name  string
		aisle string
		rack  string
		bin   string
		want  string
	}{
		{"all components", "A2", "R3", "B4", "A2-R3-B4"},
		{"aisle only", "A2", "", "", "A2"},
		{"missing middle", "A2", "", "B4", "A2-B4"},
		{"whitespace trimmed", " A2 ", "R3", "", "A2-R3"},
		{"empty", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, warehouse.BuildCode(tt.aisle, tt.rack, tt.bin))
		})
	}
}

func TestSubLocationCodeRecomputedOnSave(t *testing.T) {
	db := testutil.NewTestDB(t)

	wh := warehouse.Warehouse{Name: "Main", Code: testutil.StringPtr("MAIN"), IsActive: true}
	require.NoError(t, db.Create(&wh).Error)

	loc := warehouse.SubLocation{WarehouseID: wh.ID, Aisle: "A2", Rack: "R3", Bin: "B4"}
	require.NoError(t, db.Create(&loc).Error)
	assert.Equal(t, "A2-R3-B4", loc.Code)

	loc.Bin = "B9"
	require.NoError(t, db.Save(&loc).Error)
	assert.Equal(t, "A2-R3-B9", loc.Code)
}

func TestSubLocationRequiresAComponent(t *testing.T) {
	db := testutil.NewTestDB(t)

	wh := warehouse.Warehouse{Name: "Main", Code: testutil.StringPtr("MAIN"), IsActive: true}
	require.NoError(t, db.Create(&wh).Error)

	loc := warehouse.SubLocation{WarehouseID: wh.ID}
	err := db.Create(&loc).Error
	assert.Error(t, err)
}

func TestValidateCoordinates(t *testing.T) {
	valid := 45.0
	tooBig := 95.0
	lonTooBig := 190.0

	wh := warehouse.Warehouse{Latitude: &valid, Longitude: &valid}
	assert.NoError(t, wh.ValidateCoordinates())

	wh = warehouse.Warehouse{Latitude: &tooBig}
	assert.Error(t, wh.ValidateCoordinates())

	wh = warehouse.Warehouse{Longitude: &lonTooBig}
	assert.Error(t, wh.ValidateCoordinates())

	// Missing coordinates are allowed, the resolver just skips them.
	wh = warehouse.Warehouse{}
	assert.NoError(t, wh.ValidateCoordinates())
	assert.False(t, wh.HasCoordinates())
}

func TestCreateWarehouseRejectsDuplicateName(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := warehouse.NewService(db, testutil.NewTestConfig())

	_, err := svc.CreateWarehouse(&warehouse.CreateWarehouseRequest{Name: "Main", Code: "MAIN"})
	require.NoError(t, err)

	_, err = svc.CreateWarehouse(&warehouse.CreateWarehouseRequest{Name: "Main", Code: "OTHER"})
	assert.Error(t, err)

	_, err = svc.CreateWarehouse(&warehouse.CreateWarehouseRequest{Name: "Other", Code: "MAIN"})
	assert.Error(t, err)
}

func TestCreateWarehouseAllowsManyWithoutCode(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := warehouse.NewService(db, testutil.NewTestConfig())

	first, err := svc.CreateWarehouse(&warehouse.CreateWarehouseRequest{Name: "First"})
	require.NoError(t, err)
	assert.Nil(t, first.Code)

	// A missing code is not a shared value, any number of codeless sites
	// can coexist.
	second, err := svc.CreateWarehouse(&warehouse.CreateWarehouseRequest{Name: "Second"})
	require.NoError(t, err)
	assert.Nil(t, second.Code)
}

func TestCreateWarehouseValidatesCoordinates(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := warehouse.NewService(db, testutil.NewTestConfig())

	bad := 120.0
	_, err := svc.CreateWarehouse(&warehouse.CreateWarehouseRequest{Name: "Bad", Latitude: &bad})
	assert.Error(t, err)
}
