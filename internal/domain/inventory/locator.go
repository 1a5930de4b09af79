// internal/domain/inventory/locator.go
package inventory

import (
	"fmt"
	"math"

	"github.com/your-org/stockmaster-backend/internal/domain/warehouse"
	"gorm.io/gorm"
)

const earthRadiusKM = 6371

// NearestStockResult describes the closest warehouse holding abundant stock
// of a product.
type NearestStockResult struct {
	Warehouse     string  `json:"warehouse"`
	SubLocation   string  `json:"sublocation"`
	StockQuantity float64 `json:"stock_quantity"`
	DistanceKM    float64 `json:"distance_km"`
}

// FindNearestAbundantStock returns the nearest warehouse outside the source
// that holds at least minQty of the product, or nil when no candidate
// qualifies. Candidates without coordinates are skipped. Ties on distance go
// to the lowest stock ID since candidates are scanned in ID order and only a
// strictly smaller distance replaces the current best.
func (s *Service) FindNearestAbundantStock(sourceWarehouseID, productID uint, minQty float64) (*NearestStockResult, error) {
	var source warehouse.Warehouse
	if err := s.db.First(&source, sourceWarehouseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: id %d", ErrWarehouseNotFound, sourceWarehouseID)
		}
		return nil, fmt.Errorf("failed to load source warehouse: %w", err)
	}
	if !source.HasCoordinates() {
		return nil, fmt.Errorf("warehouse '%s' has no coordinates", source.Name)
	}

	var candidates []Stock
	err := s.db.
		Joins("JOIN sub_locations ON sub_locations.id = stocks.sub_location_id").
		Where("stocks.product_id = ? AND stocks.quantity >= ? AND sub_locations.warehouse_id <> ?",
			productID, minQty, sourceWarehouseID).
		Preload("SubLocation").
		Preload("SubLocation.Warehouse").
		Order("stocks.id").
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to collect candidate stocks: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	var closest *Stock
	minDistance := math.Inf(1)

	for i := range candidates {
		wh := candidates[i].SubLocation.Warehouse
		if !wh.HasCoordinates() {
			continue
		}
		distance := haversine(*source.Latitude, *source.Longitude, *wh.Latitude, *wh.Longitude)
		if distance < minDistance {
			minDistance = distance
			closest = &candidates[i]
		}
	}

	if closest == nil {
		return nil, nil
	}

	return &NearestStockResult{
		Warehouse:     closest.SubLocation.Warehouse.Name,
		SubLocation:   closest.SubLocation.Code,
		StockQuantity: closest.Quantity,
		DistanceKM:    math.Round(minDistance*100) / 100,
	}, nil
}

// haversine computes the great-circle distance in kilometers between two
// points given in degrees
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}
