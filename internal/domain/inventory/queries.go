// internal/domain/inventory/queries.go
package inventory

import (
	"fmt"
)

// StockFilter narrows stock listings
type StockFilter struct {
	ProductID   *uint
	WarehouseID *uint
}

// GetStocks lists stock rows with their product and location loaded
func (s *Service) GetStocks(filter StockFilter) ([]Stock, error) {
	query := s.db.
		Preload("Product").
		Preload("SubLocation").
		Preload("SubLocation.Warehouse").
		Order("stocks.id")

	if filter.ProductID != nil {
		query = query.Where("stocks.product_id = ?", *filter.ProductID)
	}
	if filter.WarehouseID != nil {
		query = query.
			Joins("JOIN sub_locations ON sub_locations.id = stocks.sub_location_id").
			Where("sub_locations.warehouse_id = ?", *filter.WarehouseID)
	}

	var stocks []Stock
	if err := query.Find(&stocks).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve stocks: %w", err)
	}
	return stocks, nil
}

// MoveHistoryFilter narrows movement listings
type MoveHistoryFilter struct {
	ProductID *uint
	MoveType  MoveType
	Limit     int
}

// GetMoveHistory lists movement records, newest first
func (s *Service) GetMoveHistory(filter MoveHistoryFilter) ([]MoveHistory, error) {
	query := s.db.
		Preload("Product").
		Preload("FromLocation").
		Preload("ToLocation").
		Order("date DESC, id DESC")

	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.MoveType != "" {
		query = query.Where("move_type = ?", filter.MoveType)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var moves []MoveHistory
	if err := query.Find(&moves).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve move history: %w", err)
	}
	return moves, nil
}

// GetMove retrieves a single movement record
func (s *Service) GetMove(id uint) (*MoveHistory, error) {
	var move MoveHistory
	err := s.db.
		Preload("Product").
		Preload("FromLocation").
		Preload("ToLocation").
		First(&move, id).Error
	if err != nil {
		return nil, err
	}
	return &move, nil
}
