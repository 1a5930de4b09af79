// internal/domain/warehouse/service.go
package warehouse

import (
	"fmt"

	"github.com/your-org/stockmaster-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles warehouse topology business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new warehouse service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CreateWarehouseRequest represents warehouse creation data
type CreateWarehouseRequest struct {
	Name          string   `json:"name" binding:"required"`
	Code          string   `json:"code"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Country       string   `json:"country"`
	Pincode       string   `json:"pincode"`
	CapacityValue *uint    `json:"capacity_value"`
	CapacityUnit  string   `json:"capacity_unit"`
}

// CreateSubLocationRequest represents sub-location creation data
type CreateSubLocationRequest struct {
	WarehouseID uint   `json:"warehouse_id" binding:"required"`
	Aisle       string `json:"aisle"`
	Rack        string `json:"rack"`
	Bin         string `json:"bin"`
}

// CreateWarehouse creates a new warehouse
func (s *Service) CreateWarehouse(req *CreateWarehouseRequest) (*Warehouse, error) {
	// Check if name already exists
	var existing Warehouse
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("warehouse with name '%s' already exists", req.Name)
	}

	if req.Code != "" {
		if err := s.db.Where("code = ?", req.Code).First(&existing).Error; err == nil {
			return nil, fmt.Errorf("warehouse with code '%s' already exists", req.Code)
		}
	}

	warehouse := &Warehouse{
		Name:          req.Name,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		Pincode:       req.Pincode,
		CapacityValue: req.CapacityValue,
		CapacityUnit:  req.CapacityUnit,
		IsActive:      true,
	}
	// A code is optional; left nil it never collides with other codeless sites.
	if req.Code != "" {
		warehouse.Code = &req.Code
	}

	if err := warehouse.ValidateCoordinates(); err != nil {
		return nil, err
	}

	if err := s.db.Create(warehouse).Error; err != nil {
		return nil, fmt.Errorf("failed to create warehouse: %w", err)
	}

	return warehouse, nil
}

// GetWarehouse retrieves a warehouse by ID
func (s *Service) GetWarehouse(id uint) (*Warehouse, error) {
	var warehouse Warehouse
	if err := s.db.First(&warehouse, id).Error; err != nil {
		return nil, err
	}
	return &warehouse, nil
}

// GetWarehouses retrieves all warehouses ordered by name
func (s *Service) GetWarehouses() ([]Warehouse, error) {
	var warehouses []Warehouse
	if err := s.db.Order("name").Find(&warehouses).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve warehouses: %w", err)
	}
	return warehouses, nil
}

// CreateSubLocation creates a new sub-location within a warehouse
func (s *Service) CreateSubLocation(req *CreateSubLocationRequest) (*SubLocation, error) {
	var warehouse Warehouse
	if err := s.db.First(&warehouse, req.WarehouseID).Error; err != nil {
		return nil, fmt.Errorf("warehouse not found")
	}

	location := &SubLocation{
		WarehouseID: req.WarehouseID,
		Aisle:       req.Aisle,
		Rack:        req.Rack,
		Bin:         req.Bin,
	}

	if err := s.db.Create(location).Error; err != nil {
		return nil, fmt.Errorf("failed to create sub-location: %w", err)
	}

	return location, nil
}

// GetSubLocations lists sub-locations, optionally scoped to one warehouse
func (s *Service) GetSubLocations(warehouseID *uint) ([]SubLocation, error) {
	var locations []SubLocation
	query := s.db.Order("aisle, rack, bin")
	if warehouseID != nil {
		query = query.Where("warehouse_id = ?", *warehouseID)
	}
	if err := query.Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve sub-locations: %w", err)
	}
	return locations, nil
}
