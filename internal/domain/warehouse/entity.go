// internal/domain/warehouse/entity.go
package warehouse

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Warehouse represents a physical storage site
type Warehouse struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"uniqueIndex;not null;size:200" json:"name"`
	Code          *string    `gorm:"uniqueIndex;size:20" json:"code"` // e.g. WH-001, MUM-DC; nil when the site has none
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
	Address       string     `gorm:"type:text" json:"address"`
	City          string     `gorm:"size:100" json:"city"`
	State         string     `gorm:"size:100" json:"state"`
	Country       string     `gorm:"size:100;default:'India'" json:"country"`
	Pincode       string     `gorm:"size:20" json:"pincode"`
	CapacityValue *uint      `json:"capacity_value"`
	CapacityUnit  string     `gorm:"size:20;default:'Units'" json:"capacity_unit"`
	IsActive      bool       `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Relationships
	SubLocations []SubLocation `gorm:"foreignKey:WarehouseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"sub_locations,omitempty"`
}

// TableName overrides the table name for Warehouse
func (Warehouse) TableName() string {
	return "warehouses"
}

// HasCoordinates reports whether both latitude and longitude are set
func (w *Warehouse) HasCoordinates() bool {
	return w.Latitude != nil && w.Longitude != nil
}

// ValidateCoordinates checks latitude/longitude ranges
func (w *Warehouse) ValidateCoordinates() error {
	if w.Latitude != nil && (*w.Latitude < -90 || *w.Latitude > 90) {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if w.Longitude != nil && (*w.Longitude < -180 || *w.Longitude > 180) {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// SubLocation is an addressable aisle/rack/bin position inside a warehouse.
// Its code is derived from the components and recomputed on every save.
type SubLocation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	WarehouseID uint      `gorm:"not null;uniqueIndex:idx_sub_locations_wh_code" json:"warehouse_id"`
	Aisle       string    `gorm:"size:50" json:"aisle"`
	Rack        string    `gorm:"size:50" json:"rack"`
	Bin         string    `gorm:"size:50" json:"bin"`
	Code        string    `gorm:"not null;size:100;uniqueIndex:idx_sub_locations_wh_code" json:"code"` // e.g. A2-R3-B4
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Warehouse Warehouse `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
}

// TableName overrides the table name for SubLocation
func (SubLocation) TableName() string {
	return "sub_locations"
}

// BuildCode derives the location code from the non-empty components
func BuildCode(aisle, rack, bin string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{aisle, rack, bin} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, "-")
}

// BeforeSave recomputes the derived code whenever the components change
func (sl *SubLocation) BeforeSave(tx *gorm.DB) error {
	code := BuildCode(sl.Aisle, sl.Rack, sl.Bin)
	if code == "" {
		return fmt.Errorf("sub-location requires at least one of aisle, rack or bin")
	}
	sl.Code = code
	return nil
}
